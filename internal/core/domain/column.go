package domain

import "time"

// DefaultColumnLabel is applied when a column is created without a label.
const DefaultColumnLabel = "Column"

// Column belongs to a Board and holds cards. It records its own owner in
// addition to the board association; column mutations authorize against the
// column's userId, board-scoped listing against the board's.
type Column struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	BoardID     string    `json:"boardId"`
	Label       string    `json:"label"`
	DateCreated time.Time `json:"dateCreated"`
}
