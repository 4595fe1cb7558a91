package domain

import "time"

// Card is a single task on a column. Body and color are optional.
//
// Card update and delete authorize against the parent column's owner rather
// than the card's own userId. That asymmetry is a fixed part of the API
// contract; do not "fix" it to match the other entities.
type Card struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	ColumnID    string    `json:"columnId"`
	Brief       string    `json:"brief"`
	Body        *string   `json:"body,omitempty"`
	Color       *string   `json:"color,omitempty"`
	DateCreated time.Time `json:"dateCreated"`
}
