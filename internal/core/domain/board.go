package domain

import "time"

// Board is a top-level container of columns, owned directly by a User.
type Board struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Label       string    `json:"label"`
	DateCreated time.Time `json:"dateCreated"`
}
