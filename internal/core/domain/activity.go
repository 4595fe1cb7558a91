package domain

import "time"

// Activity is an immutable audit record scoped to a card. Entries are only
// ever created and listed, never updated or deleted.
type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CardID      string    `json:"cardId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	DateCreated time.Time `json:"dateCreated"`
}
