package domain

// Tag is a user-owned label attachable to any number of the user's cards.
type Tag struct {
	ID      string   `json:"id"`
	UserID  string   `json:"userId"`
	CardIDs []string `json:"cardIds"`
	Label   string   `json:"label"`
	Color   string   `json:"color"`
}
