package domain

import "time"

// User is the root of all ownership. Every other entity carries a userId
// that resolves, directly or through its parents, to a User.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	DateRegistered time.Time `json:"dateRegistered"`
}

// UserDetails is the identity triple exposed to clients and held in
// session state. It never carries credentials.
type UserDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Details returns the client-safe identity triple for the user.
func (u *User) Details() UserDetails {
	return UserDetails{ID: u.ID, Name: u.Name, Username: u.Username}
}
