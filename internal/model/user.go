// Package model contains the domain structures for users, players and teams.
package model

// User is a registered account. PasswordHash holds a bcrypt hash and is
// never serialized to clients.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
