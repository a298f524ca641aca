// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered identity. PasswordHash is the encoded one-way hash
// and never leaves the server.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
