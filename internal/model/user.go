package model

import "time"

// UserID identifies a user account
type UserID string

// User is a registered account. The password field holds the bcrypt hash,
// never the plaintext password; the JSON tag matches the on-disk user table.
type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created_at"`
}
