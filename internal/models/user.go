package models

// User is an admin console account
type User struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"-" db:"password"`        // bcrypt hash, never serialized
}
