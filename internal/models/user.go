package models

// UserDB represents a user record in the database.
// Passwords are stored and returned in cleartext; this mirrors the
// demo-grade auth contract of the API and must not be reused elsewhere.
type UserDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key, assigned by the users sequence
	Email    string `json:"email" db:"email"`       // User email, not unique in the schema
	Password string `json:"password" db:"password"` // Cleartext password
}
