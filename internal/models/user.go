package models

// UserEmailHeader carries the caller identity on every authenticated request.
const UserEmailHeader = "x-user-email"

// UserDB represents a user record in the database.
// Users are keyed by email and created on first authenticated request.
type UserDB struct {
	Email     string    `json:"email" db:"email"`          // Primary key
	CreatedAt Timestamp `json:"createdAt" db:"created_at"` // Creation timestamp
}
