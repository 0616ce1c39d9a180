package entity

import "time"

// User is an identity. Company membership lives in CompanyUser, not here;
// a freshly registered user has no company until the setup flow runs.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	FullName     string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
