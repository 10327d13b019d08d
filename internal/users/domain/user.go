package domain

import "time"

// User is the persisted user record. PasswordHash stays internal: the HTTP
// layer maps users onto userapi.User, which has no hash field, so including
// the hash in a response requires deliberately reaching for this struct.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt encoded
	Age          *int64 // nullable, [0,150] when present
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
