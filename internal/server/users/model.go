package users

import "time"

// User is an immutable identity record. The password is never stored;
// PasswordHash holds a bcrypt verifier derived from it.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
