package domain

import "time"

// User models a registered account. Accounts are immutable after creation:
// there is no update or delete path in the API.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
