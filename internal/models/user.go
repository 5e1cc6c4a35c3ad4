// Registered users and their public projection
package models

import "time"

// RegisteredUser is a signup record keyed by Email.
type RegisteredUser struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Profile is what leaves the process; it never carries the hash.
type Profile struct {
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (u RegisteredUser) Profile() Profile {
	return Profile{
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		RegisteredAt: u.RegisteredAt,
	}
}
