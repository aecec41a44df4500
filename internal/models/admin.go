package models

import "time"

// Admin is a platform operator. One is seeded on first run when the admin
// collection is empty; there is no signup path for this role.
type Admin struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
}

func (a Admin) RecordID() int { return a.ID }
