package models

import "time"

// Customer is a person who posts work on the platform. Phone and email are
// each unique across the customer collection.
type Customer struct {
	ID                int       `json:"id"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"password_hash"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Status            string    `json:"status"`
	Projects          []int     `json:"projects"`
	TotalSpent        int       `json:"total_spent"`
	ActiveProjects    int       `json:"active_projects"`
	CompletedProjects int       `json:"completed_projects"`
}

func (c Customer) RecordID() int { return c.ID }
