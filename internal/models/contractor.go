package models

import "time"

// Contractor is a company that takes on customer projects.
type Contractor struct {
	ID                int       `json:"id"`
	CompanyName       string    `json:"company_name"`
	OwnerName         string    `json:"owner_name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"password_hash"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Status            string    `json:"status"`
	Rating            float64   `json:"rating"`
	CompletedProjects int       `json:"completed_projects"`
	ActiveProjects    int       `json:"active_projects"`
	TeamMembers       int       `json:"team_members"`
	Revenue           int       `json:"revenue"`
	Teams             []int     `json:"teams"`
}

func (c Contractor) RecordID() int { return c.ID }
