package models

import "time"

// Labourer is a worker hired for day jobs. Email is optional; uniqueness is
// only enforced among labourers that provided one. Phone is always required.
type Labourer struct {
	ID              int       `json:"id"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"password_hash"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Status          string    `json:"status"`
	Rating          float64   `json:"rating"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experience_years"`
	CompletedJobs   int       `json:"completed_jobs"`
	ActiveJobs      int       `json:"active_jobs"`
	Availability    bool      `json:"availability"`
	DailyWage       int       `json:"daily_wage"`
	TotalEarnings   int       `json:"total_earnings"`
}

func (l Labourer) RecordID() int { return l.ID }
