package registry

import (
	"fmt"

	"kaamconnect/internal/models"
)

// Placeholder figures surfaced on dashboards until a project lifecycle
// exists to write the real ones.
const (
	sampleActiveWorkers   = 8
	sampleActiveProjects  = 286
	samplePlatformRevenue = 1250000
)

type CustomerStats struct {
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	TotalSpent        int `json:"total_spent"`
	ActiveWorkers     int `json:"active_workers"`
}

type ContractorStats struct {
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	TeamMembers       int `json:"team_members"`
	Revenue           int `json:"revenue"`
}

type LabourerStats struct {
	ActiveJobs    int     `json:"active_jobs"`
	CompletedJobs int     `json:"completed_jobs"`
	TotalEarnings int     `json:"total_earnings"`
	Rating        float64 `json:"rating"`
}

// PlatformStats is the public aggregate plus the admin dashboard payload.
type PlatformStats struct {
	TotalCustomers   int `json:"total_customers"`
	TotalContractors int `json:"total_contractors"`
	TotalLabourers   int `json:"total_labourers"`
	TotalUsers       int `json:"total_users"`
	ActiveProjects   int `json:"active_projects"`
	PlatformRevenue  int `json:"platform_revenue"`
}

// Directory is the admin-only listing of every record collection.
type Directory struct {
	Customers   []models.Customer   `json:"customers"`
	Contractors []models.Contractor `json:"contractors"`
	Labourers   []models.Labourer   `json:"labourers"`
}

// CustomerDashboard resolves the session's record and projects its own
// counters. ErrNotFound covers sessions that outlive their record.
func (s *Service) CustomerDashboard(id int) (models.Customer, CustomerStats, error) {
	customers, err := s.store.Customers.Load()
	if err != nil {
		return models.Customer{}, CustomerStats{}, fmt.Errorf("registry: load customers: %w", err)
	}

	for _, c := range customers {
		if c.ID == id {
			stats := CustomerStats{
				ActiveProjects:    c.ActiveProjects,
				CompletedProjects: c.CompletedProjects,
				TotalSpent:        c.TotalSpent,
				ActiveWorkers:     sampleActiveWorkers,
			}
			return c, stats, nil
		}
	}
	return models.Customer{}, CustomerStats{}, ErrNotFound
}

func (s *Service) ContractorDashboard(id int) (models.Contractor, ContractorStats, error) {
	contractors, err := s.store.Contractors.Load()
	if err != nil {
		return models.Contractor{}, ContractorStats{}, fmt.Errorf("registry: load contractors: %w", err)
	}

	for _, c := range contractors {
		if c.ID == id {
			stats := ContractorStats{
				ActiveProjects:    c.ActiveProjects,
				CompletedProjects: c.CompletedProjects,
				TeamMembers:       c.TeamMembers,
				Revenue:           c.Revenue,
			}
			return c, stats, nil
		}
	}
	return models.Contractor{}, ContractorStats{}, ErrNotFound
}

func (s *Service) LabourerDashboard(id int) (models.Labourer, LabourerStats, error) {
	labourers, err := s.store.Labourers.Load()
	if err != nil {
		return models.Labourer{}, LabourerStats{}, fmt.Errorf("registry: load labourers: %w", err)
	}

	for _, l := range labourers {
		if l.ID == id {
			stats := LabourerStats{
				ActiveJobs:    l.ActiveJobs,
				CompletedJobs: l.CompletedJobs,
				TotalEarnings: l.TotalEarnings,
				Rating:        l.Rating,
			}
			return l, stats, nil
		}
	}
	return models.Labourer{}, LabourerStats{}, ErrNotFound
}

// AdminDashboard returns the admin's own record with the platform totals.
func (s *Service) AdminDashboard(id int) (models.Admin, PlatformStats, error) {
	admins, err := s.store.Admins.Load()
	if err != nil {
		return models.Admin{}, PlatformStats{}, fmt.Errorf("registry: load admins: %w", err)
	}

	for _, a := range admins {
		if a.ID == id {
			stats, err := s.PlatformStats()
			if err != nil {
				return models.Admin{}, PlatformStats{}, err
			}
			return a, stats, nil
		}
	}
	return models.Admin{}, PlatformStats{}, ErrNotFound
}

// PlatformStats sums the collection sizes. The project and revenue figures
// are placeholders, not derived from records.
func (s *Service) PlatformStats() (PlatformStats, error) {
	customers, err := s.store.Customers.Load()
	if err != nil {
		return PlatformStats{}, fmt.Errorf("registry: load customers: %w", err)
	}
	contractors, err := s.store.Contractors.Load()
	if err != nil {
		return PlatformStats{}, fmt.Errorf("registry: load contractors: %w", err)
	}
	labourers, err := s.store.Labourers.Load()
	if err != nil {
		return PlatformStats{}, fmt.Errorf("registry: load labourers: %w", err)
	}

	return PlatformStats{
		TotalCustomers:   len(customers),
		TotalContractors: len(contractors),
		TotalLabourers:   len(labourers),
		TotalUsers:       len(customers) + len(contractors) + len(labourers),
		ActiveProjects:   sampleActiveProjects,
		PlatformRevenue:  samplePlatformRevenue,
	}, nil
}

// AllUsers returns every record collection for the admin directory view.
func (s *Service) AllUsers() (Directory, error) {
	customers, err := s.store.Customers.Load()
	if err != nil {
		return Directory{}, fmt.Errorf("registry: load customers: %w", err)
	}
	contractors, err := s.store.Contractors.Load()
	if err != nil {
		return Directory{}, fmt.Errorf("registry: load contractors: %w", err)
	}
	labourers, err := s.store.Labourers.Load()
	if err != nil {
		return Directory{}, fmt.Errorf("registry: load labourers: %w", err)
	}

	return Directory{
		Customers:   customers,
		Contractors: contractors,
		Labourers:   labourers,
	}, nil
}
