package registry

import (
	"fmt"
	"strings"
	"time"

	"kaamconnect/internal/models"
	"kaamconnect/internal/store"
	"kaamconnect/internal/validate"
)

// Labourer defaults for fields the signup form does not collect.
const (
	defaultSkill     = "General Labour"
	defaultDailyWage = 800
)

// SignupCustomer validates the request, enforces phone/email uniqueness and
// appends the new record. Nothing is persisted on any failure. The
// duplicate check and the append run under the collection lock, so two
// concurrent signups cannot both pass the check.
func (s *Service) SignupCustomer(req CustomerSignup) (models.Customer, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)

	if !validate.AllPresent(req.FullName, req.Phone, req.Email, req.Password, req.ConfirmPassword) {
		return models.Customer{}, ErrMissingFields
	}
	if err := s.checkPassword(req.Password, req.ConfirmPassword); err != nil {
		return models.Customer{}, err
	}
	if !validate.Email(req.Email) {
		return models.Customer{}, ErrInvalidEmail
	}
	if !validate.Phone(req.Phone) {
		return models.Customer{}, ErrInvalidPhone
	}

	var created models.Customer
	err := s.store.Customers.Update(func(customers []models.Customer) ([]models.Customer, error) {
		for _, c := range customers {
			if c.Phone == req.Phone {
				return nil, ErrDuplicatePhone
			}
			if c.Email == req.Email {
				return nil, ErrDuplicateEmail
			}
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("registry: hash password: %w", err)
		}

		now := time.Now()
		created = models.Customer{
			ID:           store.NextID(customers),
			FullName:     req.FullName,
			Phone:        req.Phone,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
			Status:       "active",
			Projects:     []int{},
		}
		return append(customers, created), nil
	})
	if err != nil {
		return models.Customer{}, err
	}
	return created, nil
}

// SignupContractor mirrors SignupCustomer for the contractor collection.
func (s *Service) SignupContractor(req ContractorSignup) (models.Contractor, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.OwnerName = strings.TrimSpace(req.OwnerName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)

	if !validate.AllPresent(req.CompanyName, req.OwnerName, req.Phone, req.Email, req.Password, req.ConfirmPassword) {
		return models.Contractor{}, ErrMissingFields
	}
	if err := s.checkPassword(req.Password, req.ConfirmPassword); err != nil {
		return models.Contractor{}, err
	}
	if !validate.Email(req.Email) {
		return models.Contractor{}, ErrInvalidEmail
	}
	if !validate.Phone(req.Phone) {
		return models.Contractor{}, ErrInvalidPhone
	}

	var created models.Contractor
	err := s.store.Contractors.Update(func(contractors []models.Contractor) ([]models.Contractor, error) {
		for _, c := range contractors {
			if c.Phone == req.Phone {
				return nil, ErrDuplicatePhone
			}
			if c.Email == req.Email {
				return nil, ErrDuplicateEmail
			}
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("registry: hash password: %w", err)
		}

		now := time.Now()
		created = models.Contractor{
			ID:           store.NextID(contractors),
			CompanyName:  req.CompanyName,
			OwnerName:    req.OwnerName,
			Phone:        req.Phone,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
			Status:       "active",
			Teams:        []int{},
		}
		return append(contractors, created), nil
	})
	if err != nil {
		return models.Contractor{}, err
	}
	return created, nil
}

// SignupLabourer differs from the other roles in that email is optional:
// its shape is only validated when given and uniqueness is only enforced
// among labourers that have one.
func (s *Service) SignupLabourer(req LabourerSignup) (models.Labourer, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.TrimSpace(req.Email)

	if !validate.AllPresent(req.FullName, req.Phone, req.Password, req.ConfirmPassword) {
		return models.Labourer{}, ErrMissingFields
	}
	if err := s.checkPassword(req.Password, req.ConfirmPassword); err != nil {
		return models.Labourer{}, err
	}
	if req.Email != "" && !validate.Email(req.Email) {
		return models.Labourer{}, ErrInvalidEmail
	}
	if !validate.Phone(req.Phone) {
		return models.Labourer{}, ErrInvalidPhone
	}

	var created models.Labourer
	err := s.store.Labourers.Update(func(labourers []models.Labourer) ([]models.Labourer, error) {
		for _, l := range labourers {
			if l.Phone == req.Phone {
				return nil, ErrDuplicatePhone
			}
			if req.Email != "" && l.Email == req.Email {
				return nil, ErrDuplicateEmail
			}
		}

		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("registry: hash password: %w", err)
		}

		now := time.Now()
		created = models.Labourer{
			ID:           store.NextID(labourers),
			FullName:     req.FullName,
			Phone:        req.Phone,
			Email:        req.Email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
			Status:       "active",
			Skills:       []string{defaultSkill},
			Availability: true,
			DailyWage:    defaultDailyWage,
		}
		return append(labourers, created), nil
	})
	if err != nil {
		return models.Labourer{}, err
	}
	return created, nil
}

func (s *Service) checkPassword(pw, confirm string) error {
	if pw != confirm {
		return ErrPasswordMismatch
	}
	if len(pw) < validate.MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
