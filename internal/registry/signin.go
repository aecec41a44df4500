package registry

import (
	"fmt"
	"strings"

	"kaamconnect/internal/models"
)

// Identity is what a successful sign-in hands to the session layer.
type Identity struct {
	UserID int
	Role   models.Role
	Name   string
	Email  string
}

// SigninCustomer matches the identifier against stored phone or email and
// verifies the password. A miss on either reads the same as a miss on both.
func (s *Service) SigninCustomer(identifier, plaintext string) (Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plaintext == "" {
		return Identity{}, ErrMissingFields
	}

	customers, err := s.store.Customers.Load()
	if err != nil {
		return Identity{}, fmt.Errorf("registry: load customers: %w", err)
	}

	for _, c := range customers {
		if (c.Phone == identifier || c.Email == identifier) && s.hasher.Verify(plaintext, c.PasswordHash) {
			return Identity{UserID: c.ID, Role: models.RoleCustomer, Name: c.FullName, Email: c.Email}, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// SigninContractor signs a contractor in; the session display name is the
// company name.
func (s *Service) SigninContractor(identifier, plaintext string) (Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plaintext == "" {
		return Identity{}, ErrMissingFields
	}

	contractors, err := s.store.Contractors.Load()
	if err != nil {
		return Identity{}, fmt.Errorf("registry: load contractors: %w", err)
	}

	for _, c := range contractors {
		if (c.Phone == identifier || c.Email == identifier) && s.hasher.Verify(plaintext, c.PasswordHash) {
			return Identity{UserID: c.ID, Role: models.RoleContractor, Name: c.CompanyName, Email: c.Email}, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// SigninLabourer only matches on email when the record has one; labourers
// without an email sign in by phone. The session contact falls back to the
// phone number for the same reason.
func (s *Service) SigninLabourer(identifier, plaintext string) (Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || plaintext == "" {
		return Identity{}, ErrMissingFields
	}

	labourers, err := s.store.Labourers.Load()
	if err != nil {
		return Identity{}, fmt.Errorf("registry: load labourers: %w", err)
	}

	for _, l := range labourers {
		if (l.Phone == identifier || (l.Email != "" && l.Email == identifier)) && s.hasher.Verify(plaintext, l.PasswordHash) {
			contact := l.Email
			if contact == "" {
				contact = l.Phone
			}
			return Identity{UserID: l.ID, Role: models.RoleLabourer, Name: l.FullName, Email: contact}, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// SigninAdmin accepts the admin username or the admin email as identifier.
func (s *Service) SigninAdmin(username, plaintext string) (Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || plaintext == "" {
		return Identity{}, ErrMissingFields
	}

	admins, err := s.store.Admins.Load()
	if err != nil {
		return Identity{}, fmt.Errorf("registry: load admins: %w", err)
	}

	for _, a := range admins {
		if (a.Username == username || a.Email == username) && s.hasher.Verify(plaintext, a.PasswordHash) {
			return Identity{UserID: a.ID, Role: models.RoleAdmin, Name: a.Name, Email: a.Email}, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}
