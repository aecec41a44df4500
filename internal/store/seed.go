package store

import (
	"fmt"
	"log"
	"time"

	"kaamconnect/internal/models"
	"kaamconnect/internal/password"
)

// EnsureDefaultAdmin seeds a single admin account when the admin collection
// is empty. Credentials come from config so deployments can override the
// defaults; this runs on every start but is a no-op once an admin exists.
func (s *Store) EnsureDefaultAdmin(hasher password.Hasher, username, plaintext, email, name string) error {
	return s.Admins.Update(func(admins []models.Admin) ([]models.Admin, error) {
		if len(admins) > 0 {
			return admins, nil
		}

		hash, err := hasher.Hash(plaintext)
		if err != nil {
			return nil, fmt.Errorf("store: hash default admin password: %w", err)
		}

		admin := models.Admin{
			ID:           NextID(admins),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
			Name:         name,
			Role:         "super_admin",
		}

		log.Printf("created default admin user: %s", username)
		return append(admins, admin), nil
	})
}
