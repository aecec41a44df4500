package store

import (
	"fmt"
	"os"
	"path/filepath"

	"kaamconnect/internal/models"
)

// Store bundles the four per-role record files under one data directory.
// Each collection is owned by its role's registry; there are no references
// between files.
type Store struct {
	Customers   *Collection[models.Customer]
	Contractors *Collection[models.Contractor]
	Labourers   *Collection[models.Labourer]
	Admins      *Collection[models.Admin]
}

// Open creates the data directory if needed and wires up the collections.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	return &Store{
		Customers:   newCollection[models.Customer](filepath.Join(dataDir, "customers.json")),
		Contractors: newCollection[models.Contractor](filepath.Join(dataDir, "contractors.json")),
		Labourers:   newCollection[models.Labourer](filepath.Join(dataDir, "labourers.json")),
		Admins:      newCollection[models.Admin](filepath.Join(dataDir, "admin.json")),
	}, nil
}
