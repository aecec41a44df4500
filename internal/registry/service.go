// Package registry implements per-role account signup and sign-in over the
// record store, plus the read-only dashboard projections.
package registry

import (
	"kaamconnect/internal/password"
	"kaamconnect/internal/store"
)

// Service is the account registry. It owns all writes to the record
// collections; handlers never touch the store directly.
type Service struct {
	store  *store.Store
	hasher password.Hasher
}

func NewService(st *store.Store, hasher password.Hasher) *Service {
	return &Service{store: st, hasher: hasher}
}
