// Package memory provides an in-process AccountRepository implementation.
// Credential records live in a mutex-guarded map; the store hands out copies
// so callers can never mutate shared state through a returned pointer.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/domain/account"
	"github.com/rekorder/markirovka/internal/ports"
)

// Compile-time check that AccountRepository implements ports.AccountRepository.
var _ ports.AccountRepository = (*AccountRepository)(nil)

// AccountRepository stores credential records in memory.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]account.Account
}

// NewAccountRepository creates an empty store.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[uuid.UUID]account.Account),
	}
}

// Create stores a new record, rejecting duplicate ids.
func (r *AccountRepository) Create(_ context.Context, acc *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[acc.ID]; exists {
		return fmt.Errorf("account %s: %w", acc.ID, domain.ErrConflict)
	}
	r.accounts[acc.ID] = *acc
	return nil
}

// Get returns a copy of the record with the given id.
func (r *AccountRepository) Get(_ context.Context, id uuid.UUID) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, exists := r.accounts[id]
	if !exists {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return &acc, nil
}

// GetByAccessKey returns a copy of the record holding the given access key.
func (r *AccountRepository) GetByAccessKey(_ context.Context, accessKey string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id := range r.accounts {
		if r.accounts[id].AccessKey == accessKey {
			acc := r.accounts[id]
			return &acc, nil
		}
	}
	return nil, fmt.Errorf("account with access key: %w", domain.ErrNotFound)
}

// List returns copies of all records ordered by creation time, oldest first.
func (r *AccountRepository) List(_ context.Context) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*account.Account, 0, len(r.accounts))
	for id := range r.accounts {
		acc := r.accounts[id]
		accounts = append(accounts, &acc)
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].DateCreate.Equal(accounts[j].DateCreate) {
			return accounts[i].ID.String() < accounts[j].ID.String()
		}
		return accounts[i].DateCreate.Before(accounts[j].DateCreate)
	})
	return accounts, nil
}

// Update replaces an existing record.
func (r *AccountRepository) Update(_ context.Context, acc *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[acc.ID]; !exists {
		return fmt.Errorf("account %s: %w", acc.ID, domain.ErrNotFound)
	}
	r.accounts[acc.ID] = *acc
	return nil
}

// Delete removes a record.
func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[id]; !exists {
		return fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	delete(r.accounts, id)
	return nil
}
