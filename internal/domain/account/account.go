// Package account holds the credential record backing registry API access.
package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/rekorder/markirovka/internal/domain"
)

const (
	minAccessKeyLen = 10
	maxAccessKeyLen = 100
	maxNameLen      = 255
)

// Account is a registry API credential: a display name plus the bearer
// access key used to authenticate requests.
type Account struct {
	ID         uuid.UUID
	Name       string
	AccessKey  string
	DateCreate time.Time
	DateUpdate time.Time
}

// New creates an account with a fresh identifier and timestamps.
func New(name, accessKey string) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		ID:         uuid.New(),
		Name:       name,
		AccessKey:  accessKey,
		DateCreate: now,
		DateUpdate: now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName changes the display name and bumps the update timestamp.
func (a *Account) SetName(name string) error {
	if len(name) > maxNameLen {
		return domain.NewInvalidInput("name", name)
	}
	a.Name = name
	a.DateUpdate = time.Now().UTC()
	return nil
}

// SetAccessKey replaces the access key and bumps the update timestamp.
func (a *Account) SetAccessKey(key string) error {
	if len(key) < minAccessKeyLen || len(key) > maxAccessKeyLen {
		return domain.NewInvalidInput("access_key", key)
	}
	a.AccessKey = key
	a.DateUpdate = time.Now().UTC()
	return nil
}

// Validate re-checks the account invariants.
func (a *Account) Validate() error {
	fields := map[string]string{}
	if a.ID == uuid.Nil {
		fields["id"] = domain.MsgRequired
	}
	if len(a.Name) > maxNameLen {
		fields["name"] = "must be at most 255 characters"
	}
	if len(a.AccessKey) < minAccessKeyLen || len(a.AccessKey) > maxAccessKeyLen {
		fields["access_key"] = "must be between 10 and 100 characters"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
