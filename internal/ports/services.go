package ports

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/rekorder/markirovka/internal/domain/account"
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// RegistryService is the inbound port for registry operations. It mirrors
// the Registry client port but validates domain values before any network
// call and adds bounded-concurrency batch fetches.
type RegistryService interface {
	Registry

	// Batch fetches by external id; results keep the order of the input ids.
	GetPersons(ctx context.Context, externalIDs []string) ([]*ord.Person, error)
	GetCreatives(ctx context.Context, externalIDs []string) ([]*ord.Creative, error)

	// UploadMediaFile validates the metadata record before delegating to
	// Registry.UploadMedia.
	UploadMediaFile(ctx context.Context, externalID string, media *ord.Media, content io.Reader) (map[string]any, error)
}

// AccountService manages registry API credentials.
type AccountService interface {
	CreateAccount(ctx context.Context, name, accessKey string) (*account.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetAccountByAccessKey(ctx context.Context, accessKey string) (*account.Account, error)
	ListAccounts(ctx context.Context) ([]*account.Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, name, accessKey *string) (*account.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

// AccountRepository is the outbound port for credential persistence.
type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) error
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*account.Account, error)
	List(ctx context.Context) ([]*account.Account, error)
	Update(ctx context.Context, acc *account.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}
