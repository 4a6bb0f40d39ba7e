package ports

import (
	"context"
	"io"

	"github.com/rekorder/markirovka/internal/domain/ord"
)

// ListParams carries the optional paging parameters of registry list
// endpoints. Paging is registry-controlled; nil fields are simply omitted
// from the query string.
type ListParams struct {
	Offset *int64
	Limit  *int64
}

// Registry is the outbound port to the ОРД ad-marking API. One method per
// registry operation; Set* operations are idempotent upserts keyed by the
// caller-assigned external id. Implementations never retry.
type Registry interface {
	// Counterparties.
	ListPersons(ctx context.Context, params ListParams) (*ord.ExternalIDItems, error)
	GetPerson(ctx context.Context, externalID string) (*ord.Person, error)
	SetPerson(ctx context.Context, externalID string, person *ord.Person) error

	// Contracts.
	ListContracts(ctx context.Context, params ListParams) (*ord.ExternalIDItems, error)
	GetContract(ctx context.Context, externalID string) (*ord.Contract, error)
	SetContract(ctx context.Context, externalID string, contract *ord.Contract) error

	// Creatives. Submission and amendment return the registry-issued
	// marking tokens.
	ListCreatives(ctx context.Context, params ListParams) (*ord.ExternalIDItems, error)
	GetCreative(ctx context.Context, externalID string) (*ord.Creative, error)
	GetCreativeByErid(ctx context.Context, erid string) (*ord.Creative, error)
	SetCreative(ctx context.Context, externalID string, creative *ord.Creative) (*ord.CreativeEridInfo, error)
	AddTextToCreative(ctx context.Context, externalID string, texts []string) (*ord.CreativeEridInfo, error)
	AddMediaToCreative(ctx context.Context, externalID string, mediaExternalIDs []string) (*ord.CreativeEridInfo, error)

	// Placements.
	ListPads(ctx context.Context, params ListParams) (*ord.ExternalIDItems, error)
	GetPad(ctx context.Context, externalID string) (*ord.Pad, error)
	SetPad(ctx context.Context, externalID string, pad *ord.Pad) error

	// Media. UploadMedia returns the raw decoded acknowledgment; the
	// registry does not document its shape. GetMediaFile returns the stored
	// file content as-is.
	UploadMedia(ctx context.Context, externalID, filename, description string, content io.Reader) (map[string]any, error)
	GetMediaFile(ctx context.Context, externalID string) ([]byte, error)
	GetMediaChecksum(ctx context.Context, externalID string) (*ord.MediaChecksum, error)

	// Reconciliation acts.
	GetInvoice(ctx context.Context, externalID string) (*ord.WholeInvoice, error)
	SetInvoice(ctx context.Context, externalID string, invoice *ord.WholeInvoice) error

	// Impression statistics.
	ListStatistics(ctx context.Context, params ListParams) (*ord.StatisticItems, error)
	SetStatistics(ctx context.Context, items []ord.Statistic) error
}
