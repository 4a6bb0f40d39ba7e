// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rekorder/markirovka/internal/app/fanout"
	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/domain/ord"
	"github.com/rekorder/markirovka/internal/ports"
)

// defaultBatchWorkers bounds the concurrency of batch fetches so a large id
// list cannot flood the registry.
const defaultBatchWorkers = 8

// Compile-time check that RegistryService implements ports.RegistryService.
var _ ports.RegistryService = (*RegistryService)(nil)

// RegistryService implements ports.RegistryService by orchestrating calls to
// the registry through the Registry client port. It handles structured
// logging and bounded-concurrency batch fetches but contains no business
// logic; failures are classified and logged at the client layer.
type RegistryService struct {
	registry     ports.Registry
	batchWorkers int
	logger       *slog.Logger
}

// NewRegistryService creates a RegistryService. batchWorkers bounds the
// concurrency of GetPersons and GetCreatives; values below 1 fall back to the
// default.
func NewRegistryService(registry ports.Registry, batchWorkers int, logger *slog.Logger) *RegistryService {
	if batchWorkers < 1 {
		batchWorkers = defaultBatchWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RegistryService{
		registry:     registry,
		batchWorkers: batchWorkers,
		logger:       logger,
	}
}

// ListPersons returns one page of counterparty external ids.
func (s *RegistryService) ListPersons(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	s.logger.InfoContext(ctx, "listing persons")
	return s.registry.ListPersons(ctx, params)
}

// GetPerson returns a single counterparty by external id.
func (s *RegistryService) GetPerson(ctx context.Context, externalID string) (*ord.Person, error) {
	s.logger.InfoContext(ctx, "fetching person", slog.String("external_id", externalID))
	return s.registry.GetPerson(ctx, externalID)
}

// SetPerson creates or updates a counterparty under the given external id.
func (s *RegistryService) SetPerson(ctx context.Context, externalID string, person *ord.Person) error {
	s.logger.InfoContext(ctx, "submitting person", slog.String("external_id", externalID))
	return s.registry.SetPerson(ctx, externalID, person)
}

// GetPersons fetches multiple counterparties concurrently, preserving the
// order of the input ids. The first failure aborts the whole batch.
func (s *RegistryService) GetPersons(ctx context.Context, externalIDs []string) ([]*ord.Person, error) {
	s.logger.InfoContext(ctx, "fetching persons", slog.Int("count", len(externalIDs)))

	results := fanout.Run(ctx, s.batchWorkers, externalIDs, s.registry.GetPerson)
	persons := make([]*ord.Person, len(results))
	for i, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch person in batch",
				slog.String("operation", "GetPersons"),
				slog.String("external_id", externalIDs[i]),
				slog.Any("error", res.Err),
			)
			return nil, fmt.Errorf("fetching person %q: %w", externalIDs[i], res.Err)
		}
		persons[i] = res.Value
	}
	return persons, nil
}

// ListContracts returns one page of contract external ids.
func (s *RegistryService) ListContracts(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	s.logger.InfoContext(ctx, "listing contracts")
	return s.registry.ListContracts(ctx, params)
}

// GetContract returns a single contract by external id.
func (s *RegistryService) GetContract(ctx context.Context, externalID string) (*ord.Contract, error) {
	s.logger.InfoContext(ctx, "fetching contract", slog.String("external_id", externalID))
	return s.registry.GetContract(ctx, externalID)
}

// SetContract creates or updates a contract under the given external id.
func (s *RegistryService) SetContract(ctx context.Context, externalID string, contract *ord.Contract) error {
	s.logger.InfoContext(ctx, "submitting contract", slog.String("external_id", externalID))
	return s.registry.SetContract(ctx, externalID, contract)
}

// ListCreatives returns one page of creative external ids.
func (s *RegistryService) ListCreatives(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	s.logger.InfoContext(ctx, "listing creatives")
	return s.registry.ListCreatives(ctx, params)
}

// GetCreative returns a single creative by external id.
func (s *RegistryService) GetCreative(ctx context.Context, externalID string) (*ord.Creative, error) {
	s.logger.InfoContext(ctx, "fetching creative", slog.String("external_id", externalID))
	return s.registry.GetCreative(ctx, externalID)
}

// GetCreativeByErid returns a single creative by its issued erid.
func (s *RegistryService) GetCreativeByErid(ctx context.Context, erid string) (*ord.Creative, error) {
	s.logger.InfoContext(ctx, "fetching creative by erid", slog.String("erid", erid))
	return s.registry.GetCreativeByErid(ctx, erid)
}

// GetCreatives fetches multiple creatives concurrently, preserving the order
// of the input ids. The first failure aborts the whole batch.
func (s *RegistryService) GetCreatives(ctx context.Context, externalIDs []string) ([]*ord.Creative, error) {
	s.logger.InfoContext(ctx, "fetching creatives", slog.Int("count", len(externalIDs)))

	results := fanout.Run(ctx, s.batchWorkers, externalIDs, s.registry.GetCreative)
	creatives := make([]*ord.Creative, len(results))
	for i, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch creative in batch",
				slog.String("operation", "GetCreatives"),
				slog.String("external_id", externalIDs[i]),
				slog.Any("error", res.Err),
			)
			return nil, fmt.Errorf("fetching creative %q: %w", externalIDs[i], res.Err)
		}
		creatives[i] = res.Value
	}
	return creatives, nil
}

// SetCreative submits a creative for marking and returns the issued token
// pair.
func (s *RegistryService) SetCreative(ctx context.Context, externalID string, creative *ord.Creative) (*ord.CreativeEridInfo, error) {
	s.logger.InfoContext(ctx, "submitting creative", slog.String("external_id", externalID))
	return s.registry.SetCreative(ctx, externalID, creative)
}

// AddTextToCreative appends texts to an already registered creative.
func (s *RegistryService) AddTextToCreative(ctx context.Context, externalID string, texts []string) (*ord.CreativeEridInfo, error) {
	s.logger.InfoContext(ctx, "adding texts to creative",
		slog.String("external_id", externalID),
		slog.Int("count", len(texts)),
	)
	return s.registry.AddTextToCreative(ctx, externalID, texts)
}

// AddMediaToCreative attaches uploaded media files to an already registered
// creative.
func (s *RegistryService) AddMediaToCreative(ctx context.Context, externalID string, mediaExternalIDs []string) (*ord.CreativeEridInfo, error) {
	s.logger.InfoContext(ctx, "adding media to creative",
		slog.String("external_id", externalID),
		slog.Int("count", len(mediaExternalIDs)),
	)
	return s.registry.AddMediaToCreative(ctx, externalID, mediaExternalIDs)
}

// ListPads returns one page of placement external ids.
func (s *RegistryService) ListPads(ctx context.Context, params ports.ListParams) (*ord.ExternalIDItems, error) {
	s.logger.InfoContext(ctx, "listing pads")
	return s.registry.ListPads(ctx, params)
}

// GetPad returns a single placement by external id.
func (s *RegistryService) GetPad(ctx context.Context, externalID string) (*ord.Pad, error) {
	s.logger.InfoContext(ctx, "fetching pad", slog.String("external_id", externalID))
	return s.registry.GetPad(ctx, externalID)
}

// SetPad creates or updates a placement under the given external id.
func (s *RegistryService) SetPad(ctx context.Context, externalID string, pad *ord.Pad) error {
	s.logger.InfoContext(ctx, "submitting pad", slog.String("external_id", externalID))
	return s.registry.SetPad(ctx, externalID, pad)
}

// UploadMedia streams raw file content to the registry.
func (s *RegistryService) UploadMedia(ctx context.Context, externalID, filename, description string, content io.Reader) (map[string]any, error) {
	s.logger.InfoContext(ctx, "uploading media",
		slog.String("external_id", externalID),
		slog.String("filename", filename),
	)
	return s.registry.UploadMedia(ctx, externalID, filename, description, content)
}

// UploadMediaFile uploads file content described by a media metadata record.
// Only the filename and description matter on upload; size, checksum and
// creation date are assigned by the registry.
func (s *RegistryService) UploadMediaFile(ctx context.Context, externalID string, media *ord.Media, content io.Reader) (map[string]any, error) {
	if media == nil || media.Filename == "" {
		return nil, domain.NewInvalidInput("filename", "")
	}

	description := ""
	if media.Description != nil {
		description = *media.Description
	}
	return s.UploadMedia(ctx, externalID, media.Filename, description, content)
}

// GetMediaFile downloads the raw content of a stored media file.
func (s *RegistryService) GetMediaFile(ctx context.Context, externalID string) ([]byte, error) {
	s.logger.InfoContext(ctx, "downloading media", slog.String("external_id", externalID))
	return s.registry.GetMediaFile(ctx, externalID)
}

// GetMediaChecksum returns the registry-computed checksum of a stored media
// file.
func (s *RegistryService) GetMediaChecksum(ctx context.Context, externalID string) (*ord.MediaChecksum, error) {
	s.logger.InfoContext(ctx, "fetching media checksum", slog.String("external_id", externalID))
	return s.registry.GetMediaChecksum(ctx, externalID)
}

// GetInvoice returns a reconciliation act by external id.
func (s *RegistryService) GetInvoice(ctx context.Context, externalID string) (*ord.WholeInvoice, error) {
	s.logger.InfoContext(ctx, "fetching invoice", slog.String("external_id", externalID))
	return s.registry.GetInvoice(ctx, externalID)
}

// SetInvoice creates or updates a reconciliation act under the given external
// id.
func (s *RegistryService) SetInvoice(ctx context.Context, externalID string, invoice *ord.WholeInvoice) error {
	s.logger.InfoContext(ctx, "submitting invoice", slog.String("external_id", externalID))
	return s.registry.SetInvoice(ctx, externalID, invoice)
}

// ListStatistics returns one page of impression statistics.
func (s *RegistryService) ListStatistics(ctx context.Context, params ports.ListParams) (*ord.StatisticItems, error) {
	s.logger.InfoContext(ctx, "listing statistics")
	return s.registry.ListStatistics(ctx, params)
}

// SetStatistics submits a batch of impression records.
func (s *RegistryService) SetStatistics(ctx context.Context, items []ord.Statistic) error {
	s.logger.InfoContext(ctx, "submitting statistics", slog.Int("count", len(items)))
	return s.registry.SetStatistics(ctx, items)
}
