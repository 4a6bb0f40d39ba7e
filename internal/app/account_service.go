package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rekorder/markirovka/internal/domain/account"
	"github.com/rekorder/markirovka/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService manages registry API credentials through the
// AccountRepository port. Access keys never appear in log output; the
// redacting log handler drops them by field name.
type AccountService struct {
	repo   ports.AccountRepository
	logger *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(repo ports.AccountRepository, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAccount validates and stores a new credential record.
func (s *AccountService) CreateAccount(ctx context.Context, name, accessKey string) (*account.Account, error) {
	s.logger.InfoContext(ctx, "creating account", slog.String("name", name))

	acc, err := account.New(name, accessKey)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		s.logger.ErrorContext(ctx, "failed to create account",
			slog.String("operation", "CreateAccount"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return acc, nil
}

// GetAccount returns a credential record by id.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	s.logger.InfoContext(ctx, "fetching account", slog.String("id", id.String()))

	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch account",
			slog.String("operation", "GetAccount"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return acc, nil
}

// GetAccountByAccessKey returns the credential record holding the given
// access key. The key itself is never logged.
func (s *AccountService) GetAccountByAccessKey(ctx context.Context, accessKey string) (*account.Account, error) {
	s.logger.InfoContext(ctx, "fetching account by access key")

	acc, err := s.repo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch account by access key",
			slog.String("operation", "GetAccountByAccessKey"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return acc, nil
}

// ListAccounts returns all credential records.
func (s *AccountService) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	s.logger.InfoContext(ctx, "listing accounts")

	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list accounts",
			slog.String("operation", "ListAccounts"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount applies a partial update; nil fields keep their current
// value.
func (s *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, name, accessKey *string) (*account.Account, error) {
	s.logger.InfoContext(ctx, "updating account", slog.String("id", id.String()))

	acc, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch account",
			slog.String("operation", "UpdateAccount"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if name != nil {
		if err := acc.SetName(*name); err != nil {
			return nil, err
		}
	}
	if accessKey != nil {
		if err := acc.SetAccessKey(*accessKey); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, acc); err != nil {
		s.logger.ErrorContext(ctx, "failed to update account",
			slog.String("operation", "UpdateAccount"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return acc, nil
}

// DeleteAccount removes a credential record.
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	s.logger.InfoContext(ctx, "deleting account", slog.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete account",
			slog.String("operation", "DeleteAccount"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
