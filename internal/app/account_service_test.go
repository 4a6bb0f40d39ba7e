package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/rekorder/markirovka/internal/domain"
	"github.com/rekorder/markirovka/internal/domain/account"
	"github.com/rekorder/markirovka/mocks"
)

func validAccount(t *testing.T) *account.Account {
	t.Helper()
	acc, err := account.New("production", "key-0123456789")
	if err != nil {
		t.Fatalf("account.New() error = %v", err)
	}
	return acc
}

func TestNewAccountService_NilLogger(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockAccountRepository(t)

	svc := NewAccountService(mockRepo, nil)
	if svc.logger == nil {
		t.Fatal("NewAccountService(nil logger) should create a no-op logger, got nil")
	}
}

func TestAccountService_CreateAccount(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid account", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		acc, err := svc.CreateAccount(context.Background(), "production", "key-0123456789")
		if err != nil {
			t.Fatalf("CreateAccount() error = %v, want nil", err)
		}
		if acc.ID == uuid.Nil {
			t.Error("CreateAccount() should assign an id")
		}
		if acc.Name != "production" {
			t.Errorf("CreateAccount() name = %q, want %q", acc.Name, "production")
		}
	})

	t.Run("rejects a short access key without touching the repo", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		_, err := svc.CreateAccount(context.Background(), "production", "short")
		if err == nil {
			t.Fatal("CreateAccount() should reject a short access key")
		}
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("CreateAccount() error = %T, want *domain.ValidationError", err)
		}
		if _, ok := verr.Fields["access_key"]; !ok {
			t.Errorf("ValidationError should name access_key, got %v", verr.Fields)
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrConflict)

		_, err := svc.CreateAccount(context.Background(), "production", "key-0123456789")
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("CreateAccount() error = %v, want ErrConflict", err)
		}
	})
}

func TestAccountService_GetAccount(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored account", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		want := validAccount(t)
		mockRepo.EXPECT().Get(mock.Anything, want.ID).Return(want, nil)

		got, err := svc.GetAccount(context.Background(), want.ID)
		if err != nil {
			t.Fatalf("GetAccount() error = %v, want nil", err)
		}
		if got != want {
			t.Errorf("GetAccount() = %v, want %v", got, want)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		id := uuid.New()
		mockRepo.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := svc.GetAccount(context.Background(), id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetAccount() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAccountService_GetAccountByAccessKey(t *testing.T) {
	t.Parallel()

	t.Run("returns the matching account", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		want := validAccount(t)
		mockRepo.EXPECT().GetByAccessKey(mock.Anything, "key-0123456789").Return(want, nil)

		got, err := svc.GetAccountByAccessKey(context.Background(), "key-0123456789")
		if err != nil {
			t.Fatalf("GetAccountByAccessKey() error = %v, want nil", err)
		}
		if got != want {
			t.Errorf("GetAccountByAccessKey() = %v, want %v", got, want)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		mockRepo.EXPECT().GetByAccessKey(mock.Anything, "unknown-key-000").Return(nil, domain.ErrNotFound)

		_, err := svc.GetAccountByAccessKey(context.Background(), "unknown-key-000")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetAccountByAccessKey() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAccountService_ListAccounts(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockAccountRepository(t)
	svc := NewAccountService(mockRepo, discardLogger())

	want := []*account.Account{validAccount(t), validAccount(t)}
	mockRepo.EXPECT().List(mock.Anything).Return(want, nil)

	got, err := svc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts() error = %v, want nil", err)
	}
	if len(got) != 2 {
		t.Errorf("ListAccounts() returned %d accounts, want 2", len(got))
	}
}

func TestAccountService_UpdateAccount(t *testing.T) {
	t.Parallel()

	t.Run("applies partial updates", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		acc := validAccount(t)
		mockRepo.EXPECT().Get(mock.Anything, acc.ID).Return(acc, nil)
		mockRepo.EXPECT().Update(mock.Anything, acc).Return(nil)

		got, err := svc.UpdateAccount(context.Background(), acc.ID, strPtr("staging"), nil)
		if err != nil {
			t.Fatalf("UpdateAccount() error = %v, want nil", err)
		}
		if got.Name != "staging" {
			t.Errorf("UpdateAccount() name = %q, want %q", got.Name, "staging")
		}
		if got.AccessKey != "key-0123456789" {
			t.Errorf("UpdateAccount() should keep the access key, got %q", got.AccessKey)
		}
	})

	t.Run("rejects an invalid access key without persisting", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		acc := validAccount(t)
		mockRepo.EXPECT().Get(mock.Anything, acc.ID).Return(acc, nil)

		_, err := svc.UpdateAccount(context.Background(), acc.ID, nil, strPtr("short"))
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("UpdateAccount() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		mockRepo := mocks.NewMockAccountRepository(t)
		svc := NewAccountService(mockRepo, discardLogger())

		id := uuid.New()
		mockRepo.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrNotFound)

		_, err := svc.UpdateAccount(context.Background(), id, strPtr("staging"), nil)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateAccount() error = %v, want ErrNotFound", err)
		}
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	t.Parallel()
	mockRepo := mocks.NewMockAccountRepository(t)
	svc := NewAccountService(mockRepo, discardLogger())

	id := uuid.New()
	mockRepo.EXPECT().Delete(mock.Anything, id).Return(nil)

	if err := svc.DeleteAccount(context.Background(), id); err != nil {
		t.Errorf("DeleteAccount() error = %v, want nil", err)
	}
}
