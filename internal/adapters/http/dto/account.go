package dto

import (
	"time"

	"github.com/rekorder/markirovka/internal/domain/account"
)

// CreateAccountRequest represents the JSON body for creating a credential
// record.
type CreateAccountRequest struct {
	Name      string `json:"name"      validate:"max=255"`
	AccessKey string `json:"access_key" validate:"required,min=10,max=100"`
}

// Validate checks field constraints. Returns a *domain.ValidationError if
// any checks fail.
func (r *CreateAccountRequest) Validate() error {
	return checkStruct(r)
}

// UpdateAccountRequest represents the JSON body for updating a credential
// record. All fields are optional; nil means "do not change this field".
type UpdateAccountRequest struct {
	Name      *string `json:"name,omitempty"       validate:"omitempty,max=255"`
	AccessKey *string `json:"access_key,omitempty" validate:"omitempty,min=10,max=100"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateAccountRequest) Validate() error {
	return checkStruct(r)
}

// AccountResponse represents a credential record in HTTP responses.
type AccountResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AccessKey  string `json:"access_key"`
	DateCreate string `json:"date_create"`
	DateUpdate string `json:"date_update"`
}

// AccountListResponse represents a list of credential records.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Count    int               `json:"count"`
}

// ToAccountResponse converts a domain account to an HTTP response DTO.
func ToAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID.String(),
		Name:       a.Name,
		AccessKey:  a.AccessKey,
		DateCreate: a.DateCreate.Format(time.RFC3339),
		DateUpdate: a.DateUpdate.Format(time.RFC3339),
	}
}

// ToAccountListResponse converts a slice of domain accounts to an HTTP list
// response DTO.
func ToAccountListResponse(accounts []*account.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		items[i] = ToAccountResponse(a)
	}
	return AccountListResponse{
		Accounts: items,
		Count:    len(items),
	}
}
