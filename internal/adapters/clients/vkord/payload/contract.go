package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Contract is the wire form of ord.Contract.
type Contract struct {
	Type                 ord.ContractType        `json:"type"`
	ClientExternalID     string                  `json:"client_external_id"`
	ContractorExternalID string                  `json:"contractor_external_id"`
	Date                 string                  `json:"date"`
	SubjectType          ord.ContractSubjectType `json:"subject_type"`

	Serial                   *string                 `json:"serial,omitempty"`
	Amount                   *string                 `json:"amount,omitempty"`
	ActionType               *ord.ContractActionType `json:"action_type,omitempty"`
	Flags                    []ord.ContractFlag      `json:"flags,omitempty"`
	ParentContractExternalID *string                 `json:"parent_contract_external_id,omitempty"`
	DateEnd                  *string                 `json:"date_end,omitempty"`
	Comment                  *string                 `json:"comment,omitempty"`
	CreateDate               *string                 `json:"create_date,omitempty"`
}

// NewContract converts a validated domain contract to its wire form.
func NewContract(c *ord.Contract) *Contract {
	return &Contract{
		Type:                     c.Type,
		ClientExternalID:         c.ClientExternalID,
		ContractorExternalID:     c.ContractorExternalID,
		Date:                     c.Date,
		SubjectType:              c.SubjectType,
		Serial:                   c.Serial,
		Amount:                   c.Amount,
		ActionType:               c.ActionType,
		Flags:                    c.Flags,
		ParentContractExternalID: c.ParentContractExternalID,
		DateEnd:                  c.DateEnd,
		Comment:                  c.Comment,
		CreateDate:               c.CreateDate,
	}
}

// Domain converts the wire form back to a validated domain contract.
func (c *Contract) Domain() (*ord.Contract, error) {
	out := &ord.Contract{
		Type:                     c.Type,
		ClientExternalID:         c.ClientExternalID,
		ContractorExternalID:     c.ContractorExternalID,
		Date:                     c.Date,
		SubjectType:              c.SubjectType,
		Serial:                   c.Serial,
		Amount:                   c.Amount,
		ActionType:               c.ActionType,
		Flags:                    c.Flags,
		ParentContractExternalID: c.ParentContractExternalID,
		DateEnd:                  c.DateEnd,
		Comment:                  c.Comment,
		CreateDate:               c.CreateDate,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
