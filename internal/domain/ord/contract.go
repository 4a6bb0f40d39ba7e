package ord

import "github.com/rekorder/markirovka/internal/domain"

// Contract describes an advertising contract between two registered
// counterparties. Dates use the YYYY-MM-DD wire format and the amount is a
// ruble string with kopecks; both stay strings end to end so the registry
// record is never reformatted locally.
type Contract struct {
	Type                 ContractType
	ClientExternalID     string
	ContractorExternalID string
	Date                 string
	SubjectType          ContractSubjectType

	// Optional registry attributes.
	Serial                   *string
	Amount                   *string
	ActionType               *ContractActionType
	Flags                    []ContractFlag
	ParentContractExternalID *string
	DateEnd                  *string
	Comment                  *string
	CreateDate               *string
}

// NewContract creates a contract from its required fields.
func NewContract(contractType ContractType, clientExternalID, contractorExternalID, date string, subjectType ContractSubjectType) (*Contract, error) {
	c := &Contract{
		Type:                 contractType,
		ClientExternalID:     clientExternalID,
		ContractorExternalID: contractorExternalID,
		Date:                 date,
		SubjectType:          subjectType,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetType changes the contract type, rejecting values outside the closed set.
func (c *Contract) SetType(contractType ContractType) error {
	if !contractType.IsValid() {
		return domain.NewInvalidInput("type", contractType)
	}
	c.Type = contractType
	return nil
}

// SetSubjectType changes the contract subject.
func (c *Contract) SetSubjectType(subjectType ContractSubjectType) error {
	if !subjectType.IsValid() {
		return domain.NewInvalidInput("subject_type", subjectType)
	}
	c.SubjectType = subjectType
	return nil
}

// SetActionType changes the mediation action type; nil clears it.
func (c *Contract) SetActionType(actionType *ContractActionType) error {
	if actionType != nil && !actionType.IsValid() {
		return domain.NewInvalidInput("action_type", *actionType)
	}
	c.ActionType = actionType
	return nil
}

// SetAmount changes the contract price; nil clears it. The string must parse
// as a non-negative decimal.
func (c *Contract) SetAmount(amount *string) error {
	if amount != nil && !isNonNegativeAmount(*amount) {
		return domain.NewInvalidInput("amount", *amount)
	}
	c.Amount = amount
	return nil
}

// SetFlags replaces the flag list, rejecting any flag outside the closed
// set; nil clears the list.
func (c *Contract) SetFlags(flags []ContractFlag) error {
	for _, flag := range flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	c.Flags = flags
	return nil
}

// AddFlag appends a flag if not already present.
func (c *Contract) AddFlag(flag ContractFlag) error {
	if !flag.IsValid() {
		return domain.NewInvalidInput("flags", flag)
	}
	for _, f := range c.Flags {
		if f == flag {
			return nil
		}
	}
	c.Flags = append(c.Flags, flag)
	return nil
}

// Validate re-checks all contract invariants.
func (c *Contract) Validate() error {
	if !c.Type.IsValid() {
		return domain.NewInvalidInput("type", c.Type)
	}
	if c.ClientExternalID == "" {
		return domain.NewInvalidInput("client_external_id", c.ClientExternalID)
	}
	if c.ContractorExternalID == "" {
		return domain.NewInvalidInput("contractor_external_id", c.ContractorExternalID)
	}
	if c.Date == "" {
		return domain.NewInvalidInput("date", c.Date)
	}
	if !c.SubjectType.IsValid() {
		return domain.NewInvalidInput("subject_type", c.SubjectType)
	}
	if c.ActionType != nil && !c.ActionType.IsValid() {
		return domain.NewInvalidInput("action_type", *c.ActionType)
	}
	if c.Amount != nil && !isNonNegativeAmount(*c.Amount) {
		return domain.NewInvalidInput("amount", *c.Amount)
	}
	for _, flag := range c.Flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	return nil
}
