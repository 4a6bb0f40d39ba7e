package ord

import "github.com/rekorder/markirovka/internal/domain"

// The invoice family models a billing reconciliation act with full
// reallocation detail: a WholeInvoice attached to an umbrella contract,
// broken down into original contracts, their creatives, and per-placement
// impression figures.

// InvoicePlatform carries the impression figures for one creative on one
// placement within a reallocation.
type InvoicePlatform struct {
	PadExternalID     string
	ShowsCount        int64
	InvoiceShowsCount int64
	Amount            string
	AmountPerEvent    string
	DateStartPlanned  string
	DateEndPlanned    string
	DateStartActual   string
	DateEndActual     string
	PayType           CreativePayType

	Flags []InvoiceFlag
}

// NewInvoicePlatform creates a per-placement record.
func NewInvoicePlatform(padExternalID string, showsCount, invoiceShowsCount int64, amount, amountPerEvent string, payType CreativePayType) (*InvoicePlatform, error) {
	p := &InvoicePlatform{
		PadExternalID:     padExternalID,
		ShowsCount:        showsCount,
		InvoiceShowsCount: invoiceShowsCount,
		Amount:            amount,
		AmountPerEvent:    amountPerEvent,
		PayType:           payType,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetPayType changes the payment model, rejecting values outside the closed
// set.
func (p *InvoicePlatform) SetPayType(payType CreativePayType) error {
	if !payType.IsValid() {
		return domain.NewInvalidInput("pay_type", payType)
	}
	p.PayType = payType
	return nil
}

// Validate re-checks the per-placement invariants. Campaign dates are
// required by the registry but validated there; locally only their presence
// is not enforced because partial acts are assembled incrementally.
func (p *InvoicePlatform) Validate() error {
	if p.PadExternalID == "" {
		return domain.NewInvalidInput("pad_external_id", p.PadExternalID)
	}
	if p.ShowsCount < 0 {
		return domain.NewInvalidInput("shows_count", p.ShowsCount)
	}
	if p.InvoiceShowsCount < 0 {
		return domain.NewInvalidInput("invoice_shows_count", p.InvoiceShowsCount)
	}
	if !isNonNegativeAmount(p.Amount) {
		return domain.NewInvalidInput("amount", p.Amount)
	}
	if !isNonNegativeAmount(p.AmountPerEvent) {
		return domain.NewInvalidInput("amount_per_event", p.AmountPerEvent)
	}
	if !p.PayType.IsValid() {
		return domain.NewInvalidInput("pay_type", p.PayType)
	}
	for _, flag := range p.Flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	return nil
}

// InvoiceCreative lists the placements one creative was shown on within a
// reallocation.
type InvoiceCreative struct {
	CreativeExternalID string
	Platforms          []InvoicePlatform
}

// NewInvoiceCreative creates a per-creative reallocation record.
func NewInvoiceCreative(creativeExternalID string) (*InvoiceCreative, error) {
	c := &InvoiceCreative{
		CreativeExternalID: creativeExternalID,
		Platforms:          []InvoicePlatform{},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AddPlatform appends a per-placement record, rejecting invalid ones.
func (c *InvoiceCreative) AddPlatform(platform InvoicePlatform) error {
	if err := platform.Validate(); err != nil {
		return err
	}
	c.Platforms = append(c.Platforms, platform)
	return nil
}

// Validate re-checks the per-creative invariants.
func (c *InvoiceCreative) Validate() error {
	if c.CreativeExternalID == "" {
		return domain.NewInvalidInput("creative_external_id", c.CreativeExternalID)
	}
	for i := range c.Platforms {
		if err := c.Platforms[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InvoiceContract is one original contract inside a reallocation, carrying
// its share of the act amount and its creatives.
type InvoiceContract struct {
	ContractExternalID string
	Amount             string

	Flags     []InvoiceFlag
	Creatives []InvoiceCreative
}

// NewInvoiceContract creates a reallocation entry for an original contract.
func NewInvoiceContract(contractExternalID, amount string) (*InvoiceContract, error) {
	c := &InvoiceContract{
		ContractExternalID: contractExternalID,
		Amount:             amount,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetFlags replaces the flag list, rejecting any flag outside the closed
// set; nil clears the list.
func (c *InvoiceContract) SetFlags(flags []InvoiceFlag) error {
	for _, flag := range flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	c.Flags = flags
	return nil
}

// AddCreative appends a per-creative record, rejecting invalid ones.
func (c *InvoiceContract) AddCreative(creative InvoiceCreative) error {
	if err := creative.Validate(); err != nil {
		return err
	}
	c.Creatives = append(c.Creatives, creative)
	return nil
}

// Validate re-checks the reallocation entry invariants.
func (c *InvoiceContract) Validate() error {
	if c.ContractExternalID == "" {
		return domain.NewInvalidInput("contract_external_id", c.ContractExternalID)
	}
	if !isPositiveAmount(c.Amount) {
		return domain.NewInvalidInput("amount", c.Amount)
	}
	for _, flag := range c.Flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	for i := range c.Creatives {
		if err := c.Creatives[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WholeInvoice is a reconciliation act with full reallocation detail,
// attached to the umbrella contract identified by ContractExternalID.
type WholeInvoice struct {
	ContractExternalID string
	Date               string
	DateStart          string
	DateEnd            string
	Amount             string
	ClientRole         PersonRole
	ContractorRole     PersonRole

	Serial *string
	Flags  []InvoiceFlag
	Items  []InvoiceContract
}

// NewWholeInvoice creates an act from its required fields.
func NewWholeInvoice(contractExternalID, date, dateStart, dateEnd, amount string, clientRole, contractorRole PersonRole) (*WholeInvoice, error) {
	inv := &WholeInvoice{
		ContractExternalID: contractExternalID,
		Date:               date,
		DateStart:          dateStart,
		DateEnd:            dateEnd,
		Amount:             amount,
		ClientRole:         clientRole,
		ContractorRole:     contractorRole,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// SetClientRole changes the client role, rejecting values outside the
// closed set.
func (inv *WholeInvoice) SetClientRole(role PersonRole) error {
	if !role.IsValid() {
		return domain.NewInvalidInput("client_role", role)
	}
	inv.ClientRole = role
	return nil
}

// SetContractorRole changes the contractor role.
func (inv *WholeInvoice) SetContractorRole(role PersonRole) error {
	if !role.IsValid() {
		return domain.NewInvalidInput("contractor_role", role)
	}
	inv.ContractorRole = role
	return nil
}

// SetFlags replaces the flag list, rejecting any flag outside the closed
// set; nil clears the list.
func (inv *WholeInvoice) SetFlags(flags []InvoiceFlag) error {
	for _, flag := range flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	inv.Flags = flags
	return nil
}

// AddItem appends an original-contract reallocation entry, rejecting invalid
// ones.
func (inv *WholeInvoice) AddItem(item InvoiceContract) error {
	if err := item.Validate(); err != nil {
		return err
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// Validate re-checks all act invariants, recursing into the reallocation
// tree.
func (inv *WholeInvoice) Validate() error {
	if inv.ContractExternalID == "" {
		return domain.NewInvalidInput("contract_external_id", inv.ContractExternalID)
	}
	if inv.Date == "" {
		return domain.NewInvalidInput("date", inv.Date)
	}
	if inv.DateStart == "" {
		return domain.NewInvalidInput("date_start", inv.DateStart)
	}
	if inv.DateEnd == "" {
		return domain.NewInvalidInput("date_end", inv.DateEnd)
	}
	if !isPositiveAmount(inv.Amount) {
		return domain.NewInvalidInput("amount", inv.Amount)
	}
	if !inv.ClientRole.IsValid() {
		return domain.NewInvalidInput("client_role", inv.ClientRole)
	}
	if !inv.ContractorRole.IsValid() {
		return domain.NewInvalidInput("contractor_role", inv.ContractorRole)
	}
	for _, flag := range inv.Flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	for i := range inv.Items {
		if err := inv.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
