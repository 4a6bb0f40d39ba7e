package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// InvoicePlatform is the wire form of ord.InvoicePlatform.
type InvoicePlatform struct {
	PadExternalID     string              `json:"pad_external_id"`
	ShowsCount        int64               `json:"shows_count"`
	InvoiceShowsCount int64               `json:"invoice_shows_count"`
	Amount            string              `json:"amount"`
	AmountPerEvent    string              `json:"amount_per_event"`
	DateStartPlanned  string              `json:"date_start_planned"`
	DateEndPlanned    string              `json:"date_end_planned"`
	DateStartActual   string              `json:"date_start_actual"`
	DateEndActual     string              `json:"date_end_actual"`
	PayType           ord.CreativePayType `json:"pay_type"`

	Flags []ord.InvoiceFlag `json:"flags,omitempty"`
}

// InvoiceCreative is the wire form of ord.InvoiceCreative. Both fields are
// required on the wire.
type InvoiceCreative struct {
	CreativeExternalID string            `json:"creative_external_id"`
	Platforms          []InvoicePlatform `json:"platforms"`
}

// InvoiceContract is the wire form of ord.InvoiceContract.
type InvoiceContract struct {
	ContractExternalID string `json:"contract_external_id"`
	Amount             string `json:"amount"`

	Flags     []ord.InvoiceFlag `json:"flags,omitempty"`
	Creatives []InvoiceCreative `json:"creatives,omitempty"`
}

// WholeInvoice is the wire form of ord.WholeInvoice.
type WholeInvoice struct {
	ContractExternalID string         `json:"contract_external_id"`
	Date               string         `json:"date"`
	DateStart          string         `json:"date_start"`
	DateEnd            string         `json:"date_end"`
	Amount             string         `json:"amount"`
	ClientRole         ord.PersonRole `json:"client_role"`
	ContractorRole     ord.PersonRole `json:"contractor_role"`

	Serial *string           `json:"serial,omitempty"`
	Flags  []ord.InvoiceFlag `json:"flags,omitempty"`
	Items  []InvoiceContract `json:"items,omitempty"`
}

// NewWholeInvoice converts a validated domain act to its wire form.
func NewWholeInvoice(inv *ord.WholeInvoice) *WholeInvoice {
	out := &WholeInvoice{
		ContractExternalID: inv.ContractExternalID,
		Date:               inv.Date,
		DateStart:          inv.DateStart,
		DateEnd:            inv.DateEnd,
		Amount:             inv.Amount,
		ClientRole:         inv.ClientRole,
		ContractorRole:     inv.ContractorRole,
		Serial:             inv.Serial,
		Flags:              inv.Flags,
	}
	for i := range inv.Items {
		out.Items = append(out.Items, newInvoiceContract(&inv.Items[i]))
	}
	return out
}

func newInvoiceContract(c *ord.InvoiceContract) InvoiceContract {
	out := InvoiceContract{
		ContractExternalID: c.ContractExternalID,
		Amount:             c.Amount,
		Flags:              c.Flags,
	}
	for i := range c.Creatives {
		out.Creatives = append(out.Creatives, newInvoiceCreative(&c.Creatives[i]))
	}
	return out
}

func newInvoiceCreative(c *ord.InvoiceCreative) InvoiceCreative {
	out := InvoiceCreative{
		CreativeExternalID: c.CreativeExternalID,
		Platforms:          make([]InvoicePlatform, 0, len(c.Platforms)),
	}
	for _, p := range c.Platforms {
		out.Platforms = append(out.Platforms, InvoicePlatform(p))
	}
	return out
}

// Domain converts the wire form back to a validated domain act.
func (inv *WholeInvoice) Domain() (*ord.WholeInvoice, error) {
	out := &ord.WholeInvoice{
		ContractExternalID: inv.ContractExternalID,
		Date:               inv.Date,
		DateStart:          inv.DateStart,
		DateEnd:            inv.DateEnd,
		Amount:             inv.Amount,
		ClientRole:         inv.ClientRole,
		ContractorRole:     inv.ContractorRole,
		Serial:             inv.Serial,
		Flags:              inv.Flags,
	}
	for i := range inv.Items {
		out.Items = append(out.Items, inv.Items[i].domain())
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InvoiceContract) domain() ord.InvoiceContract {
	out := ord.InvoiceContract{
		ContractExternalID: c.ContractExternalID,
		Amount:             c.Amount,
		Flags:              c.Flags,
	}
	for i := range c.Creatives {
		out.Creatives = append(out.Creatives, c.Creatives[i].domain())
	}
	return out
}

func (c *InvoiceCreative) domain() ord.InvoiceCreative {
	out := ord.InvoiceCreative{
		CreativeExternalID: c.CreativeExternalID,
		Platforms:          make([]ord.InvoicePlatform, 0, len(c.Platforms)),
	}
	for _, p := range c.Platforms {
		out.Platforms = append(out.Platforms, ord.InvoicePlatform(p))
	}
	return out
}
