package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Statistic is the wire form of ord.Statistic. Every field is optional on
// the wire, mirroring the domain type.
type Statistic struct {
	ExternalID         *string              `json:"external_id,omitempty"`
	CreativeExternalID *string              `json:"creative_external_id,omitempty"`
	PadExternalID      *string              `json:"pad_external_id,omitempty"`
	ShowsCount         *int64               `json:"shows_count,omitempty"`
	DateStartActual    *string              `json:"date_start_actual,omitempty"`
	DateEndActual      *string              `json:"date_end_actual,omitempty"`
	DateStartPlanned   *string              `json:"date_start_planned,omitempty"`
	DateEndPlanned     *string              `json:"date_end_planned,omitempty"`
	InvoiceShowsCount  *int64               `json:"invoice_shows_count,omitempty"`
	Amount             *string              `json:"amount,omitempty"`
	AmountPerEvent     *string              `json:"amount_per_event,omitempty"`
	PayType            *ord.CreativePayType `json:"pay_type,omitempty"`
}

// NewStatistic converts a validated domain statistic to its wire form.
func NewStatistic(s *ord.Statistic) *Statistic {
	return &Statistic{
		ExternalID:         s.ExternalID,
		CreativeExternalID: s.CreativeExternalID,
		PadExternalID:      s.PadExternalID,
		ShowsCount:         s.ShowsCount,
		DateStartActual:    s.DateStartActual,
		DateEndActual:      s.DateEndActual,
		DateStartPlanned:   s.DateStartPlanned,
		DateEndPlanned:     s.DateEndPlanned,
		InvoiceShowsCount:  s.InvoiceShowsCount,
		Amount:             s.Amount,
		AmountPerEvent:     s.AmountPerEvent,
		PayType:            s.PayType,
	}
}

// Domain converts the wire form back to a validated domain statistic.
func (s *Statistic) Domain() (*ord.Statistic, error) {
	out := &ord.Statistic{
		ExternalID:         s.ExternalID,
		CreativeExternalID: s.CreativeExternalID,
		PadExternalID:      s.PadExternalID,
		ShowsCount:         s.ShowsCount,
		DateStartActual:    s.DateStartActual,
		DateEndActual:      s.DateEndActual,
		DateStartPlanned:   s.DateStartPlanned,
		DateEndPlanned:     s.DateEndPlanned,
		InvoiceShowsCount:  s.InvoiceShowsCount,
		Amount:             s.Amount,
		AmountPerEvent:     s.AmountPerEvent,
		PayType:            s.PayType,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// StatisticItems is the wire form of a paged statistics listing.
type StatisticItems struct {
	Items           []Statistic `json:"items,omitempty"`
	Limit           *int64      `json:"limit,omitempty"`
	TotalItemsCount *int64      `json:"total_items_count,omitempty"`
}

// Domain converts the wire form back to the domain listing, validating each
// contained record.
func (si *StatisticItems) Domain() (*ord.StatisticItems, error) {
	out := &ord.StatisticItems{
		Limit:           si.Limit,
		TotalItemsCount: si.TotalItemsCount,
	}
	if si.Items != nil {
		out.Items = make([]ord.Statistic, 0, len(si.Items))
		for i := range si.Items {
			item, err := si.Items[i].Domain()
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, *item)
		}
	}
	return out, nil
}
