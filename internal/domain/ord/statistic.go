package ord

import "github.com/rekorder/markirovka/internal/domain"

// Statistic is one per-(creative, placement) impression record. Every field
// is optional: registry responses may omit any of them, and outbound
// submissions fill in only what the caller tracks.
type Statistic struct {
	ExternalID         *string
	CreativeExternalID *string
	PadExternalID      *string
	ShowsCount         *int64
	DateStartActual    *string
	DateEndActual      *string
	DateStartPlanned   *string
	DateEndPlanned     *string
	InvoiceShowsCount  *int64
	Amount             *string
	AmountPerEvent     *string
	PayType            *CreativePayType
}

// SetPayType changes the payment model; nil clears it.
func (s *Statistic) SetPayType(payType *CreativePayType) error {
	if payType != nil && !payType.IsValid() {
		return domain.NewInvalidInput("pay_type", *payType)
	}
	s.PayType = payType
	return nil
}

// Validate re-checks the statistic invariants.
func (s *Statistic) Validate() error {
	if s.PayType != nil && !s.PayType.IsValid() {
		return domain.NewInvalidInput("pay_type", *s.PayType)
	}
	if s.Amount != nil && !isNonNegativeAmount(*s.Amount) {
		return domain.NewInvalidInput("amount", *s.Amount)
	}
	if s.AmountPerEvent != nil && !isNonNegativeAmount(*s.AmountPerEvent) {
		return domain.NewInvalidInput("amount_per_event", *s.AmountPerEvent)
	}
	return nil
}

// StatisticItems is a paged statistics listing. A nil Items slice means the
// response carried no items key at all.
type StatisticItems struct {
	Items           []Statistic
	Limit           *int64
	TotalItemsCount *int64
}

// AddItem appends a statistic record, rejecting invalid ones.
func (si *StatisticItems) AddItem(item Statistic) error {
	if err := item.Validate(); err != nil {
		return err
	}
	si.Items = append(si.Items, item)
	return nil
}

// Validate re-checks every contained statistic.
func (si *StatisticItems) Validate() error {
	for i := range si.Items {
		if err := si.Items[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
