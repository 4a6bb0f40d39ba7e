package ord

import "github.com/rekorder/markirovka/internal/domain"

// Creative is an advertising creative submitted for marking. Exactly one of
// PersonExternalID or ContractExternalID must be set; the registry binds the
// creative either to a counterparty directly or to an original contract,
// never both. The erid is issued by the registry and is never computed
// locally.
type Creative struct {
	PayType CreativePayType
	Form    CreativeForm

	PersonExternalID   *string
	ContractExternalID *string

	// Optional classification metadata. Nil slices are absent from the wire
	// form; OKVED and KKTU are Russian economic-activity and commodity codes.
	OKVEDs      []string
	KKTUs       []string
	Name        *string
	Brand       *string
	Category    *string
	Description *string
	Targeting   *string

	// Required collections, always present on the wire even when empty.
	TargetURLs       []string
	Texts            []string
	MediaExternalIDs []string
	Flags            []CreativeFlag

	CreateDate *string
	Erid       *string
}

// NewCreative creates a creative bound to exactly one of a counterparty or a
// contract external id.
func NewCreative(payType CreativePayType, form CreativeForm, personExternalID, contractExternalID *string) (*Creative, error) {
	c := &Creative{
		PayType:            payType,
		Form:               form,
		PersonExternalID:   personExternalID,
		ContractExternalID: contractExternalID,
		TargetURLs:         []string{},
		Texts:              []string{},
		MediaExternalIDs:   []string{},
		Flags:              []CreativeFlag{},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetPayType changes the payment model, rejecting values outside the closed
// set.
func (c *Creative) SetPayType(payType CreativePayType) error {
	if !payType.IsValid() {
		return domain.NewInvalidInput("pay_type", payType)
	}
	c.PayType = payType
	return nil
}

// SetForm changes the distribution form.
func (c *Creative) SetForm(form CreativeForm) error {
	if !form.IsValid() {
		return domain.NewInvalidInput("form", form)
	}
	c.Form = form
	return nil
}

// SetPersonExternalID binds the creative to a counterparty. Rejected while a
// contract binding is present; clear that first.
func (c *Creative) SetPersonExternalID(id *string) error {
	if id != nil && c.ContractExternalID != nil {
		return domain.NewInvalidInput("person_external_id", *id)
	}
	c.PersonExternalID = id
	return nil
}

// SetContractExternalID binds the creative to an original contract. Rejected
// while a counterparty binding is present.
func (c *Creative) SetContractExternalID(id *string) error {
	if id != nil && c.PersonExternalID != nil {
		return domain.NewInvalidInput("contract_external_id", *id)
	}
	c.ContractExternalID = id
	return nil
}

// AddTargetURL appends a target URL if not already present.
func (c *Creative) AddTargetURL(url string) {
	for _, u := range c.TargetURLs {
		if u == url {
			return
		}
	}
	c.TargetURLs = append(c.TargetURLs, url)
}

// AddText appends a creative text if not already present.
func (c *Creative) AddText(text string) {
	for _, t := range c.Texts {
		if t == text {
			return
		}
	}
	c.Texts = append(c.Texts, text)
}

// AddMediaExternalID appends a media file reference if not already present.
func (c *Creative) AddMediaExternalID(id string) {
	for _, m := range c.MediaExternalIDs {
		if m == id {
			return
		}
	}
	c.MediaExternalIDs = append(c.MediaExternalIDs, id)
}

// SetFlags replaces the flag list, rejecting any flag outside the closed set.
func (c *Creative) SetFlags(flags []CreativeFlag) error {
	for _, flag := range flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	c.Flags = flags
	return nil
}

// AddFlag appends a flag if not already present.
func (c *Creative) AddFlag(flag CreativeFlag) error {
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

// Validate re-checks all creative invariants, including the exclusive
// counterparty/contract binding.
func (c *Creative) Validate() error {
	if !c.PayType.IsValid() {
		return domain.NewInvalidInput("pay_type", c.PayType)
	}
	if !c.Form.IsValid() {
		return domain.NewInvalidInput("form", c.Form)
	}
	if c.PersonExternalID == nil && c.ContractExternalID == nil {
		return domain.NewInvalidInput("person_external_id", nil)
	}
	if c.PersonExternalID != nil && c.ContractExternalID != nil {
		return domain.NewInvalidInput("contract_external_id", *c.ContractExternalID)
	}
	for _, flag := range c.Flags {
		if !flag.IsValid() {
			return domain.NewInvalidInput("flags", flag)
		}
	}
	return nil
}
