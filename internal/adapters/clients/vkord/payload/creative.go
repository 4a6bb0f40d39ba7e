package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Creative is the wire form of ord.Creative. The four required collections
// carry no omitempty: the registry expects them on every submission, empty
// or not.
type Creative struct {
	PayType ord.CreativePayType `json:"pay_type"`
	Form    ord.CreativeForm    `json:"form"`

	PersonExternalID   *string `json:"person_external_id,omitempty"`
	ContractExternalID *string `json:"contract_external_id,omitempty"`

	OKVEDs      []string `json:"okveds,omitempty"`
	KKTUs       []string `json:"kktus,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Targeting   *string  `json:"targeting,omitempty"`

	TargetURLs       []string           `json:"target_urls"`
	Texts            []string           `json:"texts"`
	MediaExternalIDs []string           `json:"media_external_ids"`
	Flags            []ord.CreativeFlag `json:"flags"`

	CreateDate *string `json:"create_date,omitempty"`
	Erid       *string `json:"erid,omitempty"`
}

// NewCreative converts a validated domain creative to its wire form.
func NewCreative(c *ord.Creative) *Creative {
	return &Creative{
		PayType:            c.PayType,
		Form:               c.Form,
		PersonExternalID:   c.PersonExternalID,
		ContractExternalID: c.ContractExternalID,
		OKVEDs:             c.OKVEDs,
		KKTUs:              c.KKTUs,
		Name:               c.Name,
		Brand:              c.Brand,
		Category:           c.Category,
		Description:        c.Description,
		Targeting:          c.Targeting,
		TargetURLs:         emptyIfNil(c.TargetURLs),
		Texts:              emptyIfNil(c.Texts),
		MediaExternalIDs:   emptyIfNil(c.MediaExternalIDs),
		Flags:              emptyFlagsIfNil(c.Flags),
		CreateDate:         c.CreateDate,
		Erid:               c.Erid,
	}
}

// Domain converts the wire form back to a validated domain creative. Required
// collections the registry omitted come back as empty slices, matching what
// NewCreative emits.
func (c *Creative) Domain() (*ord.Creative, error) {
	out := &ord.Creative{
		PayType:            c.PayType,
		Form:               c.Form,
		PersonExternalID:   c.PersonExternalID,
		ContractExternalID: c.ContractExternalID,
		OKVEDs:             c.OKVEDs,
		KKTUs:              c.KKTUs,
		Name:               c.Name,
		Brand:              c.Brand,
		Category:           c.Category,
		Description:        c.Description,
		Targeting:          c.Targeting,
		TargetURLs:         emptyIfNil(c.TargetURLs),
		Texts:              emptyIfNil(c.Texts),
		MediaExternalIDs:   emptyIfNil(c.MediaExternalIDs),
		Flags:              emptyFlagsIfNil(c.Flags),
		CreateDate:         c.CreateDate,
		Erid:               c.Erid,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyFlagsIfNil(s []ord.CreativeFlag) []ord.CreativeFlag {
	if s == nil {
		return []ord.CreativeFlag{}
	}
	return s
}
