package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// Pad is the wire form of ord.Pad.
type Pad struct {
	PersonExternalID string      `json:"person_external_id"`
	IsOwner          bool        `json:"is_owner"`
	Type             ord.PadType `json:"type"`
	Name             string      `json:"name"`

	URL        *string `json:"url,omitempty"`
	CreateDate *string `json:"create_date,omitempty"`
}

// NewPad converts a validated domain placement to its wire form.
func NewPad(p *ord.Pad) *Pad {
	return &Pad{
		PersonExternalID: p.PersonExternalID,
		IsOwner:          p.IsOwner,
		Type:             p.Type,
		Name:             p.Name,
		URL:              p.URL,
		CreateDate:       p.CreateDate,
	}
}

// Domain converts the wire form back to a validated domain placement.
func (p *Pad) Domain() (*ord.Pad, error) {
	out := &ord.Pad{
		PersonExternalID: p.PersonExternalID,
		IsOwner:          p.IsOwner,
		Type:             p.Type,
		Name:             p.Name,
		URL:              p.URL,
		CreateDate:       p.CreateDate,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
