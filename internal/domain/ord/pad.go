package ord

import "github.com/rekorder/markirovka/internal/domain"

// Pad is an advertising placement surface, a website or a mobile app, owned
// by or associated with a registered counterparty.
type Pad struct {
	PersonExternalID string
	IsOwner          bool
	Type             PadType
	Name             string

	URL        *string
	CreateDate *string
}

// NewPad creates a placement for the given counterparty.
func NewPad(personExternalID string, isOwner bool, padType PadType, name string) (*Pad, error) {
	p := &Pad{
		PersonExternalID: personExternalID,
		IsOwner:          isOwner,
		Type:             padType,
		Name:             name,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetType changes the placement type, rejecting values outside the closed
// set.
func (p *Pad) SetType(padType PadType) error {
	if !padType.IsValid() {
		return domain.NewInvalidInput("type", padType)
	}
	p.Type = padType
	return nil
}

// Validate re-checks all placement invariants.
func (p *Pad) Validate() error {
	if p.PersonExternalID == "" {
		return domain.NewInvalidInput("person_external_id", p.PersonExternalID)
	}
	if !p.Type.IsValid() {
		return domain.NewInvalidInput("type", p.Type)
	}
	if p.Name == "" {
		return domain.NewInvalidInput("name", p.Name)
	}
	return nil
}
