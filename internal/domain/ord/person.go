package ord

import "github.com/rekorder/markirovka/internal/domain"

// JuridicalDetails holds the legal requisites of a counterparty. Which of
// the optional identifiers applies depends on the person type: domestic
// parties carry an INN or phone number, foreign parties carry the foreign_*
// group of identifiers.
type JuridicalDetails struct {
	Type                      PersonType
	INN                       *string
	Phone                     *string
	ForeignEPaymentMethod     *string
	ForeignRegistrationNumber *string
	ForeignINN                *string
	ForeignOKSMCountryCode    *string
}

// NewJuridicalDetails creates requisites for the given person type.
func NewJuridicalDetails(personType PersonType) (*JuridicalDetails, error) {
	d := &JuridicalDetails{Type: personType}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// SetType changes the person type, rejecting values outside the closed set.
func (d *JuridicalDetails) SetType(personType PersonType) error {
	if !personType.IsValid() {
		return domain.NewInvalidInput("type", personType)
	}
	d.Type = personType
	return nil
}

// Validate re-checks the requisites invariants.
func (d *JuridicalDetails) Validate() error {
	if !d.Type.IsValid() {
		return domain.NewInvalidInput("type", d.Type)
	}
	return nil
}

// Person is a counterparty registered with the ОРД: an advertiser, agency,
// ad system operator or publisher, identified by a caller-assigned external
// id at the API level.
type Person struct {
	Name             string
	Roles            []PersonRole
	JuridicalDetails JuridicalDetails

	// Optional registry attributes.
	RSURL      *string
	CreateDate *string
}

// NewPerson creates a counterparty with the given name, roles and legal
// requisites.
func NewPerson(name string, roles []PersonRole, details JuridicalDetails) (*Person, error) {
	p := &Person{
		Name:             name,
		Roles:            roles,
		JuridicalDetails: details,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetRoles replaces the role list, rejecting any role outside the closed set.
func (p *Person) SetRoles(roles []PersonRole) error {
	for _, role := range roles {
		if !role.IsValid() {
			return domain.NewInvalidInput("roles", role)
		}
	}
	p.Roles = roles
	return nil
}

// AddRole appends a role if not already present.
func (p *Person) AddRole(role PersonRole) error {
	if !role.IsValid() {
		return domain.NewInvalidInput("roles", role)
	}
	for _, r := range p.Roles {
		if r == role {
			return nil
		}
	}
	p.Roles = append(p.Roles, role)
	return nil
}

// Validate re-checks all counterparty invariants.
func (p *Person) Validate() error {
	if p.Name == "" {
		return domain.NewInvalidInput("name", p.Name)
	}
	for _, role := range p.Roles {
		if !role.IsValid() {
			return domain.NewInvalidInput("roles", role)
		}
	}
	return p.JuridicalDetails.Validate()
}
