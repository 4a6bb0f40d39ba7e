package payload

import (
	"github.com/rekorder/markirovka/internal/domain/ord"
)

// JuridicalDetails is the wire form of ord.JuridicalDetails.
type JuridicalDetails struct {
	Type                      ord.PersonType `json:"type"`
	INN                       *string        `json:"inn,omitempty"`
	Phone                     *string        `json:"phone,omitempty"`
	ForeignEPaymentMethod     *string        `json:"foreign_epayment_method,omitempty"`
	ForeignRegistrationNumber *string        `json:"foreign_registration_number,omitempty"`
	ForeignINN                *string        `json:"foreign_inn,omitempty"`
	ForeignOKSMCountryCode    *string        `json:"foreign_oksm_country_code,omitempty"`
}

// Person is the wire form of ord.Person.
type Person struct {
	Name             string           `json:"name"`
	Roles            []ord.PersonRole `json:"roles"`
	JuridicalDetails JuridicalDetails `json:"juridical_details"`
	RSURL            *string          `json:"rs_url,omitempty"`
	CreateDate       *string          `json:"create_date,omitempty"`
}

// NewPerson converts a validated domain person to its wire form.
func NewPerson(p *ord.Person) *Person {
	return &Person{
		Name:  p.Name,
		Roles: p.Roles,
		JuridicalDetails: JuridicalDetails{
			Type:                      p.JuridicalDetails.Type,
			INN:                       p.JuridicalDetails.INN,
			Phone:                     p.JuridicalDetails.Phone,
			ForeignEPaymentMethod:     p.JuridicalDetails.ForeignEPaymentMethod,
			ForeignRegistrationNumber: p.JuridicalDetails.ForeignRegistrationNumber,
			ForeignINN:                p.JuridicalDetails.ForeignINN,
			ForeignOKSMCountryCode:    p.JuridicalDetails.ForeignOKSMCountryCode,
		},
		RSURL:      p.RSURL,
		CreateDate: p.CreateDate,
	}
}

// Domain converts the wire form back to a validated domain person.
func (p *Person) Domain() (*ord.Person, error) {
	out := &ord.Person{
		Name:  p.Name,
		Roles: p.Roles,
		JuridicalDetails: ord.JuridicalDetails{
			Type:                      p.JuridicalDetails.Type,
			INN:                       p.JuridicalDetails.INN,
			Phone:                     p.JuridicalDetails.Phone,
			ForeignEPaymentMethod:     p.JuridicalDetails.ForeignEPaymentMethod,
			ForeignRegistrationNumber: p.JuridicalDetails.ForeignRegistrationNumber,
			ForeignINN:                p.JuridicalDetails.ForeignINN,
			ForeignOKSMCountryCode:    p.JuridicalDetails.ForeignOKSMCountryCode,
		},
		RSURL:      p.RSURL,
		CreateDate: p.CreateDate,
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
