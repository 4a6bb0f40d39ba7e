package ord

// PersonType is the legal form of a counterparty.
type PersonType string

const (
	PersonTypePhysical         PersonType = "physical"
	PersonTypeJuridical        PersonType = "juridical"
	PersonTypeIP               PersonType = "ip"
	PersonTypeForeignPhysical  PersonType = "foreign_physical"
	PersonTypeForeignJuridical PersonType = "foreign_juridical"
)

// IsValid returns true if the person type is one of the defined constants.
func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypePhysical, PersonTypeJuridical, PersonTypeIP,
		PersonTypeForeignPhysical, PersonTypeForeignJuridical:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t PersonType) String() string {
	return string(t)
}

// PersonTypeValues returns all person types in registry order.
func PersonTypeValues() []PersonType {
	return []PersonType{
		PersonTypePhysical,
		PersonTypeJuridical,
		PersonTypeIP,
		PersonTypeForeignPhysical,
		PersonTypeForeignJuridical,
	}
}

// PersonTypeLabels maps each person type to its display label.
func PersonTypeLabels() map[PersonType]string {
	return map[PersonType]string{
		PersonTypePhysical:         "Физическое лицо",
		PersonTypeJuridical:        "Юридическое лицо",
		PersonTypeIP:               "Индивидуальный предприниматель",
		PersonTypeForeignPhysical:  "Иностранное физическое лицо",
		PersonTypeForeignJuridical: "Иностранное юридическое лицо",
	}
}
