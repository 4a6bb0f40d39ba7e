package ord

// PersonRole is the role a counterparty plays in the advertising chain.
type PersonRole string

const (
	RoleAdvertiser PersonRole = "advertiser"
	RoleAgency     PersonRole = "agency"
	RoleORS        PersonRole = "ors"
	RolePublisher  PersonRole = "publisher"
)

// IsValid returns true if the role is one of the defined constants.
func (r PersonRole) IsValid() bool {
	switch r {
	case RoleAdvertiser, RoleAgency, RoleORS, RolePublisher:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r PersonRole) String() string {
	return string(r)
}

// PersonRoleValues returns all roles in registry order.
func PersonRoleValues() []PersonRole {
	return []PersonRole{RoleAdvertiser, RoleAgency, RoleORS, RolePublisher}
}

// PersonRoleLabels maps each role to its display label.
func PersonRoleLabels() map[PersonRole]string {
	return map[PersonRole]string{
		RoleAdvertiser: "Рекламодатель",
		RoleAgency:     "Рекламное агентство",
		RoleORS:        "Оператор рекламной системы",
		RolePublisher:  "Издатель",
	}
}
