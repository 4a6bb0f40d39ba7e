package ord

// ContractType classifies a contract registered with the ОРД.
type ContractType string

const (
	ContractTypeService    ContractType = "service"
	ContractTypeMediation  ContractType = "mediation"
	ContractTypeAdditional ContractType = "additional"
)

// IsValid returns true if the contract type is one of the defined constants.
func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeService, ContractTypeMediation, ContractTypeAdditional:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ContractType) String() string {
	return string(t)
}

// ContractTypeValues returns all contract types in registry order.
func ContractTypeValues() []ContractType {
	return []ContractType{
		ContractTypeService,
		ContractTypeMediation,
		ContractTypeAdditional,
	}
}

// ContractTypeLabels maps each contract type to its display label.
func ContractTypeLabels() map[ContractType]string {
	return map[ContractType]string{
		ContractTypeService:    "Договор оказания услуг",
		ContractTypeMediation:  "Посреднический договор",
		ContractTypeAdditional: "Дополнительное соглашение",
	}
}
