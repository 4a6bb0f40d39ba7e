package ord

// ContractSubjectType describes the subject matter of a contract.
type ContractSubjectType string

const (
	SubjectRepresentation  ContractSubjectType = "representation"
	SubjectOrgDistribution ContractSubjectType = "org_distribution"
	SubjectMediation       ContractSubjectType = "mediation"
	SubjectDistribution    ContractSubjectType = "distribution"
	SubjectOther           ContractSubjectType = "other"
)

// IsValid returns true if the subject type is one of the defined constants.
func (t ContractSubjectType) IsValid() bool {
	switch t {
	case SubjectRepresentation, SubjectOrgDistribution, SubjectMediation,
		SubjectDistribution, SubjectOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ContractSubjectType) String() string {
	return string(t)
}

// ContractSubjectTypeValues returns all subject types in registry order.
func ContractSubjectTypeValues() []ContractSubjectType {
	return []ContractSubjectType{
		SubjectRepresentation,
		SubjectOrgDistribution,
		SubjectMediation,
		SubjectDistribution,
		SubjectOther,
	}
}

// ContractSubjectTypeLabels maps each subject type to its display label.
func ContractSubjectTypeLabels() map[ContractSubjectType]string {
	return map[ContractSubjectType]string{
		SubjectRepresentation:  "Представительство",
		SubjectOrgDistribution: "Организация распространения рекламы",
		SubjectMediation:       "Посредничество",
		SubjectDistribution:    "Распространение рекламы",
		SubjectOther:           "Иное",
	}
}
