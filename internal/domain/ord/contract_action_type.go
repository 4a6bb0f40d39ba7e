package ord

// ContractActionType describes the action carried out under a mediation
// contract.
type ContractActionType string

const (
	ActionDistribution ContractActionType = "distribution"
	ActionConclude     ContractActionType = "conclude"
	ActionCommercial   ContractActionType = "commercial"
	ActionOther        ContractActionType = "other"
)

// IsValid returns true if the action type is one of the defined constants.
func (t ContractActionType) IsValid() bool {
	switch t {
	case ActionDistribution, ActionConclude, ActionCommercial, ActionOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t ContractActionType) String() string {
	return string(t)
}

// ContractActionTypeValues returns all action types in registry order.
func ContractActionTypeValues() []ContractActionType {
	return []ContractActionType{
		ActionDistribution,
		ActionConclude,
		ActionCommercial,
		ActionOther,
	}
}

// ContractActionTypeLabels maps each action type to its display label.
func ContractActionTypeLabels() map[ContractActionType]string {
	return map[ContractActionType]string{
		ActionDistribution: "Распространение рекламы",
		ActionConclude:     "Заключение договоров",
		ActionCommercial:   "Коммерческое представительство",
		ActionOther:        "Иное",
	}
}
