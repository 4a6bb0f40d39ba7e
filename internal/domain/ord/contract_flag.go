package ord

// ContractFlag carries supplemental information about a contract.
type ContractFlag string

const (
	ContractFlagVATIncluded                 ContractFlag = "vat_included"
	ContractFlagContractorCreativesReporter ContractFlag = "contractor_is_creatives_reporter"
	ContractFlagAgentActingForPublisher     ContractFlag = "agent_acting_for_publisher"
)

// IsValid returns true if the flag is one of the defined constants.
func (f ContractFlag) IsValid() bool {
	switch f {
	case ContractFlagVATIncluded, ContractFlagContractorCreativesReporter,
		ContractFlagAgentActingForPublisher:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f ContractFlag) String() string {
	return string(f)
}

// ContractFlagValues returns all contract flags in registry order.
func ContractFlagValues() []ContractFlag {
	return []ContractFlag{
		ContractFlagVATIncluded,
		ContractFlagContractorCreativesReporter,
		ContractFlagAgentActingForPublisher,
	}
}

// ContractFlagLabels maps each contract flag to its display label.
func ContractFlagLabels() map[ContractFlag]string {
	return map[ContractFlag]string{
		ContractFlagVATIncluded:                 "НДС включён в сумму договора",
		ContractFlagContractorCreativesReporter: "Подрядчик обязуется вести учёт креативов",
		ContractFlagAgentActingForPublisher:     "Деньги поступают от подрядчика клиенту",
	}
}
