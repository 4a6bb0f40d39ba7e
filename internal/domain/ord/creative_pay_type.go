package ord

// CreativePayType is the payment model for creative impressions.
type CreativePayType string

const (
	PayTypeCPA   CreativePayType = "cpa"
	PayTypeCPC   CreativePayType = "cpc"
	PayTypeCPM   CreativePayType = "cpm"
	PayTypeOther CreativePayType = "other"
)

// IsValid returns true if the pay type is one of the defined constants.
func (t CreativePayType) IsValid() bool {
	switch t {
	case PayTypeCPA, PayTypeCPC, PayTypeCPM, PayTypeOther:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t CreativePayType) String() string {
	return string(t)
}

// CreativePayTypeValues returns all pay types in registry order.
func CreativePayTypeValues() []CreativePayType {
	return []CreativePayType{PayTypeCPA, PayTypeCPC, PayTypeCPM, PayTypeOther}
}

// CreativePayTypeLabels maps each pay type to its display label.
func CreativePayTypeLabels() map[CreativePayType]string {
	return map[CreativePayType]string{
		PayTypeCPA:   "Cost Per Action (цена за действие)",
		PayTypeCPC:   "Cost Per Click (цена за клик)",
		PayTypeCPM:   "Cost Per Millennium (цена за 1 000 показов)",
		PayTypeOther: "Иное",
	}
}
