package ord

// PadType is the kind of advertising placement platform.
type PadType string

const (
	PadTypeWeb       PadType = "web"
	PadTypeMobileApp PadType = "mobile_app"
)

// IsValid returns true if the pad type is one of the defined constants.
func (t PadType) IsValid() bool {
	switch t {
	case PadTypeWeb, PadTypeMobileApp:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t PadType) String() string {
	return string(t)
}

// PadTypeValues returns all pad types in registry order.
func PadTypeValues() []PadType {
	return []PadType{PadTypeWeb, PadTypeMobileApp}
}

// PadTypeLabels maps each pad type to its display label.
func PadTypeLabels() map[PadType]string {
	return map[PadType]string{
		PadTypeWeb:       "Сайт",
		PadTypeMobileApp: "Мобильное приложение",
	}
}
