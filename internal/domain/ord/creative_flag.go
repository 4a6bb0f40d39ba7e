package ord

// CreativeFlag marks a creative as a special advertising kind.
type CreativeFlag string

const (
	CreativeFlagSocial CreativeFlag = "social"
	CreativeFlagNative CreativeFlag = "native"
)

// IsValid returns true if the flag is one of the defined constants.
func (f CreativeFlag) IsValid() bool {
	switch f {
	case CreativeFlagSocial, CreativeFlagNative:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f CreativeFlag) String() string {
	return string(f)
}

// CreativeFlagValues returns all creative flags in registry order.
func CreativeFlagValues() []CreativeFlag {
	return []CreativeFlag{CreativeFlagSocial, CreativeFlagNative}
}

// CreativeFlagLabels maps each creative flag to its display label.
func CreativeFlagLabels() map[CreativeFlag]string {
	return map[CreativeFlag]string{
		CreativeFlagSocial: "Социальная реклама",
		CreativeFlagNative: "Нативная реклама",
	}
}
