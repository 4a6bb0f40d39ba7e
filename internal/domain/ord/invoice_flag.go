package ord

// InvoiceFlag carries supplemental information about an invoice.
type InvoiceFlag string

const (
	InvoiceFlagVATIncluded InvoiceFlag = "vat_included"
)

// IsValid returns true if the flag is one of the defined constants.
func (f InvoiceFlag) IsValid() bool {
	return f == InvoiceFlagVATIncluded
}

// String implements fmt.Stringer.
func (f InvoiceFlag) String() string {
	return string(f)
}

// InvoiceFlagValues returns all invoice flags in registry order.
func InvoiceFlagValues() []InvoiceFlag {
	return []InvoiceFlag{InvoiceFlagVATIncluded}
}

// InvoiceFlagLabels maps each invoice flag to its display label.
func InvoiceFlagLabels() map[InvoiceFlag]string {
	return map[InvoiceFlag]string{
		InvoiceFlagVATIncluded: "НДС включён в сумму счёта",
	}
}
