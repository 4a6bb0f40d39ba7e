package ord

import "github.com/shopspring/decimal"

// Money amounts travel as strings (rubles with kopecks) and are never
// reformatted locally; only their decimal shape is checked.

func isNonNegativeAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && !d.IsNegative()
}

func isPositiveAmount(s string) bool {
	d, err := decimal.NewFromString(s)
	return err == nil && d.IsPositive()
}
