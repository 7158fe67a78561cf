// Package currency formats amounts in Indian Rupee notation.
package currency

import "fmt"

// Indian numeric scale units.
const (
	Lakh  = 100_000.0
	Crore = 10_000_000.0
)

// FormatINR formats an amount using magnitude-tiered Indian notation:
// crores and lakhs are scaled to 2 decimal places, four and five digit
// amounts get grouped-integer notation, smaller amounts a plain integer.
// All tiers carry the ₹ prefix.
func FormatINR(amount float64) string {
	switch {
	case amount >= Crore:
		return fmt.Sprintf("₹%.2f Cr", amount/Crore)
	case amount >= Lakh:
		return fmt.Sprintf("₹%.2f Lakhs", amount/Lakh)
	case amount >= 1000:
		return "₹" + groupDigits(fmt.Sprintf("%.0f", amount))
	default:
		return fmt.Sprintf("₹%.0f", amount)
	}
}

// groupDigits inserts commas into an integer string using the Indian
// numbering system: the rightmost 3 digits form the first group, then
// every 2 digits form subsequent groups. Amounts in the grouped tier
// never exceed five digits, where this coincides with plain
// thousands grouping.
func groupDigits(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
