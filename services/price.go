// Package services provides the cart, pricing and invoice logic for the
// SVPP billing system.
package services

import (
	"fmt"
	"strconv"
	"strings"
)

// currencyLabel is the fixed label used by the catalog's textual price
// fields and by every rendered monetary value.
const currencyLabel = "Rs."

// ParseAmount converts a labeled price string such as "Rs. 33.00" into its
// numeric amount. The label and surrounding whitespace are stripped before
// parsing. Malformed, empty or negative input yields 0 so a defective
// catalog field degrades to a zero-priced line instead of blocking the add.
func ParseAmount(text string) float64 {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, currencyLabel)
	s = strings.TrimSpace(s)

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount < 0 {
		return 0
	}
	return amount
}

// FormatRs renders a monetary amount as "Rs. <amount>" with exactly two
// decimal places. Every price shown in the cart table and in both invoice
// variants goes through this function so the documents can never diverge
// from the live display.
func FormatRs(amount float64) string {
	return fmt.Sprintf("%s %.2f", currencyLabel, amount)
}
