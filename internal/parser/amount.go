package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts an export amount like "1 234,50" into an exact
// decimal. The format uses a comma decimal separator with optional space
// (or non-breaking space) thousands grouping. A period anywhere is
// rejected: treating "1.234" as either 1.234 or 1234 would silently
// corrupt the cross-total checks downstream.
//
// The summary and transaction parsers must both go through this function;
// the validator compares sums produced by the two, which is only
// meaningful if both sides normalize identically.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if strings.Contains(s, ".") {
		return decimal.Zero, fmt.Errorf("unsupported decimal separator %q (expected comma)", ".")
	}

	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space grouping

	if strings.Count(s, ",") > 1 {
		return decimal.Zero, fmt.Errorf("multiple decimal separators")
	}
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number")
	}
	return d, nil
}
