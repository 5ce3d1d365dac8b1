// Package validator cross-checks the three parsed sections of a Swish
// export against each other and assembles the immutable Report. The
// three-way check (total row vs. market breakdown vs. transaction detail)
// is the system's guarantee against truncated or corrupted exports.
package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// ValidationError enumerates every failed cross-check, not just the first.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Failures, "; "))
}

// Assemble runs the cross-checks in fixed order and, only if all pass,
// constructs the Report. Checks use exact decimal equality: amounts are
// parsed into exact decimals, so any difference means the export is
// inconsistent, and a tolerance would only mask that.
//
// Check order:
//  1. transaction block is non-empty
//  2. summary block has exactly one total row
//  3. sum of market rows equals the total row amount
//  4. sum of transactions equals the total row amount
//
// Checks 3 and 4 need a single total row to compare against and are
// skipped when check 2 fails.
func Assemble(meta models.Metadata, summary []models.SummaryRow, txns []models.Transaction, diagnostics []string) (*models.Report, error) {
	var failures []string

	if len(txns) == 0 {
		failures = append(failures, "report contains no transactions")
	}

	var total models.SummaryRow
	totalCount := 0
	for _, row := range summary {
		if row.IsTotal {
			total = row
			totalCount++
		}
	}
	if totalCount != 1 {
		failures = append(failures, fmt.Sprintf("expected exactly one total summary row, found %d", totalCount))
	} else {
		marketSum := decimal.Zero
		for _, row := range summary {
			if !row.IsTotal {
				marketSum = marketSum.Add(row.Amount)
			}
		}
		if !marketSum.Equal(total.Amount) {
			failures = append(failures, fmt.Sprintf(
				"market rows sum to %s but total row says %s",
				marketSum.StringFixed(2), total.Amount.StringFixed(2)))
		}

		txnSum := decimal.Zero
		for _, txn := range txns {
			txnSum = txnSum.Add(txn.Amount)
		}
		if !txnSum.Equal(total.Amount) {
			failures = append(failures, fmt.Sprintf(
				"transactions sum to %s but total row says %s",
				txnSum.StringFixed(2), total.Amount.StringFixed(2)))
		}
	}

	if len(failures) > 0 {
		return nil, &ValidationError{Failures: failures}
	}

	return models.NewReport(meta, summary, txns, diagnostics), nil
}
