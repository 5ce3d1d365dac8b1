// Package parser turns the raw lines of a Swish export into a validated
// Report. The export is an untagged three-section text format: metadata
// label/value pairs, a summary block, and a transaction block, separated
// by exact-match header rows.
package parser

import (
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/validator"
)

// Parse runs the full pipeline: section split, the three block parsers,
// and the cross-total validation. The returned error is one of
// *FormatError (structural defect, fatal immediately), *RowErrors
// (batched transaction row defects), or *validator.ValidationError
// (cross-check failures). A Report is returned only when every check
// passed; there is no partially parsed result.
func Parse(lines []string) (*models.Report, error) {
	secs, err := Split(lines)
	if err != nil {
		return nil, err
	}

	meta, diagnostics := ParseMetadata(secs.Metadata)

	summary, err := ParseSummary(secs.Summary)
	if err != nil {
		return nil, err
	}

	txns, rowErrs, err := ParseTransactions(secs.Transactions)
	if err != nil {
		return nil, err
	}
	if len(rowErrs) > 0 {
		return nil, &RowErrors{Errors: rowErrs}
	}

	return validator.Assemble(meta, summary, txns, diagnostics)
}
