package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction table column identifiers, as they appear in the export header.
const (
	ColDate         = "DATUM"
	ColTime         = "TID"
	ColMarketName   = "MARKNADSNAMN"
	ColSwishNumber  = "SWISH NUMMER"
	ColName         = "NAMN"
	ColMobileNumber = "MOBILNUMMER"
	ColMessage      = "MEDDELANDE"
	ColReference    = "REFERENS"
	ColAmount       = "BELOPP"
)

// AllColumns lists every transaction column the renderer knows about.
var AllColumns = []string{
	ColDate, ColTime, ColMarketName, ColSwishNumber, ColName,
	ColMobileNumber, ColMessage, ColReference, ColAmount,
}

// Metadata holds the label/value pairs from the head of the export.
// Order preserves input order; lookups are by label.
type Metadata struct {
	Order  []string
	Fields map[string]string
}

// Get returns the value for a label and whether it was present.
func (m Metadata) Get(label string) (string, bool) {
	v, ok := m.Fields[label]
	return v, ok
}

// Date returns the report's "Datum" field, if present.
func (m Metadata) Date() (string, bool) {
	return m.Get("Datum")
}

// DateRange returns the searched date range for display. The "Sök" field
// carries the range plus trailing search options after a comma.
func (m Metadata) DateRange() string {
	v, ok := m.Get("Sök")
	if !ok {
		return ""
	}
	if idx := strings.Index(v, ","); idx >= 0 {
		v = v[:idx]
	}
	return strings.TrimSpace(v)
}

// SummaryRow is one row of the summary section. The total row aggregates
// all market rows and is identified by an empty or sentinel market name.
type SummaryRow struct {
	MarketName   string
	SwishNumber  string
	PaymentCount int
	Amount       decimal.Decimal // TOTALT INBETALAT BELOPP (gross)
	NetAmount    decimal.Decimal // NETTO (gross minus fees)
	IsTotal      bool
}

// Transaction is a single Swish payment. Optional fields are empty strings
// when absent from the export.
type Transaction struct {
	Date         string // YYYY-MM-DD
	Time         string // HH:MM or HH:MM:SS
	MarketName   string
	SwishNumber  string
	Name         string
	MobileNumber string
	Message      string
	Reference    string
	Amount       decimal.Decimal
}

// Field returns the transaction's value for a text column identifier.
// The amount column is formatted by the renderer and is not served here.
func (t Transaction) Field(col string) string {
	switch col {
	case ColDate:
		return t.Date
	case ColTime:
		return t.Time
	case ColMarketName:
		return t.MarketName
	case ColSwishNumber:
		return t.SwishNumber
	case ColName:
		return t.Name
	case ColMobileNumber:
		return t.MobileNumber
	case ColMessage:
		return t.Message
	case ColReference:
		return t.Reference
	}
	return ""
}

// Report is the validated aggregate of one parsed export. It is immutable
// after construction; the validator is the only sanctioned producer.
type Report struct {
	metadata     Metadata
	summary      []SummaryRow
	transactions []Transaction
	diagnostics  []string
}

// NewReport builds a Report from already cross-checked parts. The input
// slices are copied so later mutation by the caller cannot reach the report.
func NewReport(meta Metadata, summary []SummaryRow, transactions []Transaction, diagnostics []string) *Report {
	r := &Report{
		metadata:     meta,
		summary:      append([]SummaryRow(nil), summary...),
		transactions: append([]Transaction(nil), transactions...),
		diagnostics:  append([]string(nil), diagnostics...),
	}
	return r
}

// Metadata returns the metadata record.
func (r *Report) Metadata() Metadata { return r.metadata }

// SummaryRows returns all summary rows, total row included, in input order.
func (r *Report) SummaryRows() []SummaryRow { return r.summary }

// TotalRow returns the single total summary row.
func (r *Report) TotalRow() SummaryRow {
	for _, row := range r.summary {
		if row.IsTotal {
			return row
		}
	}
	return SummaryRow{}
}

// MarketRows returns the per-market summary rows in input order.
func (r *Report) MarketRows() []SummaryRow {
	var rows []SummaryRow
	for _, row := range r.summary {
		if !row.IsTotal {
			rows = append(rows, row)
		}
	}
	return rows
}

// Transactions returns all transactions in their original input order.
func (r *Report) Transactions() []Transaction { return r.transactions }

// TransactionCount returns the number of transactions.
func (r *Report) TransactionCount() int { return len(r.transactions) }

// TotalAmount returns the gross amount from the total summary row.
func (r *Report) TotalAmount() decimal.Decimal { return r.TotalRow().Amount }

// Diagnostics returns non-fatal notes collected during parsing, such as
// duplicate metadata labels.
func (r *Report) Diagnostics() []string { return r.diagnostics }
