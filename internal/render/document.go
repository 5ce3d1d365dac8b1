// Package render lays a validated Report out into a paginated document.
// The output is a plain value describing pages, rows and column geometry;
// serializing it to an actual file is the writer package's job. Rendering
// is deterministic: the same report and settings always produce the same
// document.
package render

// MarketLine is one market's entry in the overview breakdown.
type MarketLine struct {
	Name   string
	Amount string
}

// Overview is the fixed block at the top of page 1. It is not part of the
// paginated table and never wraps across pages.
type Overview struct {
	DateRange        string
	SwishNumber      string
	TransactionCount int
	TotalAmount      string
	Markets          []MarketLine
}

// Page is one output page: a header band followed by table rows. The
// header band is re-emitted identically on every page.
type Page struct {
	Header []string
	Rows   [][]string
}

// Document is the fully laid-out report, ready for serialization. It is
// never partially built: rendering either returns a complete document or
// an error.
type Document struct {
	PageSize    string
	Orientation string
	FontSize    int

	// Physical page dimensions in points, orientation already applied.
	PageWidth  float64
	PageHeight float64

	Columns []string  // visible column identifiers, in display order
	Widths  []float64 // per-column width in points
	Aligns  []string  // "L" or "R" per column

	Overview Overview
	Pages    []Page
}
