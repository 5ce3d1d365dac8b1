package render

import (
	"fmt"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// RenderError reports settings outside their declared bounds or a layout
// that cannot fit a single table row on a page.
type RenderError struct {
	Msg string
}

func (e *RenderError) Error() string {
	return "render error: " + e.Msg
}

func renderErrorf(format string, args ...interface{}) *RenderError {
	return &RenderError{Msg: fmt.Sprintf(format, args...)}
}

// Render lays the report out under the given settings. Page size and
// orientation affect only the physical page dimensions, never row content
// or order; column widths are computed fresh for every call, so a new
// settings value never reuses stale geometry.
func Render(report *models.Report, settings models.RenderSettings) (*Document, error) {
	if err := checkSettings(settings); err != nil {
		return nil, err
	}

	pageW, pageH := pageDims(settings.PageSize, settings.Orientation)
	usableW := pageW - 2*MarginX
	usableH := pageH - 2*MarginY
	rowH := RowHeight(settings.FontSize)
	bandH := rowH

	markets := report.MarketRows()
	total := report.TotalRow()

	overviewH := overviewHeight(settings.FontSize, len(markets))
	firstCap := int((usableH - overviewH - bandH) / rowH)
	restCap := int((usableH - bandH) / rowH)
	if restCap < 1 {
		return nil, renderErrorf("a table row (%gpt) does not fit in the usable page height (%gpt)", rowH, usableH)
	}

	overview := Overview{
		DateRange:        report.Metadata().DateRange(),
		SwishNumber:      total.SwishNumber,
		TransactionCount: report.TransactionCount(),
		TotalAmount:      formatAmount(total.Amount),
	}
	for _, m := range markets {
		overview.Markets = append(overview.Markets, MarketLine{
			Name:   m.MarketName,
			Amount: formatAmount(m.Amount),
		})
	}

	cols := append([]string(nil), settings.VisibleColumns...)
	rows := tableRows(report.Transactions(), cols)

	doc := &Document{
		PageSize:    settings.PageSize,
		Orientation: settings.Orientation,
		FontSize:    settings.FontSize,
		PageWidth:   pageW,
		PageHeight:  pageH,
		Columns:     cols,
		Widths:      columnWidths(cols, usableW),
		Aligns:      columnAligns(cols),
		Overview:    overview,
	}

	for _, span := range paginate(len(rows), firstCap, restCap) {
		doc.Pages = append(doc.Pages, Page{
			Header: append([]string(nil), cols...),
			Rows:   rows[span.Start:span.End],
		})
	}

	return doc, nil
}

func checkSettings(s models.RenderSettings) error {
	if s.FontSize < models.MinFontSize || s.FontSize > models.MaxFontSize {
		return renderErrorf("font size %d outside [%d,%d]", s.FontSize, models.MinFontSize, models.MaxFontSize)
	}
	if s.PageSize != models.PageA4 && s.PageSize != models.PageLetter {
		return renderErrorf("unknown page size %q", s.PageSize)
	}
	if s.Orientation != models.OrientationPortrait && s.Orientation != models.OrientationLandscape {
		return renderErrorf("unknown orientation %q", s.Orientation)
	}
	if len(s.VisibleColumns) == 0 {
		return renderErrorf("no visible columns")
	}
	known := make(map[string]bool, len(models.AllColumns))
	for _, c := range models.AllColumns {
		known[c] = true
	}
	for _, c := range s.VisibleColumns {
		if !known[c] {
			return renderErrorf("unknown column %q", c)
		}
	}
	return nil
}

// tableRows formats every transaction into display cells for the visible
// columns, in input order.
func tableRows(txns []models.Transaction, cols []string) [][]string {
	rows := make([][]string, len(txns))
	for i, txn := range txns {
		row := make([]string, len(cols))
		for j, col := range cols {
			if col == models.ColAmount {
				row[j] = formatAmount(txn.Amount)
			} else {
				row[j] = txn.Field(col)
			}
		}
		rows[i] = row
	}
	return rows
}
