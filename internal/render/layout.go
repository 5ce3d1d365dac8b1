package render

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// Page geometry in points. Margins follow the original report layout:
// 40pt left/right, 50pt top/bottom.
const (
	a4Width      = 595.28
	a4Height     = 841.89
	letterWidth  = 612.0
	letterHeight = 792.0

	MarginX = 40.0
	MarginY = 50.0
)

// columnWeights drives the width distribution: each visible column gets
// usableWidth * weight / sum(weights of visible columns).
var columnWeights = map[string]float64{
	models.ColDate:         10,
	models.ColTime:         8,
	models.ColMarketName:   14,
	models.ColSwishNumber:  12,
	models.ColName:         16,
	models.ColMobileNumber: 12,
	models.ColMessage:      18,
	models.ColReference:    12,
	models.ColAmount:       10,
}

func pageDims(size, orientation string) (w, h float64) {
	switch size {
	case models.PageLetter:
		w, h = letterWidth, letterHeight
	default:
		w, h = a4Width, a4Height
	}
	if orientation == models.OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

func columnWidths(cols []string, usable float64) []float64 {
	var sum float64
	for _, c := range cols {
		sum += columnWeights[c]
	}
	widths := make([]float64, len(cols))
	for i, c := range cols {
		widths[i] = usable * columnWeights[c] / sum
	}
	return widths
}

func columnAligns(cols []string) []string {
	aligns := make([]string, len(cols))
	for i, c := range cols {
		if c == models.ColAmount {
			aligns[i] = "R"
		} else {
			aligns[i] = "L"
		}
	}
	return aligns
}

// RowHeight returns the table row height for a font size, in points.
func RowHeight(fontSize int) float64 {
	return float64(fontSize) + 5
}

// TitleHeight is the height of a section title line (Översikt,
// Transaktioner) for a font size.
func TitleHeight(fontSize int) float64 {
	return RowHeight(fontSize) + 6
}

// overviewHeight is the vertical space reserved on page 1 for the
// overview block: both section titles, the four summary lines, one line
// per market, and the spacer before the table.
func overviewHeight(fontSize, marketCount int) float64 {
	return 2*TitleHeight(fontSize) + float64(4+marketCount)*RowHeight(fontSize) + 10
}

// pageSpan is a half-open row range [Start, End) assigned to one page.
type pageSpan struct {
	Start, End int
}

// paginate distributes rowCount table rows over pages. Page 1 holds up to
// firstCap rows (the overview block shrinks it), every later page up to
// restCap. At least one page is always produced, even for zero rows.
func paginate(rowCount, firstCap, restCap int) []pageSpan {
	if firstCap < 0 {
		firstCap = 0
	}
	spans := []pageSpan{{Start: 0, End: min(rowCount, firstCap)}}
	for pos := spans[0].End; pos < rowCount; {
		end := min(rowCount, pos+restCap)
		spans = append(spans, pageSpan{Start: pos, End: end})
		pos = end
	}
	return spans
}

// formatAmount renders a decimal with the export's locale conventions:
// comma decimal separator, space-grouped thousands, two decimals.
// Amounts stay exact decimals everywhere else; this runs only at layout
// time.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	out := strings.Join(grouped, " ") + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
