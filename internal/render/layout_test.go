package render

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		firstCap  int
		restCap   int
		wantPages int
		lastRows  int
	}{
		{"500 rows at capacity 40", 500, 40, 40, 13, 20},
		{"exact fit", 80, 40, 40, 2, 40},
		{"single page", 10, 40, 40, 1, 10},
		{"zero rows still one page", 0, 40, 40, 1, 0},
		{"overview eats page one", 100, 10, 40, 4, 10},
		{"no room on page one", 10, 0, 4, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := paginate(tt.rows, tt.firstCap, tt.restCap)
			if len(spans) != tt.wantPages {
				t.Fatalf("pages: got %d, want %d", len(spans), tt.wantPages)
			}
			last := spans[len(spans)-1]
			if got := last.End - last.Start; got != tt.lastRows {
				t.Errorf("last page rows: got %d, want %d", got, tt.lastRows)
			}
			// Spans must tile [0, rows) without gap or overlap.
			pos := 0
			for i, span := range spans {
				if span.Start != pos {
					t.Fatalf("span %d starts at %d, want %d", i, span.Start, pos)
				}
				pos = span.End
			}
			if pos != tt.rows {
				t.Errorf("spans cover %d rows, want %d", pos, tt.rows)
			}
		})
	}
}

func TestColumnWidths(t *testing.T) {
	cols := []string{models.ColDate, models.ColName, models.ColAmount}
	widths := columnWidths(cols, 515)

	var sum float64
	for _, w := range widths {
		if w <= 0 {
			t.Fatalf("non-positive width: %v", widths)
		}
		sum += w
	}
	if diff := sum - 515; diff > 0.001 || diff < -0.001 {
		t.Errorf("widths sum to %g, want 515", sum)
	}
	// NAMN carries more weight than DATUM.
	if widths[1] <= widths[0] {
		t.Errorf("expected NAMN wider than DATUM: %v", widths)
	}
}

func TestColumnAligns(t *testing.T) {
	aligns := columnAligns([]string{models.ColDate, models.ColAmount, models.ColName})
	want := []string{"L", "R", "L"}
	for i := range want {
		if aligns[i] != want[i] {
			t.Errorf("aligns[%d]: got %q, want %q", i, aligns[i], want[i])
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234.50", "1 234,50"},
		{"0", "0,00"},
		{"25.99", "25,99"},
		{"1234567.89", "1 234 567,89"},
		{"-1234.50", "-1 234,50"},
		{"100", "100,00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := formatAmount(decimal.RequireFromString(tt.input))
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPageDims(t *testing.T) {
	w, h := pageDims(models.PageA4, models.OrientationPortrait)
	if w >= h {
		t.Errorf("A4 portrait: %g x %g", w, h)
	}
	lw, lh := pageDims(models.PageA4, models.OrientationLandscape)
	if lw != h || lh != w {
		t.Errorf("landscape must swap dimensions: %g x %g", lw, lh)
	}
	ltw, lth := pageDims(models.PageLetter, models.OrientationPortrait)
	if ltw != 612 || lth != 792 {
		t.Errorf("Letter: got %g x %g", ltw, lth)
	}
}
