package writer

import (
	"fmt"
	"testing"
	"time"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

func reportWithDatum(datum string) *models.Report {
	meta := models.Metadata{Fields: map[string]string{}}
	if datum != "" {
		meta.Fields["Datum"] = datum
		meta.Order = append(meta.Order, "Datum")
	}
	return models.NewReport(meta, nil, nil, nil)
}

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		datum string
		want  string
	}{
		{"2025-06-12", "Swish_2025-06-12.pdf"},
		{"2025-06-12 14:32:05", "Swish_2025-06-12.pdf"},
		{" 2025-01-01 ", "Swish_2025-01-01.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.datum, func(t *testing.T) {
			name, fallback := SuggestedFilename(reportWithDatum(tt.datum))
			if name != tt.want {
				t.Errorf("got %q, want %q", name, tt.want)
			}
			if fallback {
				t.Error("fallback flag must be false when the date parses")
			}
		})
	}
}

func TestSuggestedFilename_Fallback(t *testing.T) {
	tests := []struct {
		name  string
		datum string
	}{
		{"missing date", ""},
		{"unparseable date", "12/06/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, fallback := SuggestedFilename(reportWithDatum(tt.datum))
			if !fallback {
				t.Error("fallback flag must be set")
			}
			want := fmt.Sprintf("Swish_%s.pdf", time.Now().Format("2006-01-02"))
			if name != want {
				t.Errorf("got %q, want today's %q", name, want)
			}
		})
	}
}
