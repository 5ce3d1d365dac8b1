package writer

import (
	"fmt"
	"strings"
	"time"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// SuggestedFilename derives the default output name Swish_{YYYY-MM-DD}.pdf
// from the report's "Datum" metadata field. When the date is absent or
// unparseable it substitutes the current system date and reports
// fallback=true; the caller decides whether to surface that to the user.
func SuggestedFilename(report *models.Report) (name string, fallback bool) {
	date, ok := report.Metadata().Date()
	if ok {
		if t, err := parseReportDate(date); err == nil {
			return filenameFor(t), false
		}
	}
	return filenameFor(time.Now()), true
}

// parseReportDate accepts the export's date forms: a plain date,
// optionally followed by a time of day.
func parseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}
	return time.Parse("2006-01-02", s)
}

func filenameFor(t time.Time) string {
	return fmt.Sprintf("Swish_%s.pdf", t.Format("2006-01-02"))
}
