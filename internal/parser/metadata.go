package parser

import (
	"fmt"
	"strings"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// ParseMetadata decodes the metadata block into a label/value record.
// Each line is a "label;value" pair; lines without a delimiter are
// ignored. On duplicate labels the first occurrence wins and every later
// duplicate is recorded as a non-fatal diagnostic. A missing "Datum"
// label is tolerated here; the filename generator falls back on it.
func ParseMetadata(lines []string) (models.Metadata, []string) {
	meta := models.Metadata{Fields: make(map[string]string)}
	var diagnostics []string

	for _, line := range lines {
		idx := strings.Index(line, ";")
		if idx < 0 {
			continue
		}
		label := strings.TrimSuffix(strings.TrimSpace(line[:idx]), ":")
		value := strings.TrimSpace(line[idx+1:])
		if label == "" {
			continue
		}
		if _, seen := meta.Fields[label]; seen {
			diagnostics = append(diagnostics,
				fmt.Sprintf("duplicate metadata label %q: kept first value, discarded %q", label, value))
			continue
		}
		meta.Fields[label] = value
		meta.Order = append(meta.Order, label)
	}

	return meta, diagnostics
}
