// Package extractor turns an input file into the clean line sequence the
// parsers consume. It is a passive layer: decoding and cleanup only, no
// knowledge of the report structure.
package extractor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadLines reads a file and returns its cleaned lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return Lines(data), nil
}

// Lines decodes raw export bytes into ordered lines. A UTF-8 BOM is
// tolerated, CR/LF endings are normalized, quote characters are stripped
// (the export quotes whole fields inconsistently), and blank lines are
// dropped.
func Lines(data []byte) []string {
	data = bytes.TrimPrefix(data, utf8BOM)

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimRight(raw, "\r")
		line = strings.ReplaceAll(line, `"`, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
