package parser

import "strings"

// Sections holds the three blocks of a Swish export, split by header
// detection. Summary and Transactions include their header line as the
// first element.
type Sections struct {
	Metadata     []string
	Summary      []string
	Transactions []string
}

// Split walks the input lines once and assigns each to a section. The
// summary header is the first line whose fields start with MARKNADSNAMN
// and end with NETTO; the transaction header starts DATUM;TID and ends
// with BELOPP. Header-pattern matching rather than fixed offsets keeps
// the split tolerant of reordered columns inside a section.
func Split(lines []string) (*Sections, error) {
	secs := &Sections{}
	const (
		inMetadata = iota
		inSummary
		inTransactions
	)
	state := inMetadata

	for _, line := range lines {
		switch state {
		case inMetadata:
			if isTransactionHeader(line) {
				return nil, formatErrorf("transaction header (DATUM;TID) appears before summary header (MARKNADSNAMN)")
			}
			if isSummaryHeader(line) {
				secs.Summary = append(secs.Summary, line)
				state = inSummary
				continue
			}
			secs.Metadata = append(secs.Metadata, line)
		case inSummary:
			if isTransactionHeader(line) {
				secs.Transactions = append(secs.Transactions, line)
				state = inTransactions
				continue
			}
			secs.Summary = append(secs.Summary, line)
		case inTransactions:
			secs.Transactions = append(secs.Transactions, line)
		}
	}

	if state == inMetadata {
		return nil, formatErrorf("missing summary header (MARKNADSNAMN ... NETTO)")
	}
	if state == inSummary {
		return nil, formatErrorf("missing transaction header (DATUM;TID ... BELOPP)")
	}
	return secs, nil
}

func isSummaryHeader(line string) bool {
	fields := splitLine(line)
	if len(fields) < 2 {
		return false
	}
	return fields[0] == "MARKNADSNAMN" && fields[len(fields)-1] == "NETTO"
}

func isTransactionHeader(line string) bool {
	fields := splitLine(line)
	if len(fields) < 3 {
		return false
	}
	return fields[0] == "DATUM" && fields[1] == "TID" && fields[len(fields)-1] == "BELOPP"
}

// splitLine splits a semicolon-delimited row into trimmed fields.
func splitLine(line string) []string {
	parts := strings.Split(line, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
