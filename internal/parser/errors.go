package parser

import (
	"fmt"
	"strings"
)

// FormatError reports a structural defect that makes further parsing
// impossible: a missing or misordered section header, a summary row with
// the wrong column count, or a total row out of position.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "format error: " + e.Msg
}

func formatErrorf(format string, args ...interface{}) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError is a row-scoped defect in the transaction block: a bad column
// count or an unparseable amount, date or time. Row is the 1-based data
// row index within the block.
type ParseError struct {
	Row   int
	Field string
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	}
	return fmt.Sprintf("row %d: %s %q: %s", e.Row, e.Field, e.Value, e.Msg)
}

// RowErrors batches every ParseError found in the transaction block so the
// caller can report all defects in one pass.
type RowErrors struct {
	Errors []*ParseError
}

func (e *RowErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		msgs[i] = pe.Error()
	}
	return fmt.Sprintf("%d transaction row error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}
