package parser

import (
	"regexp"
	"time"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// requiredTxnColumns must all be present in the transaction header.
var requiredTxnColumns = []string{
	models.ColDate, models.ColTime, models.ColMarketName,
	models.ColSwishNumber, models.ColName, models.ColMobileNumber,
	models.ColAmount,
}

// ParseTransactions decodes the transaction block (header line first),
// preserving input order exactly. Row-level failures are collected, not
// raised: every row is processed and the full batch of ParseErrors is
// returned alongside the rows that did parse, so a defective export is
// reported in one pass.
func ParseTransactions(lines []string) ([]models.Transaction, []*ParseError, error) {
	if len(lines) == 0 {
		return nil, nil, formatErrorf("transaction section is empty")
	}

	header := splitLine(lines[0])
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	for _, name := range requiredTxnColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, nil, formatErrorf("transaction header missing column %q", name)
		}
	}

	var (
		txns    []models.Transaction
		rowErrs []*ParseError
	)
	for i, line := range lines[1:] {
		rowNum := i + 1
		fields := splitLine(line)
		if len(fields) != len(header) {
			rowErrs = append(rowErrs, &ParseError{
				Row: rowNum,
				Msg: "column count mismatch",
			})
			continue
		}

		get := func(col string) string {
			if idx, ok := colIdx[col]; ok {
				return fields[idx]
			}
			return ""
		}

		txn := models.Transaction{
			Date:         get(models.ColDate),
			Time:         get(models.ColTime),
			MarketName:   get(models.ColMarketName),
			SwishNumber:  get(models.ColSwishNumber),
			Name:         get(models.ColName),
			MobileNumber: get(models.ColMobileNumber),
			Message:      get(models.ColMessage),
			Reference:    get(models.ColReference),
		}

		ok := true
		if _, err := time.Parse("2006-01-02", txn.Date); err != nil {
			rowErrs = append(rowErrs, &ParseError{
				Row: rowNum, Field: models.ColDate, Value: txn.Date,
				Msg: "expected YYYY-MM-DD",
			})
			ok = false
		}
		if !timePattern.MatchString(txn.Time) {
			rowErrs = append(rowErrs, &ParseError{
				Row: rowNum, Field: models.ColTime, Value: txn.Time,
				Msg: "expected HH:MM or HH:MM:SS",
			})
			ok = false
		}

		amount, err := ParseAmount(get(models.ColAmount))
		if err != nil {
			rowErrs = append(rowErrs, &ParseError{
				Row: rowNum, Field: models.ColAmount, Value: get(models.ColAmount),
				Msg: err.Error(),
			})
			ok = false
		}
		txn.Amount = amount

		if ok {
			txns = append(txns, txn)
		}
	}

	return txns, rowErrs, nil
}
