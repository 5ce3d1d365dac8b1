package parser

import (
	"strconv"
	"strings"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
)

// Summary section column names.
const (
	sumColMarket = "MARKNADSNAMN"
	sumColSwish  = "SWISH NUMMER"
	sumColCount  = "ANTAL SWISH-BETALNINGAR"
	sumColGross  = "TOTALT INBETALAT BELOPP"
	sumColNet    = "NETTO"
)

// totalSentinel marks the aggregate row when its market-name field is not
// simply empty. The upstream export writes the literal "Total".
const totalSentinel = "total"

// ParseSummary decodes the summary block (header line first) into rows.
// The first data row must be the total row: its position is a convention
// in the export, so it is confirmed against the market-name field and a
// violation is a FormatError rather than a guess. Columns are located by
// header name, tolerating reordering.
func ParseSummary(lines []string) ([]models.SummaryRow, error) {
	if len(lines) < 2 {
		return nil, formatErrorf("summary section has no data rows")
	}

	header := splitLine(lines[0])
	cols, err := summaryColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []models.SummaryRow
	for i, line := range lines[1:] {
		fields := splitLine(line)
		if len(fields) != len(header) {
			return nil, formatErrorf("summary row %d has %d columns, header has %d", i+1, len(fields), len(header))
		}

		row, err := parseSummaryRow(fields, cols, i+1)
		if err != nil {
			return nil, err
		}

		if i == 0 && !row.IsTotal {
			return nil, formatErrorf("first summary row must be the total row, got market %q", row.MarketName)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

type summaryIndex struct {
	market, swish, count, gross, net int
}

func summaryColumns(header []string) (summaryIndex, error) {
	idx := summaryIndex{market: -1, swish: -1, count: -1, gross: -1, net: -1}
	for i, name := range header {
		switch name {
		case sumColMarket:
			idx.market = i
		case sumColSwish:
			idx.swish = i
		case sumColCount:
			idx.count = i
		case sumColGross:
			idx.gross = i
		case sumColNet:
			idx.net = i
		}
	}
	for name, pos := range map[string]int{
		sumColMarket: idx.market,
		sumColCount:  idx.count,
		sumColGross:  idx.gross,
		sumColNet:    idx.net,
	} {
		if pos < 0 {
			return idx, formatErrorf("summary header missing column %q", name)
		}
	}
	return idx, nil
}

func parseSummaryRow(fields []string, cols summaryIndex, rowNum int) (models.SummaryRow, error) {
	row := models.SummaryRow{
		MarketName: fields[cols.market],
	}
	if cols.swish >= 0 {
		row.SwishNumber = fields[cols.swish]
	}
	row.IsTotal = row.MarketName == "" || strings.EqualFold(row.MarketName, totalSentinel)

	count, err := strconv.Atoi(strings.TrimSpace(fields[cols.count]))
	if err != nil {
		return row, formatErrorf("summary row %d: payment count %q is not an integer", rowNum, fields[cols.count])
	}
	row.PaymentCount = count

	row.Amount, err = ParseAmount(fields[cols.gross])
	if err != nil {
		return row, formatErrorf("summary row %d: amount %q: %v", rowNum, fields[cols.gross], err)
	}
	row.NetAmount, err = ParseAmount(fields[cols.net])
	if err != nil {
		return row, formatErrorf("summary row %d: net amount %q: %v", rowNum, fields[cols.net], err)
	}

	return row, nil
}
