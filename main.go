package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/api"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/extractor"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/parser"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/render"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/validator"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/writer"
)

const version = "1.0.0"

func main() {
	serveFlag := flag.Bool("serve", false, "Run the HTTP convert API instead of converting files")
	addrFlag := flag.String("addr", ":8080", "Listen address for -serve")
	outputFlag := flag.String("output", "", "Output PDF path (defaults to Swish_{date}.pdf next to the input)")
	pageFlag := flag.String("page", models.PageA4, "Page size: A4 or Letter")
	orientationFlag := flag.String("orientation", models.OrientationPortrait, "Page orientation: portrait or landscape")
	fontFlag := flag.Int("font", 7, "Font size in points (6-12)")
	columnsFlag := flag.String("columns", "", "Comma-separated transaction columns to show (default: the standard seven)")
	versionFlag := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Swish Report PDF Converter

Converts semicolon-delimited Swish payment exports into paginated
PDF accounting records, after cross-checking summary and transaction
totals against each other.

Usage:
  swish-report-pdf [flags] <input.csv> [input2.csv ...]
  swish-report-pdf -serve [-addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert with default layout (A4 portrait, 7pt)
  swish-report-pdf report.csv

  # Landscape Letter with larger text
  swish-report-pdf -page=Letter -orientation=landscape -font=9 report.csv

  # Only a few columns, custom output path
  swish-report-pdf -columns="DATUM,NAMN,BELOPP" -output=out.pdf report.csv

  # Run the HTTP API
  swish-report-pdf -serve -addr :8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("swish-report-pdf v%s\n", version)
		os.Exit(0)
	}

	logger := log.New(os.Stderr)

	if *serveFlag {
		app := api.New(logger)
		logger.Info("listening", "addr", *addrFlag)
		if err := app.Listen(*addrFlag); err != nil {
			logger.Fatal("server stopped", "error", err)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	settings := models.DefaultSettings()
	settings.PageSize = *pageFlag
	settings.Orientation = strings.ToLower(*orientationFlag)
	settings.FontSize = *fontFlag
	if *columnsFlag != "" {
		var cols []string
		for _, col := range strings.Split(*columnsFlag, ",") {
			if col = strings.TrimSpace(col); col != "" {
				cols = append(cols, col)
			}
		}
		settings = settings.WithColumns(cols)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(logger, inputPath, *outputFlag, settings); err != nil {
			logger.Fatal("conversion failed", "file", inputPath, "error", err)
		}
	}
}

func processFile(logger *log.Logger, inputPath, outputPath string, settings models.RenderSettings) error {
	if !strings.EqualFold(filepath.Ext(inputPath), ".csv") {
		return fmt.Errorf("expected .csv file, got %q", filepath.Ext(inputPath))
	}

	lines, err := extractor.ReadLines(inputPath)
	if err != nil {
		return err
	}

	report, err := parser.Parse(lines)
	if err != nil {
		logParseFailure(logger, err)
		return err
	}

	for _, d := range report.Diagnostics() {
		logger.Warn("diagnostic", "note", d)
	}

	doc, err := render.Render(report, settings)
	if err != nil {
		return err
	}

	name, fallback := writer.SuggestedFilename(report)
	if fallback {
		logger.Warn("report date missing, using today's date for the filename")
	}

	outPath := outputPath
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(inputPath), name)
	}

	if err := (writer.PDFWriter{}).WriteToFile(outPath, doc); err != nil {
		return err
	}

	logger.Info("converted",
		"file", inputPath,
		"transactions", report.TransactionCount(),
		"total", report.TotalAmount().StringFixed(2),
		"pages", len(doc.Pages),
		"output", outPath)
	return nil
}

// logParseFailure prints every collected defect, not just the first, so a
// corrupted export can be fixed in one round.
func logParseFailure(logger *log.Logger, err error) {
	var rowErrs *parser.RowErrors
	if errors.As(err, &rowErrs) {
		for _, pe := range rowErrs.Errors {
			logger.Error("row error", "detail", pe.Error())
		}
		return
	}
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		for _, f := range valErr.Failures {
			logger.Error("validation check failed", "detail", f)
		}
	}
}
