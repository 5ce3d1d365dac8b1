// Package writer serializes rendered documents to PDF and derives output
// filenames. It is the only place that touches output bytes; everything
// upstream works on plain values.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/render"
)

const pdfFont = "Helvetica"

// PDFWriter turns a render.Document into PDF output.
type PDFWriter struct{}

// WriteToFile serializes the document to a PDF file at the given path.
func (w PDFWriter) WriteToFile(path string, doc *render.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, doc)
}

// Write serializes the document as PDF to the given writer.
func (w PDFWriter) Write(out io.Writer, doc *render.Document) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P", // orientation is already baked into the page dimensions
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: doc.PageWidth, Ht: doc.PageHeight},
	})
	pdf.SetMargins(render.MarginX, render.MarginY, render.MarginX)
	pdf.SetAutoPageBreak(false, render.MarginY)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	rowH := render.RowHeight(doc.FontSize)

	for i, page := range doc.Pages {
		pdf.AddPage()
		pdf.SetXY(render.MarginX, render.MarginY)

		if i == 0 {
			drawOverview(pdf, tr, doc)
		}

		drawHeaderBand(pdf, tr, doc, rowH)
		pdf.SetFont(pdfFont, "", float64(doc.FontSize))
		for _, row := range page.Rows {
			for j, cell := range row {
				pdf.CellFormat(doc.Widths[j], rowH, tr(cell), "1", 0, doc.Aligns[j], false, 0, "")
			}
			pdf.Ln(rowH)
		}
	}

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func drawOverview(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document) {
	ov := doc.Overview
	rowH := render.RowHeight(doc.FontSize)
	titleH := render.TitleHeight(doc.FontSize)

	pdf.SetFont(pdfFont, "B", float64(doc.FontSize)+2)
	pdf.CellFormat(0, titleH, tr("Översikt"), "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFont, "", float64(doc.FontSize))
	lines := []string{
		fmt.Sprintf("Sökdatum: %s", ov.DateRange),
		fmt.Sprintf("Swish-nummer: %s", ov.SwishNumber),
		fmt.Sprintf("Antal Swish-betalningar: %d", ov.TransactionCount),
		fmt.Sprintf("Totalt inbetalat belopp: %s", ov.TotalAmount),
	}
	for _, line := range lines {
		pdf.CellFormat(0, rowH, tr(line), "", 1, "L", false, 0, "")
	}
	for _, m := range ov.Markets {
		pdf.CellFormat(0, rowH, tr(fmt.Sprintf("    %s: %s", m.Name, m.Amount)), "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont(pdfFont, "B", float64(doc.FontSize)+2)
	pdf.CellFormat(0, titleH, tr("Transaktioner"), "", 1, "L", false, 0, "")
}

func drawHeaderBand(pdf *gofpdf.Fpdf, tr func(string) string, doc *render.Document, rowH float64) {
	pdf.SetFont(pdfFont, "B", float64(doc.FontSize))
	pdf.SetFillColor(220, 220, 220)
	for j, col := range doc.Columns {
		pdf.CellFormat(doc.Widths[j], rowH, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowH)
}
