// Package api exposes the converter over HTTP. A single convert endpoint
// accepts a multipart CSV upload plus layout settings and answers with a
// JSON preview or the finished PDF. It is glue around the core packages;
// all parsing and layout rules live there.
package api

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/extractor"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/models"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/parser"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/render"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/validator"
	"github.com/Oliver-Timmerlid/Swish-Report-PDF/internal/writer"
)

const version = "1.0.0"

// maxUploadSize caps the request body; exports are small text files.
const maxUploadSize = 8 << 20

// ConvertResponse is the JSON answer from POST /api/convert.
type ConvertResponse struct {
	Success           bool            `json:"success"`
	Error             string          `json:"error,omitempty"`
	Failures          []string        `json:"failures,omitempty"`
	DateRange         string          `json:"dateRange,omitempty"`
	SwishNumber       string          `json:"swishNumber,omitempty"`
	TransactionCount  int             `json:"transactionCount"`
	TotalAmount       string          `json:"totalAmount,omitempty"`
	Markets           []MarketSummary `json:"markets,omitempty"`
	Pages             int             `json:"pages,omitempty"`
	SuggestedFilename string          `json:"suggestedFilename,omitempty"`
	FilenameFallback  bool            `json:"filenameFallback,omitempty"`
	Diagnostics       []string        `json:"diagnostics,omitempty"`
	Version           string          `json:"version,omitempty"`
}

// MarketSummary is one market's line in the JSON preview.
type MarketSummary struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type handler struct {
	log *log.Logger
}

// New builds the fiber app with all routes registered.
func New(logger *log.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             maxUploadSize,
	})
	h := &handler{log: logger}
	app.Get("/api/health", h.health)
	app.Post("/api/convert", h.convert)
	return app
}

func (h *handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": version})
}

func (h *handler) convert(c *fiber.Ctx) error {
	reqLog := h.log.With("request_id", uuid.NewString())

	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.", nil)
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".csv") {
		return writeError(c, fiber.StatusBadRequest, "Only CSV files are supported.", nil)
	}

	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Failed to open uploaded file.", nil)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Failed to read uploaded file.", nil)
	}

	settings, err := settingsFromForm(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	reqLog.Info("convert request", "file", fh.Filename, "size", len(data))

	report, err := parser.Parse(extractor.Lines(data))
	if err != nil {
		status, msg, failures := classifyParseError(err)
		reqLog.Warn("parse rejected", "error", msg)
		return writeError(c, status, msg, failures)
	}

	doc, err := render.Render(report, settings)
	if err != nil {
		var re *render.RenderError
		if errors.As(err, &re) {
			return writeError(c, fiber.StatusBadRequest, re.Error(), nil)
		}
		return writeError(c, fiber.StatusInternalServerError, err.Error(), nil)
	}

	name, fallback := writer.SuggestedFilename(report)

	if c.FormValue("format") == "pdf" {
		var buf bytes.Buffer
		if err := (writer.PDFWriter{}).Write(&buf, doc); err != nil {
			reqLog.Error("pdf serialization failed", "error", err)
			return writeError(c, fiber.StatusInternalServerError, "PDF generation failed.", nil)
		}
		reqLog.Info("convert done", "pages", len(doc.Pages), "transactions", report.TransactionCount())
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
		return c.Send(buf.Bytes())
	}

	resp := ConvertResponse{
		Success:           true,
		DateRange:         report.Metadata().DateRange(),
		SwishNumber:       report.TotalRow().SwishNumber,
		TransactionCount:  report.TransactionCount(),
		TotalAmount:       report.TotalAmount().StringFixed(2),
		Pages:             len(doc.Pages),
		SuggestedFilename: name,
		FilenameFallback:  fallback,
		Diagnostics:       report.Diagnostics(),
		Version:           version,
	}
	for _, m := range report.MarketRows() {
		resp.Markets = append(resp.Markets, MarketSummary{
			Name:   m.MarketName,
			Amount: m.Amount.StringFixed(2),
		})
	}

	reqLog.Info("convert done", "pages", len(doc.Pages), "transactions", report.TransactionCount())
	return c.JSON(resp)
}

// classifyParseError maps the parse error taxonomy onto HTTP status and a
// failure list for the response body.
func classifyParseError(err error) (status int, msg string, failures []string) {
	var formatErr *parser.FormatError
	if errors.As(err, &formatErr) {
		return fiber.StatusUnprocessableEntity, formatErr.Error(), nil
	}

	var rowErrs *parser.RowErrors
	if errors.As(err, &rowErrs) {
		for _, pe := range rowErrs.Errors {
			failures = append(failures, pe.Error())
		}
		return fiber.StatusUnprocessableEntity, "transaction rows failed to parse", failures
	}

	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		return fiber.StatusUnprocessableEntity, "report failed validation", valErr.Failures
	}

	return fiber.StatusInternalServerError, err.Error(), nil
}

func settingsFromForm(c *fiber.Ctx) (models.RenderSettings, error) {
	settings := models.DefaultSettings()

	if v := c.FormValue("pageSize"); v != "" {
		settings.PageSize = v
	}
	if v := c.FormValue("orientation"); v != "" {
		settings.Orientation = strings.ToLower(v)
	}
	if v := c.FormValue("fontSize"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return settings, errors.New("fontSize must be an integer")
		}
		settings.FontSize = size
	}
	if v := c.FormValue("columns"); v != "" {
		var cols []string
		for _, col := range strings.Split(v, ",") {
			col = strings.TrimSpace(col)
			if col != "" {
				cols = append(cols, col)
			}
		}
		settings = settings.WithColumns(cols)
	}

	return settings, nil
}

func writeError(c *fiber.Ctx, status int, msg string, failures []string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:  false,
		Error:    msg,
		Failures: failures,
	})
}
