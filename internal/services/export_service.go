package services

import (
	"bytes"
	"encoding/base64"
	"errors"

	"github.com/jung-kurt/gofpdf"
)

var ErrExportFailed = errors.New("pdf rendering failed")

// ExportService renders HTML into a PDF document. It is stateless: nothing is
// read from storage.
type ExportService struct{}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportPDF renders the HTML string to a PDF and returns its base64 encoding.
func (s *ExportService) ExportPDF(htmlContent string) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	_, lineHt := pdf.GetFontSize()
	writer := pdf.HTMLBasicNew()
	writer.Write(lineHt*1.5, htmlContent)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", ErrExportFailed
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
