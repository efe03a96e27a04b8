// Package export renders a built report into a downloadable flat file.
// Each renderer turns the same rectangular table into a different format, so
// adding a format never touches the aggregation code.
package export

import (
	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/domain"
)

// Supported formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
	FormatXML   = "xml"
)

// Renderer serializes a report into one file format.
type Renderer interface {
	Render(rep *report.Report) ([]byte, error)
	// ContentType is the MIME type for the HTTP response.
	ContentType() string
	// Extension is the file extension without the dot.
	Extension() string
}

// For returns the renderer for a format, or domain.ErrInvalidInput for an
// unknown one.
func For(format string) (Renderer, error) {
	switch format {
	case FormatCSV:
		return &CSVRenderer{}, nil
	case FormatExcel:
		return &ExcelRenderer{}, nil
	case FormatPDF:
		return &PDFRenderer{}, nil
	case FormatXML:
		return &XMLRenderer{}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
