package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/karimbadr/mohasib-api/internal/application/report"
)

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// PDFRenderer lays the report out as an A4 table using Maroto v2.
type PDFRenderer struct{}

func (*PDFRenderer) ContentType() string { return "application/pdf" }
func (*PDFRenderer) Extension() string   { return "pdf" }

func (*PDFRenderer) Render(rep *report.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(rep.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New(rep.Title, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Color: pdfColorPrimary,
			Align: align.Left,
		})),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))

	m.AddRows(headerRow(rep.Headers))
	for _, r := range rep.Rows {
		m.AddRows(dataRow(r, len(rep.Headers)))
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return document.GetBytes(), nil
}

func headerRow(headers []string) core.Row {
	cols := make([]core.Col, 0, len(headers))
	width := columnWidth(len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(width).Add(text.New(h, props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Color: pdfColorPrimary,
		})))
	}
	return row.New(7).Add(cols...)
}

func dataRow(cells []string, headerCount int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	width := columnWidth(headerCount)
	for _, c := range cells {
		cols = append(cols, col.New(width).Add(text.New(c, props.Text{
			Size:  9,
			Color: pdfColorGray,
		})))
	}
	return row.New(6).Add(cols...)
}

// columnWidth splits Maroto's 12-unit grid across the table columns.
func columnWidth(count int) int {
	if count <= 0 {
		return 12
	}
	w := 12 / count
	if w < 1 {
		w = 1
	}
	return w
}
