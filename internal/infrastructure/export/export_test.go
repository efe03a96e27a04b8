package export

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/domain"
)

func sampleReport() *report.Report {
	return &report.Report{
		Title:   "Expense report 2025-01-01 to 2025-01-31",
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2025-01-20", "construction cost for project Nile View", "250000 EGP"},
			{"2025-01-15", "purchase of Cement from Helwan Cement (100 ton × 1700)", "170000 EGP"},
		},
	}
}

func TestForUnknownFormat(t *testing.T) {
	r, err := For("docx")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestForKnownFormats(t *testing.T) {
	for _, format := range []string{FormatCSV, FormatExcel, FormatPDF, FormatXML} {
		r, err := For(format)
		require.NoError(t, err)
		assert.Equal(t, format, r.Extension())
		assert.NotEmpty(t, r.ContentType())
	}
}

func TestCSVRenderGolden(t *testing.T) {
	out, err := (&CSVRenderer{}).Render(sampleReport())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "expense_report.csv", out)
}

func TestXMLRenderStructure(t *testing.T) {
	out, err := (&XMLRenderer{}).Render(sampleReport())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "report", root.Tag)
	assert.Equal(t, "Expense report 2025-01-01 to 2025-01-31", root.SelectAttrValue("title", ""))
	assert.Len(t, root.FindElements("headers/header"), 3)
	assert.Len(t, root.FindElements("rows/row"), 2)
	assert.Equal(t, "250000 EGP", root.FindElement("rows/row/cell[3]").Text())
}

func TestCSVRenderEmptyRows(t *testing.T) {
	out, err := (&CSVRenderer{}).Render(&report.Report{
		Title:   "Revenue report",
		Headers: []string{"Date", "Description", "Amount"},
		Rows:    [][]string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "Date,Description,Amount\n", string(out))
}

func TestExcelRenderProducesWorkbook(t *testing.T) {
	out, err := (&ExcelRenderer{}).Render(sampleReport())
	require.NoError(t, err)
	// XLSX files are zip archives.
	require.Greater(t, len(out), 4)
	assert.Equal(t, []byte{'P', 'K'}, out[:2])

	// The default sheet is dropped, only the report sheet remains.
	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Report"}, f.GetSheetList())
}

func TestPDFRenderProducesDocument(t *testing.T) {
	out, err := (&PDFRenderer{}).Render(sampleReport())
	require.NoError(t, err)
	require.Greater(t, len(out), 5)
	assert.Equal(t, "%PDF-", string(out[:5]))
}
