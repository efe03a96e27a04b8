package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/karimbadr/mohasib-api/internal/application/report"
)

// CSVRenderer writes the header row followed by the data rows. Records end
// with \n (csv.Writer default), fields are quoted only when needed.
type CSVRenderer struct{}

func (*CSVRenderer) ContentType() string { return "text/csv" }
func (*CSVRenderer) Extension() string   { return "csv" }

func (*CSVRenderer) Render(rep *report.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(rep.Headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(rep.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
