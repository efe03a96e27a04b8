package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/karimbadr/mohasib-api/internal/application/report"
)

// XMLRenderer serializes the report as an indented XML document:
//
//	<report title="...">
//	  <headers><header>Date</header>...</headers>
//	  <rows><row><cell>2025-01-15</cell>...</row>...</rows>
//	</report>
type XMLRenderer struct{}

func (*XMLRenderer) ContentType() string { return "application/xml" }
func (*XMLRenderer) Extension() string   { return "xml" }

func (*XMLRenderer) Render(rep *report.Report) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("title", rep.Title)

	headers := root.CreateElement("headers")
	for _, h := range rep.Headers {
		headers.CreateElement("header").SetText(h)
	}

	rows := root.CreateElement("rows")
	for _, r := range rep.Rows {
		row := rows.CreateElement("row")
		for _, c := range r {
			row.CreateElement("cell").SetText(c)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize xml: %w", err)
	}
	return out, nil
}
