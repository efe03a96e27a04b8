package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/karimbadr/mohasib-api/internal/application/report"
	"github.com/karimbadr/mohasib-api/internal/infrastructure/export"
)

// ReportHandler builds aggregated reports and serves them as JSON or as a
// downloadable file (protected).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Get godoc
// @Summary      Build a report
// @Description  Aggregates the requested report over the inclusive date
// @Description  range. Without format the report is returned as JSON; with
// @Description  format=csv|xlsx|pdf|xml it is returned as a file download.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        kind        path   string  true   "profit-loss, revenue, expense, salary, inventory or project"
// @Param        from        query  string  false  "Inclusive start date (YYYY-MM-DD)"
// @Param        to          query  string  false  "Inclusive end date (YYYY-MM-DD)"
// @Param        project_id  query  string  false  "Required for kind=project"
// @Param        format      query  string  false  "csv, xlsx, pdf or xml"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{kind} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	rep, err := h.uc.Build(c.Context(), c.Params("kind"), c.Query("from"), c.Query("to"), c.Query("project_id"))
	if err != nil {
		return respondError(c, err)
	}

	format := c.Query("format")
	if format == "" {
		return c.JSON(rep)
	}

	renderer, err := export.For(format)
	if err != nil {
		return respondError(c, err)
	}
	out, err := renderer.Render(rep)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, renderer.ContentType())
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.%s"`, c.Params("kind"), renderer.Extension()))
	return c.Send(out)
}
