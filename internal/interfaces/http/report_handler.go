package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almoxarifado-api/internal/application/dto"
	"github.com/jhoicas/almoxarifado-api/internal/application/report"
)

// ReportHandler exportación PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Movements godoc
// @Summary      PDF del historial de movimientos
// @Tags         reports
// @Produce      application/pdf
// @Param        product  query  string  false  "Subcadena de la descripción"
// @Param        type     query  string  false  "entry | exit"
// @Param        from     query  string  false  "AAAA-MM-DD"
// @Param        to       query  string  false  "AAAA-MM-DD"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.pdf [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if err := c.QueryParser(&filter); err != nil {
		return invalidBody(c)
	}
	pdf, err := h.uc.Movements(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, report.MovementsFilename, pdf)
}

// Stock godoc
// @Summary      PDF del stock actual
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	pdf, err := h.uc.Stock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, report.StockFilename, pdf)
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(body)
}
