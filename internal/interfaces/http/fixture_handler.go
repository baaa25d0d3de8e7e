package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
)

// FixtureHandler validación, volcado y reporte PDF del fixture.
type FixtureHandler struct {
	uc *fixture.FixtureUseCase
}

// NewFixtureHandler construye el handler.
func NewFixtureHandler(uc *fixture.FixtureUseCase) *FixtureHandler {
	return &FixtureHandler{uc: uc}
}

// Validation godoc
// @Summary      Validar el fixture
// @Description  Ejecuta todas las reglas y devuelve el reporte completo. Las violaciones son datos: siempre 200.
// @Tags         fixtures
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  validation.Report
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/fixtures/validation [get]
func (h *FixtureHandler) Validation(c *fiber.Ctx) error {
	return c.JSON(h.uc.Validate())
}

// Dump godoc
// @Summary      Documento JSON canónico del fixture
// @Tags         fixtures
// @Security     Bearer
// @Produce      json
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/fixtures/dump [get]
func (h *FixtureHandler) Dump(c *fiber.Ctx) error {
	b, err := h.uc.Dump()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(b)
}

// StockReport godoc
// @Summary      Reporte PDF de stock
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *FixtureHandler) StockReport(c *fiber.Ctx) error {
	b, err := h.uc.StockReportPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock.pdf"`)
	return c.Send(b)
}
