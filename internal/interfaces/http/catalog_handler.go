package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-fixtures/internal/application/usecase"
)

// CatalogHandler lectura de las seis colecciones del fixture (protegido).
// Los listados devuelven {items, total} en orden de autoría, sin filtros ni paginación.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListUsers godoc
// @Summary  Listar usuarios
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/users [get]
func (h *CatalogHandler) ListUsers(c *fiber.Ctx) error { return c.JSON(h.uc.ListUsers()) }

// ListAreas godoc
// @Summary  Listar áreas
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/areas [get]
func (h *CatalogHandler) ListAreas(c *fiber.Ctx) error { return c.JSON(h.uc.ListAreas()) }

// ListCategories godoc
// @Summary  Listar categorías
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error { return c.JSON(h.uc.ListCategories()) }

// ListEquipment godoc
// @Summary  Listar equipos
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/equipment [get]
func (h *CatalogHandler) ListEquipment(c *fiber.Ctx) error { return c.JSON(h.uc.ListEquipment()) }

// ListProducts godoc
// @Summary  Listar productos
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error { return c.JSON(h.uc.ListProducts()) }

// ListMovements godoc
// @Summary  Listar movimientos
// @Tags     catalog
// @Security Bearer
// @Produce  json
// @Router   /api/movements [get]
func (h *CatalogHandler) ListMovements(c *fiber.Ctx) error { return c.JSON(h.uc.ListMovements()) }

func (h *CatalogHandler) GetUser(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetUser(c.Params("id")) })
}

func (h *CatalogHandler) GetArea(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetArea(c.Params("id")) })
}

func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetCategory(c.Params("id")) })
}

func (h *CatalogHandler) GetEquipment(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetEquipment(c.Params("id")) })
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetProduct(c.Params("id")) })
}

func (h *CatalogHandler) GetMovement(c *fiber.Ctx) error {
	return respond(c, func() (any, error) { return h.uc.GetMovement(c.Params("id")) })
}

func respond(c *fiber.Ctx, get func() (any, error)) error {
	out, err := get()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
