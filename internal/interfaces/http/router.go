package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-fixtures/internal/application/auth"
	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/application/usecase"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	StockUC   *inventory.StockUseCase
	FixtureUC *fixture.FixtureUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo es de solo lectura salvo la emisión de tokens.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/token", authHandler.Token)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	catalog := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/users", catalog.ListUsers)
	protected.Get("/users/:id", catalog.GetUser)
	protected.Get("/areas", catalog.ListAreas)
	protected.Get("/areas/:id", catalog.GetArea)
	protected.Get("/categories", catalog.ListCategories)
	protected.Get("/categories/:id", catalog.GetCategory)
	protected.Get("/equipment", catalog.ListEquipment)
	protected.Get("/equipment/:id", catalog.GetEquipment)
	protected.Get("/products", catalog.ListProducts)
	protected.Get("/products/:id", catalog.GetProduct)
	protected.Get("/movements", catalog.ListMovements)
	protected.Get("/movements/:id", catalog.GetMovement)

	inv := NewInventoryHandler(deps.StockUC)
	protected.Get("/products/:id/movements", inv.ProductMovements)
	protected.Get("/inventory/low-stock", inv.LowStock)

	fx := NewFixtureHandler(deps.FixtureUC)
	protected.Get("/fixtures/validation", RequireRole(entity.RoleAdmin, entity.RoleManager), fx.Validation)
	protected.Get("/fixtures/dump", RequireRole(entity.RoleAdmin), fx.Dump)
	protected.Get("/reports/stock.pdf", RequireRole(entity.RoleAdmin, entity.RoleManager), fx.StockReport)
}
