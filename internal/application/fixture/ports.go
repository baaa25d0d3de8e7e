package fixture

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fixtures/internal/application/dto"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
)

// Source fixture consultable, validable y serializable (lo implementa fixtures.Store).
type Source interface {
	repository.FixtureLookup
	Validate() validation.Report
	MarshalIndent() ([]byte, error)
}

// Seeder carga el fixture en un almacenamiento externo (ej. PostgreSQL).
type Seeder interface {
	Seed(ctx context.Context, src repository.FixtureReader) (SeedResult, error)
}

// SeedResult filas escritas por colección.
type SeedResult struct {
	Users      int64 `json:"users"`
	Areas      int64 `json:"areas"`
	Categories int64 `json:"categories"`
	Equipment  int64 `json:"equipment"`
	Products   int64 `json:"products"`
	Movements  int64 `json:"movements"`
}

// Total filas escritas.
func (r SeedResult) Total() int64 {
	return r.Users + r.Areas + r.Categories + r.Equipment + r.Products + r.Movements
}

// StockReportData datos de entrada para el reporte PDF de stock.
type StockReportData struct {
	Products   []entity.Product
	LowStock   []dto.LowStockItemDTO
	Report     validation.Report
	Categories map[string]string // id → nombre
	// EquipmentValue suma del valor de los equipos no dados de baja.
	EquipmentValue decimal.Decimal
}

// StockReportGenerator genera la representación PDF del estado de stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}
