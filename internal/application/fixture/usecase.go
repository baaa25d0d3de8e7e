package fixture

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
	"github.com/jhoicas/inventario-fixtures/pkg/logger"
)

// FixtureUseCase operaciones sobre el fixture completo: validación, volcado JSON,
// seed a un almacenamiento externo y reporte PDF de stock.
type FixtureUseCase struct {
	src    Source
	stock  *inventory.StockUseCase
	seeder Seeder               // opcional
	pdf    StockReportGenerator // opcional
	log    *logger.Logger
}

// NewFixtureUseCase construye el caso de uso. seeder y pdf pueden ser nil si el binario no los usa.
func NewFixtureUseCase(src Source, seeder Seeder, pdf StockReportGenerator, log *logger.Logger) *FixtureUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &FixtureUseCase{
		src:    src,
		stock:  inventory.NewStockUseCase(src),
		seeder: seeder,
		pdf:    pdf,
		log:    log.Component("fixture"),
	}
}

// Validate ejecuta la validación y registra cada violación en nivel warn y un resumen en info.
func (uc *FixtureUseCase) Validate() validation.Report {
	rep := uc.src.Validate()
	for _, v := range rep.Violations {
		uc.log.Warn().
			Str("run_id", rep.RunID).
			Str("collection", string(v.Collection)).
			Str("record_id", v.RecordID).
			Str("rule", string(v.Rule)).
			Str("field", v.Field).
			Msg(v.Message)
	}
	ev := uc.log.Info()
	for _, c := range validation.Collections() {
		ev = ev.Int(string(c), rep.Counts[c])
	}
	ev.Str("run_id", rep.RunID).
		Int("violations", len(rep.Violations)).
		Bool("valid", rep.Valid()).
		Msg("validación de fixture")
	return rep
}

// Dump devuelve el documento JSON canónico del fixture.
func (uc *FixtureUseCase) Dump() ([]byte, error) {
	return uc.src.MarshalIndent()
}

// Seed valida y, solo si no hay violaciones, carga el fixture con el Seeder.
// Devuelve un error que envuelve domain.ErrInvalidFixture si hay violaciones.
func (uc *FixtureUseCase) Seed(ctx context.Context) (SeedResult, error) {
	if uc.seeder == nil {
		return SeedResult{}, fmt.Errorf("seed: no hay seeder configurado")
	}
	rep := uc.Validate()
	if !rep.Valid() {
		return SeedResult{}, fmt.Errorf("%w: %d violaciones (run %s)", domain.ErrInvalidFixture, len(rep.Violations), rep.RunID)
	}
	res, err := uc.seeder.Seed(ctx, uc.src)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}
	uc.log.Info().Int64("rows", res.Total()).Msg("fixture cargado")
	return res, nil
}

// StockReportPDF genera el PDF con el stock de todos los productos, los bajo mínimo
// y el resumen de validación.
func (uc *FixtureUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("reporte: no hay generador PDF configurado")
	}
	categories := make(map[string]string)
	for _, c := range uc.src.Categories() {
		categories[c.ID] = c.Name
	}
	value := decimal.Zero
	for _, e := range uc.src.Equipment() {
		if e.Status != entity.EquipmentStatusRetired {
			value = value.Add(e.Value)
		}
	}
	data := StockReportData{
		Products:       uc.src.Products(),
		LowStock:       uc.stock.LowStock(),
		Report:         uc.src.Validate(),
		Categories:     categories,
		EquipmentValue: value,
	}
	return uc.pdf.GenerateStockReport(ctx, data)
}
