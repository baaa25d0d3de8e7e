package validation_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fuente en memoria mínima y consistente; cada test la corrompe en un punto.
// ──────────────────────────────────────────────────────────────────────────────

type source struct {
	users      []entity.User
	areas      []entity.Area
	categories []entity.Category
	equipment  []entity.Equipment
	products   []entity.Product
	movements  []entity.Movement
}

func (s *source) Users() []entity.User           { return s.users }
func (s *source) Areas() []entity.Area           { return s.areas }
func (s *source) Categories() []entity.Category  { return s.categories }
func (s *source) Equipment() []entity.Equipment  { return s.equipment }
func (s *source) Products() []entity.Product     { return s.products }
func (s *source) Movements() []entity.Movement   { return s.movements }

var (
	t0 = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	t1 = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
)

func validSource() *source {
	return &source{
		users: []entity.User{
			{ID: "1", Username: "admin", Name: "Administrador", Email: "admin@empresa.com", Role: entity.RoleAdmin, CreatedAt: t0, IsActive: true},
			{ID: "2", Username: "supervisor", Name: "Supervisor Técnico", Email: "supervisor@empresa.com", Role: entity.RoleManager, CreatedAt: t0, IsActive: true},
		},
		areas: []entity.Area{
			{ID: "1", Name: "Sistemas", Code: "SIS", CreatedAt: t0, UpdatedAt: t1},
		},
		categories: []entity.Category{
			{ID: "1", Name: "Computadores", Code: "COMP", CreatedAt: t0, UpdatedAt: t0},
			{ID: "2", Name: "Periféricos", Code: "PERI", CreatedAt: t0, UpdatedAt: t1},
		},
		equipment: []entity.Equipment{
			{
				ID: "1", InventoryCode: "EQ-001", Type: entity.EquipmentTypeLaptop, Status: entity.EquipmentStatusActive,
				CurrentLocation: "Sistemas", PurchaseDate: t0, WarrantyExpiration: t1.AddDate(2, 0, 0),
				Value: decimal.NewFromInt(3500000), Specifications: entity.Specs("ram", "16GB"),
				CreatedAt: t0, UpdatedAt: t1,
			},
		},
		products: []entity.Product{
			{ID: "1", Code: "MOUSE-001", Name: "Mouse Óptico USB", CategoryID: "2", CurrentStock: 25, MinStock: 10, MaxStock: 50, Status: entity.ProductStatusAvailable, CreatedAt: t0, UpdatedAt: t1},
			{ID: "2", Code: "SWITCH-001", Name: "Switch 24 puertos", CategoryID: "2", CurrentStock: 0, MinStock: 3, MaxStock: 10, Status: entity.ProductStatusOutOfStock, CreatedAt: t0, UpdatedAt: t1},
		},
		movements: []entity.Movement{
			{ID: "1", ProductID: "1", Type: entity.MovementTypeAssignment, Quantity: 5, PreviousStock: 30, NewStock: 25, UserID: "2", CreatedAt: t1},
			{ID: "2", ProductID: "2", Type: entity.MovementTypeEntry, Quantity: 15, PreviousStock: 3, NewStock: 18, UserID: "1", CreatedAt: t1},
		},
	}
}

func rulesOf(vs []validation.Violation) []validation.Rule {
	out := make([]validation.Rule, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Rule)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_FuenteConsistente_SinViolaciones(t *testing.T) {
	rep := validation.New().Validate(validSource())

	assert.True(t, rep.Valid(), "violaciones inesperadas: %+v", rep.Violations)
	assert.NotNil(t, rep.Violations, "la lista vacía debe serializar como [] y no null")
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 2, rep.Counts[validation.CollectionUsers])
	assert.Equal(t, 2, rep.Counts[validation.CollectionMovements])
}

func TestValidate_CheckedAtUsaElReloj(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 12, 0, 0, 0, time.FixedZone("COT", -5*3600))
	rep := validation.New(validation.WithClock(func() time.Time { return fixed })).Validate(validSource())
	assert.Equal(t, fixed.UTC(), rep.CheckedAt)
}

func TestValidate_IDDuplicado(t *testing.T) {
	src := validSource()
	src.categories = append(src.categories, entity.Category{ID: "2", Name: "Redes", Code: "RED", CreatedAt: t0, UpdatedAt: t0})

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleUniqueID)
	require.Len(t, vs, 1)
	assert.Equal(t, validation.CollectionCategories, vs[0].Collection)
	assert.Equal(t, "2", vs[0].RecordID)
	assert.Contains(t, vs[0].Message, "posición 1")
}

func TestValidate_ClaveDuplicada_IgnoraMayusculas(t *testing.T) {
	src := validSource()
	src.users[1].Username = "ADMIN"
	src.products[1].Code = "mouse-001"

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleUniqueKey)
	require.Len(t, vs, 2)
	assert.Equal(t, validation.CollectionUsers, vs[0].Collection)
	assert.Equal(t, "2", vs[0].RecordID)
	assert.Equal(t, "username", vs[0].Field)
	assert.Equal(t, validation.CollectionProducts, vs[1].Collection)
	assert.Equal(t, "code", vs[1].Field)
}

func TestValidate_ValorEnumeradoInvalido(t *testing.T) {
	src := validSource()
	src.users[0].Role = "superuser"
	src.movements[0].Type = "transfer"

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleEnum)
	require.Len(t, vs, 2)
	assert.Equal(t, "role", vs[0].Field)
	assert.Contains(t, vs[0].Message, "admin, manager, user")
	assert.Equal(t, "type", vs[1].Field)
	// Tipo desconocido: no se puede calcular la dirección, no hay violación de delta.
	assert.Empty(t, rep.ByRule(validation.RuleStockDelta))
}

func TestValidate_WithAllowedAmpliaElConjunto(t *testing.T) {
	src := validSource()
	src.equipment[0].Status = "lost"

	assert.Len(t, validation.New().Validate(src).ByRule(validation.RuleEnum), 1)

	v := validation.New(validation.WithAllowed(validation.FieldEquipmentStatus, "lost"))
	assert.True(t, v.Validate(src).Valid())
	assert.Contains(t, v.Allowed(validation.FieldEquipmentStatus), "lost")
}

func TestValidate_IntegridadReferencial(t *testing.T) {
	src := validSource()
	src.products[0].CategoryID = "99"
	src.movements[0].ProductID = "404"
	src.movements[1].UserID = "7"
	src.equipment[0].CurrentLocation = "Bodega Norte"

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleReference)
	require.Len(t, vs, 4)

	fields := []string{vs[0].Field, vs[1].Field, vs[2].Field, vs[3].Field}
	assert.Equal(t, []string{"currentLocation", "categoryId", "productId", "userId"}, fields)
}

func TestValidate_UbicacionPorCodigoDeArea(t *testing.T) {
	src := validSource()
	src.equipment[0].CurrentLocation = "sis"
	assert.True(t, validation.New().Validate(src).Valid())
}

func TestValidate_RangosDeStock(t *testing.T) {
	src := validSource()
	src.products[0].MinStock = 60 // > maxStock
	src.products[1].CurrentStock = 11
	src.equipment[0].Value = decimal.NewFromInt(-1)
	src.movements[0].Quantity = 0
	src.movements[0].NewStock = 30 // consistente con quantity 0

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleRange)
	require.Len(t, vs, 4, "%+v", vs)

	assert.Equal(t, validation.CollectionEquipment, vs[0].Collection)
	assert.Equal(t, "value", vs[0].Field)
	assert.Equal(t, "1", vs[1].RecordID)
	assert.Equal(t, "maxStock", vs[1].Field)
	assert.Contains(t, vs[1].Message, "minStock")
	assert.Equal(t, "2", vs[2].RecordID)
	assert.Equal(t, "currentStock", vs[2].Field)
	assert.Equal(t, validation.CollectionMovements, vs[3].Collection)
	assert.Equal(t, "quantity", vs[3].Field)
}

func TestValidate_OrdenTemporal(t *testing.T) {
	src := validSource()
	src.areas[0].UpdatedAt = t0.Add(-time.Hour)
	src.equipment[0].WarrantyExpiration = t0.AddDate(0, 0, -1)

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleTemporal)
	require.Len(t, vs, 2)
	assert.Equal(t, "updatedAt", vs[0].Field)
	assert.Equal(t, "warrantyExpiration", vs[1].Field)
	assert.Contains(t, vs[1].Message, "purchaseDate")
}

func TestValidate_DeltaDeStock(t *testing.T) {
	src := validSource()
	src.movements[0].NewStock = 35 // assignment resta: 30 - 5 = 25
	src.movements[1].NewStock = 12 // entry suma: 3 + 15 = 18

	rep := validation.New().Validate(src)
	vs := rep.ByRule(validation.RuleStockDelta)
	require.Len(t, vs, 2)
	assert.Equal(t, "1", vs[0].RecordID)
	assert.Contains(t, vs[0].Message, "esperado 25")
	assert.Equal(t, "2", vs[1].RecordID)
	assert.Contains(t, vs[1].Message, "esperado 18")
}

func TestValidate_FormatoYObligatorios(t *testing.T) {
	src := validSource()
	src.users[0].Email = "no-es-email"
	src.categories[0].Code = ""

	rep := validation.New().Validate(src)
	assert.Equal(t, []validation.Rule{validation.RuleFormat}, rulesOf(rep.Find(validation.CollectionUsers, "1")))
	assert.Equal(t, []validation.Rule{validation.RuleRequired}, rulesOf(rep.Find(validation.CollectionCategories, "1")))
}

func TestValidate_RecolectaTodoYOrdenaPorRegla(t *testing.T) {
	src := validSource()
	src.movements[1].Type = entity.MovementTypeExit // 3 - 15 != 18
	src.movements[1].UserID = "nadie"
	src.movements[1].Quantity = 15

	rep := validation.New().Validate(src)
	got := rulesOf(rep.Find(validation.CollectionMovements, "2"))
	assert.Equal(t, []validation.Rule{validation.RuleReference, validation.RuleStockDelta}, got)
	assert.Len(t, rep.ByCollection(validation.CollectionMovements), 2)
}

func TestValidate_UsoConcurrente(t *testing.T) {
	v := validation.New()
	src := validSource()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, v.Validate(src).Valid())
		}()
	}
	wg.Wait()
}
