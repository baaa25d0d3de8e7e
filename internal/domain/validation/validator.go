// Package validation verifica la consistencia interna del fixture de inventario:
// unicidad de ids y claves, valores enumerados, integridad referencial entre colecciones,
// rangos de stock, orden temporal y coherencia del delta de stock de cada movimiento.
//
// La validación es total: nunca aborta, recolecta todas las violaciones en un Report.
package validation

import (
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

// Campos enumerados (parámetro del tag `allowed` en las entidades).
const (
	FieldUserRole        = "user.role"
	FieldEquipmentStatus = "equipment.status"
	FieldEquipmentType   = "equipment.type"
	FieldProductStatus   = "product.status"
	FieldMovementType    = "movement.type"
)

// DefaultAllowed valores observados en los datos. Provisionales: ampliar con WithAllowed.
func DefaultAllowed() map[string][]string {
	return map[string][]string{
		FieldUserRole: {entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
		FieldEquipmentStatus: {
			entity.EquipmentStatusActive, entity.EquipmentStatusMaintenance, entity.EquipmentStatusRetired,
		},
		FieldEquipmentType: {
			entity.EquipmentTypeLaptop, entity.EquipmentTypeDesktop, entity.EquipmentTypeMonitor,
			entity.EquipmentTypePrinter, entity.EquipmentTypeNetwork, entity.EquipmentTypeProjector,
		},
		FieldProductStatus: {
			entity.ProductStatusAvailable, entity.ProductStatusLowStock, entity.ProductStatusOutOfStock,
		},
		FieldMovementType: {
			entity.MovementTypeEntry, entity.MovementTypeExit, entity.MovementTypeAssignment,
			entity.MovementTypeReturn, entity.MovementTypeMaintenance,
		},
	}
}

// Option configura el Validator.
type Option func(*Validator)

// WithAllowed añade valores permitidos a un campo enumerado (ej. FieldEquipmentStatus, "lost").
func WithAllowed(field string, values ...string) Option {
	return func(v *Validator) {
		set, ok := v.allowed[field]
		if !ok {
			set = make(map[string]struct{}, len(values))
			v.allowed[field] = set
		}
		for _, val := range values {
			set[val] = struct{}{}
		}
	}
}

// WithClock fija el reloj usado para Report.CheckedAt (tests).
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// Validator ejecuta el conjunto de reglas. Inmutable tras New: seguro para uso concurrente.
type Validator struct {
	fields  *validator.Validate
	allowed map[string]map[string]struct{}
	now     func() time.Time
}

// New construye el validador con los valores permitidos por defecto más las opciones.
func New(opts ...Option) *Validator {
	v := &Validator{
		allowed: make(map[string]map[string]struct{}),
		now:     time.Now,
	}
	for field, values := range DefaultAllowed() {
		WithAllowed(field, values...)(v)
	}
	for _, opt := range opts {
		opt(v)
	}

	fv := validator.New()
	fv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	fv.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = fv.RegisterValidation("allowed", func(fl validator.FieldLevel) bool {
		set, ok := v.allowed[fl.Param()]
		if !ok {
			return false
		}
		_, ok = set[fl.Field().String()]
		return ok
	})
	v.fields = fv
	return v
}

// Allowed devuelve los valores permitidos de un campo, ordenados.
func (v *Validator) Allowed(field string) []string {
	out := make([]string, 0, len(v.allowed[field]))
	for val := range v.allowed[field] {
		out = append(out, val)
	}
	sort.Strings(out)
	return out
}

// Validate ejecuta todas las reglas sobre las seis colecciones y devuelve el reporte.
func (v *Validator) Validate(src repository.FixtureReader) Report {
	users := src.Users()
	areas := src.Areas()
	categories := src.Categories()
	equipment := src.Equipment()
	products := src.Products()
	movements := src.Movements()

	c := &collector{}

	// Usuarios
	bUsers := c.bucket(CollectionUsers, pluck(users, func(u entity.User) string { return u.ID }))
	for i, u := range users {
		v.checkFields(bUsers, i, u)
	}
	checkUnique(bUsers, RuleUniqueID, "id", bUsers.ids)
	checkUnique(bUsers, RuleUniqueKey, "username", pluck(users, func(u entity.User) string { return u.Username }))

	// Áreas
	bAreas := c.bucket(CollectionAreas, pluck(areas, func(a entity.Area) string { return a.ID }))
	for i, a := range areas {
		v.checkFields(bAreas, i, a)
	}
	checkUnique(bAreas, RuleUniqueID, "id", bAreas.ids)
	checkUnique(bAreas, RuleUniqueKey, "code", pluck(areas, func(a entity.Area) string { return a.Code }))

	// Categorías
	bCats := c.bucket(CollectionCategories, pluck(categories, func(cat entity.Category) string { return cat.ID }))
	for i, cat := range categories {
		v.checkFields(bCats, i, cat)
	}
	checkUnique(bCats, RuleUniqueID, "id", bCats.ids)
	checkUnique(bCats, RuleUniqueKey, "code", pluck(categories, func(cat entity.Category) string { return cat.Code }))

	// Equipos: currentLocation debe nombrar un área por nombre o código
	areaKeys := make(map[string]struct{}, 2*len(areas))
	for _, a := range areas {
		areaKeys[normalizeKey(a.Name)] = struct{}{}
		areaKeys[normalizeKey(a.Code)] = struct{}{}
	}
	bEq := c.bucket(CollectionEquipment, pluck(equipment, func(e entity.Equipment) string { return e.ID }))
	for i, e := range equipment {
		v.checkFields(bEq, i, e)
		if e.CurrentLocation == "" {
			continue
		}
		if _, ok := areaKeys[normalizeKey(e.CurrentLocation)]; !ok {
			bEq.add(i, RuleReference, "currentLocation",
				"currentLocation %q no corresponde a ningún área", e.CurrentLocation)
		}
	}
	checkUnique(bEq, RuleUniqueID, "id", bEq.ids)
	checkUnique(bEq, RuleUniqueKey, "inventoryCode", pluck(equipment, func(e entity.Equipment) string { return e.InventoryCode }))

	// Productos
	categoryIDs := toSet(bCats.ids)
	bProd := c.bucket(CollectionProducts, pluck(products, func(p entity.Product) string { return p.ID }))
	for i, p := range products {
		v.checkFields(bProd, i, p)
		if p.CategoryID == "" {
			continue
		}
		if _, ok := categoryIDs[p.CategoryID]; !ok {
			bProd.add(i, RuleReference, "categoryId", "categoryId %q no existe en categories", p.CategoryID)
		}
	}
	checkUnique(bProd, RuleUniqueID, "id", bProd.ids)
	checkUnique(bProd, RuleUniqueKey, "code", pluck(products, func(p entity.Product) string { return p.Code }))

	// Movimientos
	productIDs := toSet(bProd.ids)
	userIDs := toSet(bUsers.ids)
	bMov := c.bucket(CollectionMovements, pluck(movements, func(m entity.Movement) string { return m.ID }))
	for i, m := range movements {
		v.checkFields(bMov, i, m)
		if _, ok := productIDs[m.ProductID]; m.ProductID != "" && !ok {
			bMov.add(i, RuleReference, "productId", "productId %q no existe en products", m.ProductID)
		}
		if _, ok := userIDs[m.UserID]; m.UserID != "" && !ok {
			bMov.add(i, RuleReference, "userId", "userId %q no existe en users", m.UserID)
		}
		if expected, ok := m.ExpectedNewStock(); ok && expected != m.NewStock {
			bMov.add(i, RuleStockDelta, "newStock",
				"newStock=%d no coincide con previousStock=%d %s quantity=%d (esperado %d)",
				m.NewStock, m.PreviousStock, signFor(m.Type), m.Quantity, expected)
		}
	}
	checkUnique(bMov, RuleUniqueID, "id", bMov.ids)

	return Report{
		RunID:     uuid.NewString(),
		CheckedAt: v.now().UTC(),
		Counts: map[Collection]int{
			CollectionUsers:      len(users),
			CollectionAreas:      len(areas),
			CollectionCategories: len(categories),
			CollectionEquipment:  len(equipment),
			CollectionProducts:   len(products),
			CollectionMovements:  len(movements),
		},
		Violations: c.flatten(),
	}
}

func signFor(movementType string) string {
	if entity.StockDirection(movementType) > 0 {
		return "+"
	}
	return "-"
}

func pluck[T any](records []T, key func(T) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = key(r)
	}
	return out
}

func toSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
