// Package fixtures contiene el fixture de inventario de equipos de oficina (usuarios, áreas,
// categorías, equipos, productos y movimientos) y el Store de solo lectura que lo expone.
//
// El Store es inmutable después de construirse: todos los accesores devuelven copias en
// orden de autoría, por lo que puede compartirse entre goroutines sin sincronización.
package fixtures

import (
	"sync"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
	"github.com/jhoicas/inventario-fixtures/internal/domain/validation"
)

var _ repository.FixtureLookup = (*Store)(nil)

// Snapshot documento externo del fixture: las seis colecciones en orden de autoría.
type Snapshot struct {
	Users      []entity.User      `json:"users"`
	Areas      []entity.Area      `json:"areas"`
	Categories []entity.Category  `json:"categories"`
	Equipment  []entity.Equipment `json:"equipment"`
	Products   []entity.Product   `json:"products"`
	Movements  []entity.Movement  `json:"movements"`
}

// Store dueño exclusivo de las seis colecciones. Solo lectura.
type Store struct {
	users      []entity.User
	areas      []entity.Area
	categories []entity.Category
	equipment  []entity.Equipment
	products   []entity.Product
	movements  []entity.Movement

	userByID       map[string]int
	userByUsername map[string]int
	areaByID       map[string]int
	categoryByID   map[string]int
	equipmentByID  map[string]int
	productByID    map[string]int
	productByCode  map[string]int
	movementByID   map[string]int
}

var (
	defaultOnce  sync.Once
	defaultStore *Store

	validatorOnce sync.Once
	validatorInst *validation.Validator
)

// Default devuelve el Store con los datos embebidos en el binario. Se construye una sola vez.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = New(builtin())
	})
	return defaultStore
}

// New construye un Store a partir de un Snapshot. El Snapshot se copia: modificarlo después
// no afecta al Store. Ante ids repetidos los índices conservan la primera aparición.
func New(snap Snapshot) *Store {
	s := &Store{
		users:      cloneSlice(snap.Users, nil),
		areas:      cloneSlice(snap.Areas, nil),
		categories: cloneSlice(snap.Categories, nil),
		equipment:  cloneSlice(snap.Equipment, entity.Equipment.Clone),
		products:   cloneSlice(snap.Products, entity.Product.Clone),
		movements:  cloneSlice(snap.Movements, entity.Movement.Clone),
	}
	s.userByID = index(s.users, func(u entity.User) string { return u.ID })
	s.userByUsername = index(s.users, func(u entity.User) string { return u.Username })
	s.areaByID = index(s.areas, func(a entity.Area) string { return a.ID })
	s.categoryByID = index(s.categories, func(c entity.Category) string { return c.ID })
	s.equipmentByID = index(s.equipment, func(e entity.Equipment) string { return e.ID })
	s.productByID = index(s.products, func(p entity.Product) string { return p.ID })
	s.productByCode = index(s.products, func(p entity.Product) string { return p.Code })
	s.movementByID = index(s.movements, func(m entity.Movement) string { return m.ID })
	return s
}

// Users devuelve los usuarios en orden de autoría.
func (s *Store) Users() []entity.User { return cloneSlice(s.users, nil) }

// Areas devuelve las áreas en orden de autoría.
func (s *Store) Areas() []entity.Area { return cloneSlice(s.areas, nil) }

// Categories devuelve las categorías en orden de autoría.
func (s *Store) Categories() []entity.Category { return cloneSlice(s.categories, nil) }

// Equipment devuelve los equipos en orden de autoría.
func (s *Store) Equipment() []entity.Equipment {
	return cloneSlice(s.equipment, entity.Equipment.Clone)
}

// Products devuelve los productos en orden de autoría.
func (s *Store) Products() []entity.Product {
	return cloneSlice(s.products, entity.Product.Clone)
}

// Movements devuelve los movimientos en orden de autoría.
func (s *Store) Movements() []entity.Movement {
	return cloneSlice(s.movements, entity.Movement.Clone)
}

// Snapshot devuelve una copia independiente de las seis colecciones.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Users:      s.Users(),
		Areas:      s.Areas(),
		Categories: s.Categories(),
		Equipment:  s.Equipment(),
		Products:   s.Products(),
		Movements:  s.Movements(),
	}
}

// Validate ejecuta todas las reglas de consistencia con los valores permitidos por defecto.
func (s *Store) Validate() validation.Report {
	validatorOnce.Do(func() { validatorInst = validation.New() })
	return validatorInst.Validate(s)
}

// ValidateWith ejecuta la validación con un validador configurado (ej. valores ampliados).
func (s *Store) ValidateWith(v *validation.Validator) validation.Report {
	return v.Validate(s)
}

func (s *Store) UserByID(id string) (entity.User, bool) {
	i, ok := s.userByID[id]
	if !ok {
		return entity.User{}, false
	}
	return s.users[i], true
}

func (s *Store) UserByUsername(username string) (entity.User, bool) {
	i, ok := s.userByUsername[username]
	if !ok {
		return entity.User{}, false
	}
	return s.users[i], true
}

func (s *Store) AreaByID(id string) (entity.Area, bool) {
	i, ok := s.areaByID[id]
	if !ok {
		return entity.Area{}, false
	}
	return s.areas[i], true
}

func (s *Store) CategoryByID(id string) (entity.Category, bool) {
	i, ok := s.categoryByID[id]
	if !ok {
		return entity.Category{}, false
	}
	return s.categories[i], true
}

func (s *Store) EquipmentByID(id string) (entity.Equipment, bool) {
	i, ok := s.equipmentByID[id]
	if !ok {
		return entity.Equipment{}, false
	}
	return s.equipment[i].Clone(), true
}

func (s *Store) ProductByID(id string) (entity.Product, bool) {
	i, ok := s.productByID[id]
	if !ok {
		return entity.Product{}, false
	}
	return s.products[i].Clone(), true
}

func (s *Store) ProductByCode(code string) (entity.Product, bool) {
	i, ok := s.productByCode[code]
	if !ok {
		return entity.Product{}, false
	}
	return s.products[i].Clone(), true
}

func (s *Store) MovementByID(id string) (entity.Movement, bool) {
	i, ok := s.movementByID[id]
	if !ok {
		return entity.Movement{}, false
	}
	return s.movements[i].Clone(), true
}

// MovementsByProduct devuelve los movimientos de un producto en orden de autoría.
func (s *Store) MovementsByProduct(productID string) []entity.Movement {
	out := []entity.Movement{}
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m.Clone())
		}
	}
	return out
}

func cloneSlice[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		if clone != nil {
			v = clone(v)
		}
		out[i] = v
	}
	return out
}

func index[T any](records []T, key func(T) string) map[string]int {
	idx := make(map[string]int, len(records))
	for i, r := range records {
		k := key(r)
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}
