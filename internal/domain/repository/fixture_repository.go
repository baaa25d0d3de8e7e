package repository

import "github.com/jhoicas/inventario-fixtures/internal/domain/entity"

// FixtureReader define el puerto de solo lectura sobre las seis colecciones del fixture (DIP).
// Las implementaciones devuelven copias en orden de autoría; no existe camino de escritura.
type FixtureReader interface {
	Users() []entity.User
	Areas() []entity.Area
	Categories() []entity.Category
	Equipment() []entity.Equipment
	Products() []entity.Product
	Movements() []entity.Movement
}

// FixtureLookup búsquedas por identificador sobre el fixture.
type FixtureLookup interface {
	FixtureReader
	UserByID(id string) (entity.User, bool)
	UserByUsername(username string) (entity.User, bool)
	AreaByID(id string) (entity.Area, bool)
	CategoryByID(id string) (entity.Category, bool)
	EquipmentByID(id string) (entity.Equipment, bool)
	ProductByID(id string) (entity.Product, bool)
	ProductByCode(code string) (entity.Product, bool)
	MovementByID(id string) (entity.Movement, bool)
	MovementsByProduct(productID string) []entity.Movement
}
