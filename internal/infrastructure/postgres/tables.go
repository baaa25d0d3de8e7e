package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-fixtures/internal/domain/entity"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

// schema DDL idempotente de las seis tablas, en orden de dependencias.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	role       TEXT NOT NULL,
	department TEXT NOT NULL DEFAULT '',
	position   TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE
)`,
	`CREATE TABLE IF NOT EXISTS areas (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	code        TEXT NOT NULL UNIQUE,
	responsible TEXT NOT NULL DEFAULT '',
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	code        TEXT NOT NULL UNIQUE,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS equipment (
	id                  TEXT PRIMARY KEY,
	inventory_code      TEXT NOT NULL UNIQUE,
	type                TEXT NOT NULL,
	brand               TEXT NOT NULL DEFAULT '',
	model               TEXT NOT NULL DEFAULT '',
	serial_number       TEXT NOT NULL DEFAULT '',
	status              TEXT NOT NULL,
	current_location    TEXT NOT NULL,
	assigned_to         TEXT,
	purchase_date       TIMESTAMPTZ NOT NULL,
	warranty_expiration TIMESTAMPTZ NOT NULL,
	value               NUMERIC(18,2) NOT NULL DEFAULT 0,
	description         TEXT NOT NULL DEFAULT '',
	specifications      JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at          TIMESTAMPTZ NOT NULL,
	updated_at          TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	code          TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	category_id   TEXT NOT NULL REFERENCES categories(id),
	serial_from   TEXT,
	serial_to     TEXT,
	current_stock INTEGER NOT NULL CHECK (current_stock >= 0),
	min_stock     INTEGER NOT NULL CHECK (min_stock >= 0),
	max_stock     INTEGER NOT NULL CHECK (max_stock >= min_stock),
	location      TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS movements (
	id             TEXT PRIMARY KEY,
	product_id     TEXT NOT NULL REFERENCES products(id),
	type           TEXT NOT NULL,
	quantity       INTEGER NOT NULL CHECK (quantity > 0),
	previous_stock INTEGER NOT NULL,
	new_stock      INTEGER NOT NULL,
	reason         TEXT NOT NULL DEFAULT '',
	reference      TEXT NOT NULL DEFAULT '',
	user_id        TEXT NOT NULL REFERENCES users(id),
	from_location  TEXT,
	to_location    TEXT,
	assigned_to    TEXT,
	received_by    TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product ON movements(product_id)`,
}

// table columnas de una tabla y sus filas ya convertidas a valores planos
// (string, *string, int, bool, time.Time, decimal.Decimal).
type table struct {
	name    string
	columns []string
	rows    [][]any
}

// upsertSQL sentencia parametrizada INSERT ... ON CONFLICT (id) DO UPDATE.
func (t table) upsertSQL() string {
	params := make([]string, len(t.columns))
	for i := range t.columns {
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)\nON CONFLICT (id) DO UPDATE SET %s",
		t.name, strings.Join(t.columns, ", "), strings.Join(params, ", "), t.updateSet())
}

func (t table) updateSet() string {
	sets := make([]string, 0, len(t.columns)-1)
	for _, c := range t.columns {
		if c == "id" {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
	}
	return strings.Join(sets, ", ")
}

// tables convierte el fixture a tablas en orden de inserción (padres antes que hijos).
func tables(src repository.FixtureReader) ([]table, error) {
	users := table{name: "users", columns: []string{"id", "username", "name", "email", "role", "department", "position", "phone", "created_at", "is_active"}}
	for _, u := range src.Users() {
		users.rows = append(users.rows, []any{u.ID, u.Username, u.Name, u.Email, u.Role, u.Department, u.Position, u.Phone, u.CreatedAt, u.IsActive})
	}

	areas := table{name: "areas", columns: []string{"id", "name", "description", "code", "responsible", "is_active", "created_at", "updated_at"}}
	for _, a := range src.Areas() {
		areas.rows = append(areas.rows, []any{a.ID, a.Name, a.Description, a.Code, a.Responsible, a.IsActive, a.CreatedAt, a.UpdatedAt})
	}

	categories := table{name: "categories", columns: []string{"id", "name", "description", "code", "is_active", "created_at", "updated_at"}}
	for _, c := range src.Categories() {
		categories.rows = append(categories.rows, []any{c.ID, c.Name, c.Description, c.Code, c.IsActive, c.CreatedAt, c.UpdatedAt})
	}

	equipment := table{name: "equipment", columns: []string{"id", "inventory_code", "type", "brand", "model", "serial_number", "status", "current_location", "assigned_to", "purchase_date", "warranty_expiration", "value", "description", "specifications", "created_at", "updated_at"}}
	for _, e := range src.Equipment() {
		specs, err := specsJSON(e.Specifications)
		if err != nil {
			return nil, fmt.Errorf("equipment %s: %w", e.ID, err)
		}
		equipment.rows = append(equipment.rows, []any{e.ID, e.InventoryCode, e.Type, e.Brand, e.Model, e.SerialNumber, e.Status, e.CurrentLocation, e.AssignedTo, e.PurchaseDate, e.WarrantyExpiration, e.Value, e.Description, specs, e.CreatedAt, e.UpdatedAt})
	}

	products := table{name: "products", columns: []string{"id", "code", "name", "description", "category_id", "serial_from", "serial_to", "current_stock", "min_stock", "max_stock", "location", "status", "is_active", "created_at", "updated_at"}}
	for _, p := range src.Products() {
		from, to := serialBounds(p.SerialRange)
		products.rows = append(products.rows, []any{p.ID, p.Code, p.Name, p.Description, p.CategoryID, from, to, p.CurrentStock, p.MinStock, p.MaxStock, p.Location, p.Status, p.IsActive, p.CreatedAt, p.UpdatedAt})
	}

	movements := table{name: "movements", columns: []string{"id", "product_id", "type", "quantity", "previous_stock", "new_stock", "reason", "reference", "user_id", "from_location", "to_location", "assigned_to", "received_by", "notes", "created_at"}}
	for _, m := range src.Movements() {
		movements.rows = append(movements.rows, []any{m.ID, m.ProductID, m.Type, m.Quantity, m.PreviousStock, m.NewStock, m.Reason, m.Reference, m.UserID, m.FromLocation, m.ToLocation, m.AssignedTo, m.ReceivedBy, m.Notes, m.CreatedAt})
	}

	return []table{users, areas, categories, equipment, products, movements}, nil
}

// specsJSON se envía como texto: el codec JSONB de pgx lo pasa sin re-serializar.
func specsJSON(s entity.Specifications) (string, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("specifications: %w", err)
	}
	return string(b), nil
}

func serialBounds(r *entity.SerialRange) (*string, *string) {
	if r == nil {
		return nil, nil
	}
	from, to := r.From, r.To
	return &from, &to
}
