package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/domain/repository"
)

var _ fixture.Seeder = (*Seeder)(nil)

// Seeder carga el fixture en PostgreSQL: crea el esquema si falta y hace upsert
// de las seis colecciones dentro de una sola transacción.
type Seeder struct {
	pool *pgxpool.Pool
}

// NewSeeder construye el seeder con el pool.
func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{pool: pool}
}

// Seed inicia una transacción, aplica esquema y upserts, y hace Commit o Rollback.
func (s *Seeder) Seed(ctx context.Context, src repository.FixtureReader) (fixture.SeedResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fixture.SeedResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := seedWith(ctx, tx, src)
	if err != nil {
		return fixture.SeedResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return fixture.SeedResult{}, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}

func seedWith(ctx context.Context, q Querier, src repository.FixtureReader) (fixture.SeedResult, error) {
	if err := EnsureSchema(ctx, q); err != nil {
		return fixture.SeedResult{}, err
	}
	tabs, err := tables(src)
	if err != nil {
		return fixture.SeedResult{}, err
	}

	var res fixture.SeedResult
	for _, t := range tabs {
		n, err := upsert(ctx, q, t)
		if err != nil {
			return fixture.SeedResult{}, err
		}
		switch t.name {
		case "users":
			res.Users = n
		case "areas":
			res.Areas = n
		case "categories":
			res.Categories = n
		case "equipment":
			res.Equipment = n
		case "products":
			res.Products = n
		case "movements":
			res.Movements = n
		}
	}
	return res, nil
}

// EnsureSchema crea las tablas que falten.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// upsert envía todas las filas de la tabla en un pgx.Batch.
func upsert(ctx context.Context, q Querier, t table) (int64, error) {
	if len(t.rows) == 0 {
		return 0, nil
	}
	sql := t.upsertSQL()
	b := &pgx.Batch{}
	for _, row := range t.rows {
		b.Queue(sql, row...)
	}

	br := q.SendBatch(ctx, b)
	var total int64
	for i := range t.rows {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return 0, upsertError(t, i, err)
		}
		total += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", t.name, err)
	}
	return total, nil
}

// Conflictos de claves o referencias en la base se reportan como fixture inválido.
func upsertError(t table, i int, err error) error {
	id := t.rows[i][0]
	if isUniqueViolation(err) || isForeignKeyViolation(err) {
		return fmt.Errorf("upsert %s id=%v: %w: %v", t.name, id, domain.ErrInvalidFixture, err)
	}
	return fmt.Errorf("upsert %s id=%v: %w", t.name, id, err)
}
