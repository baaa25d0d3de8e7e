// seed valida el fixture y lo exporta o lo carga en PostgreSQL.
//
// Uso:
//
//	go run ./cmd/seed                      # esquema + upsert en la base de DATABASE_URL / DB_*
//	go run ./cmd/seed -sql seed.sql        # script SQL equivalente, sin conectarse
//	go run ./cmd/seed -dump fixture.json   # documento JSON canónico
//
// Con FIXTURES_PATH se usa ese archivo JSON en lugar de los datos embebidos.
// Si el fixture tiene violaciones no se escribe nada y el proceso termina con código 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/domain"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-fixtures/pkg/config"
	"github.com/jhoicas/inventario-fixtures/pkg/logger"
)

func main() {
	sqlPath := flag.String("sql", "", "escribir un script SQL en esta ruta en lugar de conectarse a la base")
	dumpPath := flag.String("dump", "", "escribir el documento JSON canónico en esta ruta")
	timeout := flag.Duration("timeout", 30*time.Second, "tiempo máximo para el seed en PostgreSQL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	store := fixtures.Default()
	if cfg.Fixtures.Path != "" {
		if store, err = fixtures.LoadFile(cfg.Fixtures.Path); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Fixtures.Path).Msg("cargar fixture")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, store, *sqlPath, *dumpPath, *timeout); err != nil {
		if errors.Is(err, domain.ErrInvalidFixture) {
			log.Error().Err(err).Msg("fixture inválido: no se escribió nada")
		} else {
			log.Error().Err(err).Msg("seed")
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, store *fixtures.Store, sqlPath, dumpPath string, timeout time.Duration) error {
	switch {
	case sqlPath != "" || dumpPath != "":
		uc := fixture.NewFixtureUseCase(store, nil, nil, log)
		if rep := uc.Validate(); !rep.Valid() {
			return fmt.Errorf("%w: %d violaciones", domain.ErrInvalidFixture, len(rep.Violations))
		}
		if sqlPath != "" {
			if err := writeFile(sqlPath, func(w io.Writer) error { return postgres.WriteSeedScript(w, store) }); err != nil {
				return err
			}
			log.Info().Str("path", sqlPath).Msg("script SQL generado")
		}
		if dumpPath != "" {
			if err := writeFile(dumpPath, store.Dump); err != nil {
				return err
			}
			log.Info().Str("path", dumpPath).Msg("documento JSON generado")
		}
		return nil

	default:
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()

		uc := fixture.NewFixtureUseCase(store, postgres.NewSeeder(pool), nil, log)
		res, err := uc.Seed(ctx)
		if err != nil {
			return err
		}
		log.Info().
			Int64("users", res.Users).
			Int64("areas", res.Areas).
			Int64("categories", res.Categories).
			Int64("equipment", res.Equipment).
			Int64("products", res.Products).
			Int64("movements", res.Movements).
			Msg("seed completado")
		return nil
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	return f.Close()
}
