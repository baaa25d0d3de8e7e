package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-fixtures/internal/application/auth"
	"github.com/jhoicas/inventario-fixtures/internal/application/fixture"
	"github.com/jhoicas/inventario-fixtures/internal/application/inventory"
	"github.com/jhoicas/inventario-fixtures/internal/application/usecase"
	"github.com/jhoicas/inventario-fixtures/internal/infrastructure/fixtures"
	infrapdf "github.com/jhoicas/inventario-fixtures/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-fixtures/internal/interfaces/http"
	"github.com/jhoicas/inventario-fixtures/pkg/config"
	"github.com/jhoicas/inventario-fixtures/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando API de solo lectura")

	store := fixtures.Default()
	if cfg.Fixtures.Path != "" {
		store, err = fixtures.LoadFile(cfg.Fixtures.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Fixtures.Path).Msg("cargar fixture")
		}
	}

	catalogUC := usecase.NewCatalogUseCase(store)
	stockUC := inventory.NewStockUseCase(store)
	fixtureUC := fixture.NewFixtureUseCase(store, nil, infrapdf.NewMarotoStockReport(cfg.App.Name), log)
	authUC := auth.NewAuthUseCase(store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Las violaciones no impiden servir los datos: quedan en el log y en /api/fixtures/validation.
	fixtureUC.Validate()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventario Fixtures API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		StockUC:   stockUC,
		FixtureUC: fixtureUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
