package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/leo-ar/pickit-api/internal/application/pickit"
	"github.com/leo-ar/pickit-api/internal/infrastructure/excel"
	"github.com/leo-ar/pickit-api/internal/infrastructure/postgres"
	"github.com/leo-ar/pickit-api/internal/infrastructure/snapshot"
	httpRouter "github.com/leo-ar/pickit-api/internal/interfaces/http"
	"github.com/leo-ar/pickit-api/pkg/config"
	"github.com/leo-ar/pickit-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Catálogos de stock y combos: Excel por defecto, PostgreSQL opcional.
	var (
		stockCatalog pickit.StockCatalog
		comboCatalog pickit.ComboCatalog
	)
	switch cfg.Catalog.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo := postgres.NewCatalogRepository(pool)
		stockCatalog = repo
		comboCatalog = repo
		log.Info().Msg("catálogos desde PostgreSQL")
	default:
		stock, err := excel.NewStockCatalog(cfg.Catalog.StockPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.StockPath).Msg("catálogo de stock")
		}
		combos, err := excel.NewComboCatalog(cfg.Catalog.CombosPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.CombosPath).Msg("catálogo de combos")
		}
		stockCatalog = stock
		comboCatalog = combos
		log.Info().
			Int("productos", stock.Len()).
			Str("stock", cfg.Catalog.StockPath).
			Str("combos", cfg.Catalog.CombosPath).
			Msg("catálogos desde Excel")
	}

	// Fuentes de ventas: snapshots JSON declarados en SOURCE_SNAPSHOTS,
	// cada uno como "nombre=archivo.json" (o solo el archivo, y el nombre
	// sale del nombre base).
	var sources []pickit.SourceAdapter
	for _, spec := range cfg.Pickit.Snapshots {
		name, path := splitSnapshot(spec)
		sources = append(sources, snapshot.New(name, path))
		log.Info().Str("fuente", name).Str("path", path).Msg("fuente de ventas registrada")
	}
	if len(sources) == 0 {
		log.Warn().Msg("sin fuentes configuradas: solo se aceptarán productos manuales")
	}

	var slaSource pickit.SlaSource
	if cfg.Pickit.SlaPath != "" {
		slas, err := snapshot.NewSlaSource(cfg.Pickit.SlaPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Pickit.SlaPath).Msg("snapshot de SLAs")
		}
		slaSource = slas
	}

	tz, err := time.LoadLocation(cfg.Pickit.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Pickit.Timezone).Msg("zona horaria inválida")
	}

	generateUC := pickit.NewGenerateUseCase(sources, comboCatalog, stockCatalog, slaSource, tz, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		GenerateUC: generateUC,
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

// splitSnapshot separa "nombre=archivo.json"; sin "=", el nombre de la fuente
// es el nombre base del archivo sin extensión.
func splitSnapshot(spec string) (name, path string) {
	if i := strings.Index(spec, "="); i > 0 {
		return strings.TrimSpace(spec[:i]), strings.TrimSpace(spec[i+1:])
	}
	base := filepath.Base(spec)
	return strings.TrimSuffix(base, filepath.Ext(base)), spec
}
