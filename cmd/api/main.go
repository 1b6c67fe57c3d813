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
	appanalytics "github.com/tu-usuario/lecheria-api/internal/application/analytics"
	"github.com/tu-usuario/lecheria-api/internal/application/inventory"
	"github.com/tu-usuario/lecheria-api/internal/application/milking"
	"github.com/tu-usuario/lecheria-api/internal/application/quality"
	infrapdf "github.com/tu-usuario/lecheria-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/lecheria-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/lecheria-api/internal/interfaces/http"
	"github.com/tu-usuario/lecheria-api/pkg/config"
	"github.com/tu-usuario/lecheria-api/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	milkingRepo := postgres.NewMilkingRepository(pool)
	individualRepo := postgres.NewIndividualMilkingRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	qualityRepo := postgres.NewQualityTestRepository(pool)
	cowRepo := postgres.NewCowRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	milkingTx := postgres.NewMilkingTxRunner(pool)
	inventoryTx := postgres.NewInventoryTxRunner(pool)

	milkingUC := milking.NewUseCase(milkingTx, milkingRepo, individualRepo)
	inventoryUC := inventory.NewUseCase(inventoryTx, itemRepo, movementRepo)
	qualityUC := quality.NewUseCase(qualityRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(milkingRepo, cowRepo, employeeRepo, qualityRepo)

	// PDF: reporte diario de producción
	reportGenerator := infrapdf.NewDailyReportGenerator()
	reportUC := appanalytics.NewReportUseCase(milkingRepo, cowRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lechería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MilkingUC:   milkingUC,
		InventoryUC: inventoryUC,
		QualityUC:   qualityUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
