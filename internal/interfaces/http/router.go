package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/lecheria-api/internal/application/analytics"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/application/inventory"
	"github.com/tu-usuario/lecheria-api/internal/application/milking"
	"github.com/tu-usuario/lecheria-api/internal/application/quality"
	"github.com/tu-usuario/lecheria-api/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MilkingUC   *milking.UseCase
	InventoryUC *inventory.UseCase
	QualityUC   *quality.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Milkings (protegido)
	milkings := protected.Group("/milkings")
	milkingHandler := NewMilkingHandler(deps.MilkingUC)
	milkings.Post("/counted", milkingHandler.CreateCounted)
	milkings.Post("/itemized", milkingHandler.CreateItemized)
	milkings.Post("/aggregate", milkingHandler.CreateAggregate)
	milkings.Get("/", milkingHandler.List)
	milkings.Get("/stats/daily", milkingHandler.DailyStats)
	milkings.Get("/cow/:cowId", milkingHandler.CowHistory)
	milkings.Get("/employee/:employeeId", milkingHandler.EmployeeHistory)
	milkings.Get("/:id", milkingHandler.GetByID)
	milkings.Delete("/:id", milkingHandler.Delete)

	// Inventory (protegido)
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Post("/", inventoryHandler.CreateItem)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/movements", inventoryHandler.RegisterMovement)
	inv.Get("/movements", inventoryHandler.Movements)
	inv.Get("/stats", inventoryHandler.Stats)
	inv.Get("/:id", inventoryHandler.GetByID)

	// Quality (protegido)
	qualityGroup := protected.Group("/quality")
	qualityHandler := NewQualityHandler(deps.QualityUC)
	qualityGroup.Post("/", qualityHandler.Create)
	qualityGroup.Get("/", qualityHandler.List)
	qualityGroup.Get("/stats", qualityHandler.Stats)
	qualityGroup.Get("/:id", qualityHandler.GetByID)
	qualityGroup.Put("/:id", qualityHandler.Update)
	qualityGroup.Delete("/:id", qualityHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/metrics", dashboardHandler.GetMetrics)
	dashboard.Get("/production", dashboardHandler.GetProduction)
	dashboard.Get("/report/daily", dashboardHandler.DailyReport)
}

// domainError traduce errores de dominio a respuestas HTTP. Los errores de los
// casos de uso llegan envueltos, por eso errors.Is/As y no comparación directa.
func domainError(c *fiber.Ctx, err error) error {
	var consistency *domain.ConsistencyError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.As(err, &consistency):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONSISTENCY", Message: consistency.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
