package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/lecheria-api/internal/application/analytics"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc     *appanalytics.DashboardUseCase
	report *appanalytics.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, report *appanalytics.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report}
}

// GetSummary devuelve el resumen de producción del día y la semana en curso.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryResponse (today, this_week con serie de 7 días,
// top_producers[5], recent_milkings[10], alerts).
// No requiere parámetros; las fechas se calculan automáticamente en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	summary, err := h.uc.GetSummary(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(summary)
}

// GetMetrics devuelve las métricas de producción, eficiencia y calidad.
// GET /api/dashboard/metrics
//
// Producción: totales día/semana/mes alineados a calendario. Eficiencia:
// promedio por vaca y por empleado. Calidad: promedios del mes en curso.
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	metrics, err := h.uc.GetMetrics(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(metrics)
}

// GetProduction devuelve la serie de producción bucketizada por período.
// GET /api/dashboard/production?period=day|week|month (default: week)
//
// day: dos buckets AM/PM del día de hoy. week: 7 buckets diarios.
// month: 4 buckets semanales de los últimos 28 días.
func (h *DashboardHandler) GetProduction(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	period := c.Query("period", appanalytics.PeriodWeek)
	resp, err := h.uc.GetProductionByPeriod(c.Context(), companyID, period)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(resp)
}

// DailyReport genera el reporte PDF de producción de un día.
// GET /api/dashboard/report/daily?date=YYYY-MM-DD (default: hoy)
func (h *DashboardHandler) DailyReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	pdfBytes, err := h.report.DailyReportPDF(c.Context(), companyID, date)
	if err != nil {
		return domainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="produccion-%s.pdf"`, date))
	return c.Send(pdfBytes)
}
