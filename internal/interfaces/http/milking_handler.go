package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/application/milking"
	"github.com/tu-usuario/lecheria-api/internal/domain/repository"
)

// MilkingHandler maneja las peticiones HTTP de ordeños (protegido).
type MilkingHandler struct {
	uc *milking.UseCase
}

// NewMilkingHandler construye el handler.
func NewMilkingHandler(uc *milking.UseCase) *MilkingHandler {
	return &MilkingHandler{uc: uc}
}

// CreateCounted godoc
// @Summary      Registrar ordeño por conteo
// @Description  Solo número de vacas y litros totales; no genera registros individuales.
// @Tags         milkings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMilkingCountedRequest  true  "shift, cow_count, total_liters, date, time"
// @Success      201   {object}  dto.MilkingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/milkings/counted [post]
func (h *MilkingHandler) CreateCounted(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMilkingCountedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.CreateCounted(c.Context(), companyID, GetEmployeeID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MilkingResponseFrom(m))
}

// CreateItemized godoc
// @Summary      Registrar ordeño detallado por vaca
// @Description  Litros exactos por vaca; el total del evento es la suma de los registros.
// @Tags         milkings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMilkingItemizedRequest  true  "shift, cows [{cow_id, liters}], date, time"
// @Success      201   {object}  dto.MilkingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/milkings/itemized [post]
func (h *MilkingHandler) CreateItemized(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMilkingItemizedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.CreateItemized(c.Context(), companyID, GetEmployeeID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MilkingResponseFrom(m))
}

// CreateAggregate godoc
// @Summary      Registrar ordeño agregado
// @Description  Total medido repartido por igual entre las vacas indicadas.
// @Tags         milkings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMilkingAggregateRequest  true  "shift, cow_ids, total_liters, date, time"
// @Success      201   {object}  dto.MilkingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/milkings/aggregate [post]
func (h *MilkingHandler) CreateAggregate(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMilkingAggregateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.uc.CreateAggregate(c.Context(), companyID, GetEmployeeID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MilkingResponseFrom(m))
}

// List godoc
// @Summary      Listar ordeños
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        date         query  string  false  "Filtrar por fecha (YYYY-MM-DD)"
// @Param        shift        query  string  false  "Filtrar por turno (AM|PM)"
// @Param        employee_id  query  string  false  "Filtrar por empleado (UUID)"
// @Success      200  {array}   dto.MilkingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/milkings [get]
func (h *MilkingHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := repository.MilkingFilter{
		Date:       c.Query("date"),
		Shift:      c.Query("shift"),
		EmployeeID: c.Query("employee_id"),
	}
	list, err := h.uc.List(c.Context(), companyID, filter)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.MilkingResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MilkingResponseFrom(m))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un ordeño con sus registros individuales
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ordeño (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/milkings/{id} [get]
func (h *MilkingHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	detail, err := h.uc.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	records := make([]fiber.Map, 0, len(detail.Records))
	for _, r := range detail.Records {
		records = append(records, fiber.Map{
			"id":     r.ID,
			"cow_id": r.CowID,
			"liters": r.Liters,
		})
	}
	return c.JSON(fiber.Map{
		"milking": dto.MilkingResponseFrom(detail.Milking),
		"records": records,
	})
}

// Delete godoc
// @Summary      Eliminar un ordeño y sus registros individuales
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ordeño (UUID)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/milkings/{id} [delete]
func (h *MilkingHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "ordeño eliminado"})
}

// CowHistory godoc
// @Summary      Historial de producción de una vaca
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        cowId  path  string  true  "ID de la vaca (UUID)"
// @Success      200  {array}   dto.CowHistoryEntryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/milkings/cow/{cowId} [get]
func (h *MilkingHandler) CowHistory(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	entries, err := h.uc.CowHistory(c.Context(), companyID, c.Params("cowId"))
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.CowHistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.CowHistoryEntryDTO{
			ID:          e.Record.ID,
			MilkingID:   e.Record.MilkingID,
			Liters:      e.Record.Liters,
			Shift:       e.Shift,
			CaptureMode: e.CaptureMode,
			Date:        e.Date,
			Time:        e.Time,
			EmployeeID:  e.EmployeeID,
		})
	}
	return c.JSON(out)
}

// EmployeeHistory godoc
// @Summary      Historial y eficiencia de un empleado
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado (UUID)"
// @Success      200  {object}  dto.EmployeeHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/milkings/employee/{employeeId} [get]
func (h *MilkingHandler) EmployeeHistory(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	resp, err := h.uc.EmployeeHistory(c.Context(), companyID, c.Params("employeeId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// DailyStats godoc
// @Summary      Estadísticas de un día (totales y desglose AM/PM)
// @Tags         milkings
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha (YYYY-MM-DD); por defecto hoy"
// @Success      200  {object}  dto.DailyStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/milkings/stats/daily [get]
func (h *MilkingHandler) DailyStats(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	resp, err := h.uc.DailyStats(c.Context(), companyID, date)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
