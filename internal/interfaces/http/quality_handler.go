package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/lecheria-api/internal/application/dto"
	"github.com/tu-usuario/lecheria-api/internal/application/quality"
)

// QualityHandler maneja las peticiones HTTP de análisis de calidad (protegido).
type QualityHandler struct {
	uc *quality.UseCase
}

// NewQualityHandler construye el handler.
func NewQualityHandler(uc *quality.UseCase) *QualityHandler {
	return &QualityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar análisis de calidad de leche
// @Tags         quality
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQualityTestRequest  true  "test_id, fat_percentage, protein_percentage, lactose, acidity, ufc, test_date"
// @Success      201   {object}  dto.QualityTestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/quality [post]
func (h *QualityHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateQualityTestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.QualityTestResponseFrom(t))
}

// List godoc
// @Summary      Listar análisis de calidad
// @Tags         quality
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QualityTestResponse
// @Router       /api/quality [get]
func (h *QualityHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	tests, err := h.uc.List(c.Context(), companyID)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.QualityTestResponse, 0, len(tests))
	for _, t := range tests {
		out = append(out, dto.QualityTestResponseFrom(t))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un análisis de calidad
// @Tags         quality
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del análisis (UUID)"
// @Success      200  {object}  dto.QualityTestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quality/{id} [get]
func (h *QualityHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	t, err := h.uc.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.QualityTestResponseFrom(t))
}

// Update godoc
// @Summary      Actualizar un análisis de calidad (parcial)
// @Tags         quality
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del análisis (UUID)"
// @Param        body  body  dto.UpdateQualityTestRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.QualityTestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quality/{id} [put]
func (h *QualityHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateQualityTestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.uc.Update(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.QualityTestResponseFrom(t))
}

// Delete godoc
// @Summary      Eliminar un análisis de calidad
// @Tags         quality
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del análisis (UUID)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quality/{id} [delete]
func (h *QualityHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.Delete(c.Context(), companyID, c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "análisis eliminado"})
}

// Stats godoc
// @Summary      Promedios de calidad del tenant
// @Tags         quality
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.QualityStatsResponse
// @Router       /api/quality/stats [get]
func (h *QualityHandler) Stats(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	stats, err := h.uc.Stats(c.Context(), companyID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(stats)
}
