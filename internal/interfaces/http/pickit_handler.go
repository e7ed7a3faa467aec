package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/leo-ar/pickit-api/internal/application/dto"
	"github.com/leo-ar/pickit-api/internal/application/pickit"
	"github.com/leo-ar/pickit-api/internal/domain"
)

// PickitHandler maneja las peticiones HTTP de generación del pick list.
type PickitHandler struct {
	uc *pickit.GenerateUseCase
}

// NewPickitHandler construye el handler.
func NewPickitHandler(uc *pickit.GenerateUseCase) *PickitHandler {
	return &PickitHandler{uc: uc}
}

// Generate corre el pipeline de consolidación y devuelve pick list, carros y
// SLAs. Cuerpo: {"solo_hoy": bool, "manuales": [{"sku", "cantidad"}]}.
func (h *PickitHandler) Generate(c *fiber.Ctx) error {
	var in dto.GeneratePickitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}

	res, err := h.uc.Generate(c.Context(), pickit.Options{
		SameDayOnly: in.SoloHoy,
		Manual:      in.ManualEntries(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoDemand) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SIN_VENTAS", Message: "no se encontraron ventas para procesar"})
		}
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "CATALOGO", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromPickitResult(res))
}
