package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// SetupHandler handles the one-time company bootstrap.
type SetupHandler struct {
	uc *usecase.SetupUseCase
}

// NewSetupHandler builds the handler.
func NewSetupHandler(uc *usecase.SetupUseCase) *SetupHandler {
	return &SetupHandler{uc: uc}
}

// Setup POST /api/setup — creates company, admin membership and the monthly
// subscription in one transaction.
func (h *SetupHandler) Setup(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.SetupCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Setup(c.Context(), sess, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
