package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// CompanyHandler the settings screen: company profile and subscription.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.Get(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update PUT /api/company — admin role only.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Update(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Subscription GET /api/company/subscription — the current active
// subscription, null body when none exists.
func (h *CompanyHandler) Subscription(c *fiber.Ctx) error {
	res, err := h.uc.ActiveSubscription(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
