package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/admin"
)

// AdminHandler the super-admin platform dashboard. Every route sits behind
// RequireSuperAdmin.
type AdminHandler struct {
	uc *admin.DashboardUseCase
}

// NewAdminHandler builds the handler.
func NewAdminHandler(uc *admin.DashboardUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// Dashboard GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	res, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// ToggleSubscription POST /api/admin/subscriptions/:id/toggle
func (h *AdminHandler) ToggleSubscription(c *fiber.Ctx) error {
	res, err := h.uc.ToggleSubscription(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// CreateSubscription POST /api/admin/companies/:companyId/subscription
func (h *AdminHandler) CreateSubscription(c *fiber.Ctx) error {
	res, err := h.uc.CreateSubscription(c.Context(), c.Params("companyId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
