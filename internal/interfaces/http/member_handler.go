package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// MemberHandler user management of the session company (admin role only).
type MemberHandler struct {
	uc *usecase.MemberUseCase
}

// NewMemberHandler builds the handler.
func NewMemberHandler(uc *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// List GET /api/members
func (h *MemberHandler) List(c *fiber.Ctx) error {
	res, err := h.uc.List(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Invite POST /api/members
func (h *MemberHandler) Invite(c *fiber.Ctx) error {
	var in dto.InviteMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Invite(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// UpdateRole PUT /api/members/:userId/role
func (h *MemberHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateMemberRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.UpdateRole(c.Context(), GetSession(c), c.Params("userId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Remove DELETE /api/members/:userId
func (h *MemberHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Context(), GetSession(c), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
