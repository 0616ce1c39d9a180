package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/auth"
	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// AuthHandler handles registration, login and the session endpoint.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Me GET /api/me — the resolved session: identity, company and membership
// (both null before setup) plus the authority flags the UI gates on.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing session"})
	}
	return c.JSON(dto.SessionResponse{
		User:         *auth.ToUserResponse(sess.User),
		Company:      usecase.ToCompanyResponse(sess.Company),
		Membership:   usecase.ToMembershipResponse(sess.Membership),
		IsAdmin:      sess.IsAdmin(),
		IsSuperAdmin: sess.IsSuperAdmin,
	})
}
