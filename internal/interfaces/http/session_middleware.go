package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain"
)

// SessionMiddleware resolves the authenticated user into the full session
// (company, membership, super-admin flag) and stores it in c.Locals. Runs
// after AuthMiddleware on every protected route, so destination gates always
// see current state.
func SessionMiddleware(resolver *session.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing authentication"})
		}
		sess, err := resolver.Resolve(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "unknown identity"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "session resolution failed"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession returns the resolved session (after SessionMiddleware).
func GetSession(c *fiber.Ctx) *session.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// RequireCompany blocks users that have not completed company setup.
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing session"})
		}
		if !sess.HasCompany() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "complete company setup first"})
		}
		return c.Next()
	}
}

// RequireNoCompany guards the setup route: a user that already belongs to a
// company cannot run the bootstrap again.
func RequireNoCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing session"})
		}
		if sess.HasCompany() {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SETUP", Message: "user already belongs to a company"})
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates the platform dashboard on the resolved super-admin
// flag. Membership role does not matter here.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "missing session"})
		}
		if !sess.IsSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "super admin access required"})
		}
		return c.Next()
	}
}
