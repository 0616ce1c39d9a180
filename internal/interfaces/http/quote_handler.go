package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/dto"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// QuoteHandler tenant-scoped quote CRUD. Permission gating happens in the
// use case; the handler only translates transport.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler builds the handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Create POST /api/quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Create(c.Context(), GetSession(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Get GET /api/quotes/:id
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	res, err := h.uc.Get(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// List GET /api/quotes?limit=20&offset=0
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid pagination"})
	}
	res, err := h.uc.List(c.Context(), GetSession(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Update PUT /api/quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Update(c.Context(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete DELETE /api/quotes/:id
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
