package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicepro/invoice-api/internal/application/dto"
	"github.com/invoicepro/invoice-api/internal/application/usecase"
)

// ThemeHandler serves UI theme CRUD (protected).
type ThemeHandler struct {
	uc *usecase.ThemeUseCase
}

// NewThemeHandler builds the handler.
func NewThemeHandler(uc *usecase.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// Create POST /api/themes
func (h *ThemeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/themes
func (h *ThemeHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/themes/:id
func (h *ThemeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Activate PATCH /api/themes/:id/activate
func (h *ThemeHandler) Activate(c *fiber.Ctx) error {
	resp, err := h.uc.Activate(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/themes/:id
func (h *ThemeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
