package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	"github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/application/dto"
)

// contentTypes maps document kinds to transport content types.
var contentTypes = map[string]string{
	render.KindPDF:          "application/pdf",
	render.KindSpreadsheet:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	render.KindFlowDocument: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// InvoiceHandler serves the invoice lifecycle plus exports (protected).
type InvoiceHandler struct {
	uc       *billing.InvoiceUseCase
	exportUC *billing.ExportUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, exportUC *billing.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, exportUC: exportUC}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/invoices?status=&customerId=&startDate=&endDate=&search=&page=&limit=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.ListInvoicesRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Duplicate POST /api/invoices/:id/duplicate
func (h *InvoiceHandler) Duplicate(c *fiber.Ctx) error {
	resp, err := h.uc.Duplicate(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ExportPDF GET /api/invoices/:id/export/pdf
func (h *InvoiceHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, render.KindPDF)
}

// ExportExcel GET /api/invoices/:id/export/excel
func (h *InvoiceHandler) ExportExcel(c *fiber.Ctx) error {
	return h.export(c, render.KindSpreadsheet)
}

// ExportWord GET /api/invoices/:id/export/word
func (h *InvoiceHandler) ExportWord(c *fiber.Ctx) error {
	return h.export(c, render.KindFlowDocument)
}

func (h *InvoiceHandler) export(c *fiber.Ctx, kind string) error {
	doc, err := h.exportUC.Export(c.Context(), GetUserID(c), c.Params("id"), kind)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypes[kind])
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Bytes)
}

// Send POST /api/invoices/:id/send
func (h *InvoiceHandler) Send(c *fiber.Ctx) error {
	var in dto.SendInvoiceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	if err := h.exportUC.Send(c.Context(), GetUserID(c), c.Params("id"), in.Email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "sent"})
}
