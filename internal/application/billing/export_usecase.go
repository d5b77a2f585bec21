package billing

import (
	"context"
	"fmt"

	"github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/domain"
)

// Document is a rendered invoice ready for transport.
type Document struct {
	Bytes    []byte
	Filename string
	Kind     string
}

// fileExtensions maps render kinds to download extensions.
var fileExtensions = map[string]string{
	render.KindPDF:          "pdf",
	render.KindSpreadsheet:  "xlsx",
	render.KindFlowDocument: "docx",
}

// ExportUseCase renders invoices into downloadable documents and mails
// them out. All formats consume the same render model, so the numbers on a
// PDF, a spreadsheet and a flow document always agree.
type ExportUseCase struct {
	invoices  *InvoiceUseCase
	renderers map[string]DocumentRenderer
	notifier  InvoiceNotifier
}

// NewExportUseCase wires the renderers by kind. The notifier may be nil
// when outbound mail is not configured; Send then fails with a
// precondition error.
func NewExportUseCase(invoices *InvoiceUseCase, renderers map[string]DocumentRenderer, notifier InvoiceNotifier) *ExportUseCase {
	return &ExportUseCase{invoices: invoices, renderers: renderers, notifier: notifier}
}

// Export resolves the invoice and renders it in the requested kind.
func (uc *ExportUseCase) Export(ctx context.Context, userID, invoiceID, kind string) (*Document, error) {
	renderer, ok := uc.renderers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown document kind %q", domain.ErrValidation, kind)
	}

	model, err := uc.buildModel(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	data, err := renderer.Render(model)
	if err != nil {
		return nil, fmt.Errorf("render %s document: %w", kind, err)
	}

	return &Document{
		Bytes:    data,
		Filename: fmt.Sprintf("invoice-%s.%s", model.InvoiceNumber, fileExtensions[kind]),
		Kind:     kind,
	}, nil
}

// Send renders the invoice as PDF and delivers it to the recipient. An
// empty recipient falls back to the customer's email.
func (uc *ExportUseCase) Send(ctx context.Context, userID, invoiceID, recipient string) error {
	if uc.notifier == nil {
		return fmt.Errorf("%w: outbound email is not configured", domain.ErrPreconditionFailed)
	}

	inv, customer, company, err := uc.invoices.loadFull(ctx, userID, invoiceID)
	if err != nil {
		return err
	}
	if recipient == "" {
		if customer == nil || customer.Email == "" {
			return fmt.Errorf("%w: no recipient email", domain.ErrValidation)
		}
		recipient = customer.Email
	}

	model, err := render.Build(inv, company, customer)
	if err != nil {
		return err
	}
	renderer, ok := uc.renderers[render.KindPDF]
	if !ok {
		return fmt.Errorf("%w: pdf renderer is not configured", domain.ErrPreconditionFailed)
	}
	pdf, err := renderer.Render(model)
	if err != nil {
		return fmt.Errorf("render pdf document: %w", err)
	}

	if err := uc.notifier.SendInvoice(ctx, recipient, inv.InvoiceNumber, pdf); err != nil {
		return fmt.Errorf("send invoice %s: %w", inv.InvoiceNumber, err)
	}
	return nil
}

func (uc *ExportUseCase) buildModel(ctx context.Context, userID, invoiceID string) (*render.Model, error) {
	inv, customer, company, err := uc.invoices.loadFull(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	return render.Build(inv, company, customer)
}
