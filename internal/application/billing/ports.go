package billing

import (
	"context"

	"github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

// TxRunner executes a function inside one persistence transaction, handing
// it a tx-scoped invoice repository. A returned error rolls everything
// back: invoice header and line items commit or vanish together.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// DocumentRenderer turns the canonical render model into one concrete
// document encoding. Implementations must consume the model as-is and
// never recompute totals.
type DocumentRenderer interface {
	Render(m *render.Model) ([]byte, error)
}

// InvoiceNotifier delivers a rendered invoice PDF to a recipient. Delivery
// retries are the collaborator's problem, not the core's.
type InvoiceNotifier interface {
	SendInvoice(ctx context.Context, recipient, invoiceNumber string, pdf []byte) error
}
