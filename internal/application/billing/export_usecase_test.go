package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	"github.com/invoicepro/invoice-api/internal/application/billing/render"
	"github.com/invoicepro/invoice-api/internal/domain"
)

// stubRenderer records the model it was handed and returns canned bytes.
type stubRenderer struct {
	out   []byte
	err   error
	model *render.Model
}

func (r *stubRenderer) Render(m *render.Model) ([]byte, error) {
	r.model = m
	return r.out, r.err
}

type stubNotifier struct {
	recipient string
	number    string
	pdf       []byte
	err       error
}

func (n *stubNotifier) SendInvoice(_ context.Context, recipient, invoiceNumber string, pdf []byte) error {
	n.recipient = recipient
	n.number = invoiceNumber
	n.pdf = pdf
	return n.err
}

func newExportFixture(t *testing.T, notifier billing.InvoiceNotifier) (*billing.ExportUseCase, *fixture, *stubRenderer) {
	t.Helper()
	f := newFixture(t)
	f.seedCompanyAndCustomer(t)
	pdf := &stubRenderer{out: []byte("%PDF-stub")}
	uc := billing.NewExportUseCase(f.uc, map[string]billing.DocumentRenderer{
		render.KindPDF:         pdf,
		render.KindSpreadsheet: &stubRenderer{out: []byte("xlsx-stub")},
	}, notifier)
	return uc, f, pdf
}

func TestExport_UnknownKindIsValidationError(t *testing.T) {
	uc, f, _ := newExportFixture(t, nil)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	_, err = uc.Export(context.Background(), testUserID, created.ID, "parchment")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExport_NamesFileAfterInvoiceNumber(t *testing.T) {
	uc, f, pdf := newExportFixture(t, nil)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	doc, err := uc.Export(context.Background(), testUserID, created.ID, render.KindPDF)
	require.NoError(t, err)

	assert.Equal(t, "invoice-INV-2026-001.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-stub"), doc.Bytes)
	require.NotNil(t, pdf.model)
	assert.Equal(t, "INV-2026-001", pdf.model.InvoiceNumber)

	doc, err = uc.Export(context.Background(), testUserID, created.ID, render.KindSpreadsheet)
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-2026-001.xlsx", doc.Filename)
}

func TestExport_UnknownInvoiceIsNotFound(t *testing.T) {
	uc, _, _ := newExportFixture(t, nil)

	_, err := uc.Export(context.Background(), testUserID, "missing", render.KindPDF)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSend_WithoutNotifierIsPreconditionFailure(t *testing.T) {
	uc, f, _ := newExportFixture(t, nil)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	err = uc.Send(context.Background(), testUserID, created.ID, "someone@example.test")
	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestSend_DefaultsToCustomerEmail(t *testing.T) {
	notifier := &stubNotifier{}
	uc, f, _ := newExportFixture(t, notifier)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	require.NoError(t, uc.Send(context.Background(), testUserID, created.ID, ""))

	assert.Equal(t, "billing@acme.test", notifier.recipient)
	assert.Equal(t, "INV-2026-001", notifier.number)
	assert.Equal(t, []byte("%PDF-stub"), notifier.pdf)
}

func TestSend_ExplicitRecipientWins(t *testing.T) {
	notifier := &stubNotifier{}
	uc, f, _ := newExportFixture(t, notifier)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	require.NoError(t, uc.Send(context.Background(), testUserID, created.ID, "cfo@acme.test"))
	assert.Equal(t, "cfo@acme.test", notifier.recipient)
}

func TestSend_WrapsDeliveryFailure(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("smtp down")}
	uc, f, _ := newExportFixture(t, notifier)
	created, err := f.uc.Create(context.Background(), testUserID, createReq(item("A", "1", "10")))
	require.NoError(t, err)

	err = uc.Send(context.Background(), testUserID, created.ID, "cfo@acme.test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send invoice INV-2026-001")
}
