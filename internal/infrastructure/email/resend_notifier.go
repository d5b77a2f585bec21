// Package email delivers rendered invoices through Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/invoicepro/invoice-api/internal/application/billing"
	"github.com/invoicepro/invoice-api/pkg/logger"
)

var _ billing.InvoiceNotifier = (*ResendNotifier)(nil)

// ResendNotifier sends invoice emails with the PDF attached.
type ResendNotifier struct {
	client *resend.Client
	from   string
	log    *logger.Logger
}

// NewResendNotifier builds the notifier. from is the sender in
// "Name <address>" form.
func NewResendNotifier(apiKey, from string, log *logger.Logger) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		log:    log,
	}
}

// SendInvoice mails the invoice PDF to the recipient.
func (n *ResendNotifier) SendInvoice(ctx context.Context, recipient, invoiceNumber string, pdf []byte) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{recipient},
		Subject: fmt.Sprintf("Invoice %s", invoiceNumber),
		Html: fmt.Sprintf(
			"<p>Hello,</p><p>Please find invoice <strong>%s</strong> attached.</p><p>Thank you for your business.</p>",
			invoiceNumber,
		),
		Attachments: []*resend.Attachment{
			{
				Filename:    fmt.Sprintf("invoice-%s.pdf", invoiceNumber),
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice"},
		},
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		n.log.Error().Err(err).Str("to", recipient).Str("invoice", invoiceNumber).Msg("send invoice email")
		return fmt.Errorf("send email: %w", err)
	}

	n.log.Info().Str("email_id", sent.Id).Str("to", recipient).Str("invoice", invoiceNumber).Msg("invoice email sent")
	return nil
}
