package repository

import (
	"context"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
)

// TemplateRepository is the persistence port for invoice templates.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *entity.InvoiceTemplate) error
	GetByID(ctx context.Context, userID, id string) (*entity.InvoiceTemplate, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.InvoiceTemplate, error)
	Update(ctx context.Context, tpl *entity.InvoiceTemplate) error
	Delete(ctx context.Context, id string) error
	// ClearDefault unsets the default flag on all of the owner's templates.
	ClearDefault(ctx context.Context, userID string) error
}
