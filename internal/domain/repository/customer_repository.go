package repository

import (
	"context"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
)

// CustomerFilter narrows customer listings.
type CustomerFilter struct {
	Search   string // matches name, email and company, case-insensitive
	IsActive *bool
}

// CustomerRepository is the persistence port for customers. Lookups return
// (nil, nil) when no row matches.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, userID, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, userID, email string) (*entity.Customer, error)
	List(ctx context.Context, userID string, f CustomerFilter, limit, offset int) ([]*entity.Customer, int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
