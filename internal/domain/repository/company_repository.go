package repository

import (
	"context"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for the owner's company profile
// (one per user). GetByUser returns (nil, nil) when the profile is not set
// up yet.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByUser(ctx context.Context, userID string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
