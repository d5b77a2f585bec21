package repository

import (
	"context"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
)

// ThemeRepository is the persistence port for UI themes.
type ThemeRepository interface {
	Create(ctx context.Context, theme *entity.Theme) error
	GetByID(ctx context.Context, userID, id string) (*entity.Theme, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Theme, error)
	Update(ctx context.Context, theme *entity.Theme) error
	Delete(ctx context.Context, id string) error
	// Deactivate unsets the active flag on all of the owner's themes.
	Deactivate(ctx context.Context, userID string) error
}
