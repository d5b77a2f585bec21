package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepro/invoice-api/internal/application/dto"
	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

// ThemeUseCase manages UI themes. Activating a theme deactivates the
// owner's others, so at most one is active.
type ThemeUseCase struct {
	repo repository.ThemeRepository
}

// NewThemeUseCase builds the use case.
func NewThemeUseCase(repo repository.ThemeRepository) *ThemeUseCase {
	return &ThemeUseCase{repo: repo}
}

// Create registers a theme, inactive until activated.
func (uc *ThemeUseCase) Create(ctx context.Context, userID string, in dto.CreateThemeRequest) (*dto.ThemeResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	mode := in.Mode
	if mode == "" {
		mode = entity.ThemeModeLight
	}
	if mode != entity.ThemeModeLight && mode != entity.ThemeModeDark {
		return nil, fmt.Errorf("%w: unknown theme mode %q", domain.ErrValidation, mode)
	}

	now := time.Now().UTC()
	theme := &entity.Theme{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            in.Name,
		Mode:            mode,
		PrimaryColor:    in.PrimaryColor,
		SecondaryColor:  in.SecondaryColor,
		AccentColor:     in.AccentColor,
		BackgroundColor: in.BackgroundColor,
		TextColor:       in.TextColor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, theme); err != nil {
		return nil, err
	}
	return toThemeResponse(theme), nil
}

// List returns all of the owner's themes.
func (uc *ThemeUseCase) List(ctx context.Context, userID string) ([]dto.ThemeResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThemeResponse, 0, len(list))
	for _, theme := range list {
		out = append(out, *toThemeResponse(theme))
	}
	return out, nil
}

// Update applies a partial overwrite.
func (uc *ThemeUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	theme, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, fmt.Errorf("%w: theme", domain.ErrNotFound)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		theme.Name = *in.Name
	}
	if in.Mode != nil {
		if *in.Mode != entity.ThemeModeLight && *in.Mode != entity.ThemeModeDark {
			return nil, fmt.Errorf("%w: unknown theme mode %q", domain.ErrValidation, *in.Mode)
		}
		theme.Mode = *in.Mode
	}
	if in.PrimaryColor != nil {
		theme.PrimaryColor = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		theme.SecondaryColor = *in.SecondaryColor
	}
	if in.AccentColor != nil {
		theme.AccentColor = *in.AccentColor
	}
	if in.BackgroundColor != nil {
		theme.BackgroundColor = *in.BackgroundColor
	}
	if in.TextColor != nil {
		theme.TextColor = *in.TextColor
	}
	theme.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, theme); err != nil {
		return nil, err
	}
	return toThemeResponse(theme), nil
}

// Activate makes this theme the owner's active one, deactivating the rest.
func (uc *ThemeUseCase) Activate(ctx context.Context, userID, id string) (*dto.ThemeResponse, error) {
	theme, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, fmt.Errorf("%w: theme", domain.ErrNotFound)
	}
	if err := uc.repo.Deactivate(ctx, userID); err != nil {
		return nil, err
	}
	theme.IsActive = true
	theme.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, theme); err != nil {
		return nil, err
	}
	return toThemeResponse(theme), nil
}

// Delete removes a theme.
func (uc *ThemeUseCase) Delete(ctx context.Context, userID, id string) error {
	theme, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if theme == nil {
		return fmt.Errorf("%w: theme", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toThemeResponse(t *entity.Theme) *dto.ThemeResponse {
	return &dto.ThemeResponse{
		ID:              t.ID,
		Name:            t.Name,
		Mode:            t.Mode,
		PrimaryColor:    t.PrimaryColor,
		SecondaryColor:  t.SecondaryColor,
		AccentColor:     t.AccentColor,
		BackgroundColor: t.BackgroundColor,
		TextColor:       t.TextColor,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
