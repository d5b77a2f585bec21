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

// TemplateUseCase manages invoice templates. Making a template the default
// clears the flag on the owner's others first, so at most one is default.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase builds the use case.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Create registers a template.
func (uc *TemplateUseCase) Create(ctx context.Context, userID string, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.IsDefault {
		if err := uc.repo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	tpl := &entity.InvoiceTemplate{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		Description:    in.Description,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		Layout:         in.Layout,
		IsDefault:      in.IsDefault,
		DefaultNotes:   in.DefaultNotes,
		DefaultTerms:   in.DefaultTerms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// Get returns one owner-scoped template.
func (uc *TemplateUseCase) Get(ctx context.Context, userID, id string) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w: template", domain.ErrNotFound)
	}
	return toTemplateResponse(tpl), nil
}

// List returns all of the owner's templates.
func (uc *TemplateUseCase) List(ctx context.Context, userID string) ([]dto.TemplateResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, tpl := range list {
		out = append(out, *toTemplateResponse(tpl))
	}
	return out, nil
}

// Update applies a partial overwrite.
func (uc *TemplateUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, fmt.Errorf("%w: template", domain.ErrNotFound)
	}

	if in.IsDefault != nil && *in.IsDefault && !tpl.IsDefault {
		if err := uc.repo.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		tpl.Name = *in.Name
	}
	if in.Description != nil {
		tpl.Description = *in.Description
	}
	if in.PrimaryColor != nil {
		tpl.PrimaryColor = *in.PrimaryColor
	}
	if in.SecondaryColor != nil {
		tpl.SecondaryColor = *in.SecondaryColor
	}
	if in.Layout != nil {
		tpl.Layout = *in.Layout
	}
	if in.IsDefault != nil {
		tpl.IsDefault = *in.IsDefault
	}
	if in.DefaultNotes != nil {
		tpl.DefaultNotes = *in.DefaultNotes
	}
	if in.DefaultTerms != nil {
		tpl.DefaultTerms = *in.DefaultTerms
	}
	tpl.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// Delete removes a template. Invoices referencing it keep working: the
// reference is presentation only.
func (uc *TemplateUseCase) Delete(ctx context.Context, userID, id string) error {
	tpl, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return fmt.Errorf("%w: template", domain.ErrNotFound)
	}
	return uc.repo.Delete(ctx, id)
}

func toTemplateResponse(t *entity.InvoiceTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		Layout:         t.Layout,
		IsDefault:      t.IsDefault,
		DefaultNotes:   t.DefaultNotes,
		DefaultTerms:   t.DefaultTerms,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
