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

// CompanyUseCase manages the owner's single company profile. Upsert
// semantics: the first save creates it, every later save replaces it.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get returns the owner's profile, ErrNotFound when it was never set up.
func (uc *CompanyUseCase) Get(ctx context.Context, userID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: company profile", domain.ErrNotFound)
	}
	return toCompanyResponse(company), nil
}

// Upsert creates the profile on first save and fully replaces it after.
func (uc *CompanyUseCase) Upsert(ctx context.Context, userID string, in dto.UpsertCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	company, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.Company{ID: uuid.New().String(), UserID: userID, CreatedAt: now}
	}
	company.Name = in.Name
	company.Email = in.Email
	company.Phone = in.Phone
	company.Website = in.Website
	company.Address = in.Address
	company.City = in.City
	company.State = in.State
	company.Country = in.Country
	company.ZipCode = in.ZipCode
	company.TaxID = in.TaxID
	company.UpdatedAt = now

	if company.CreatedAt.Equal(now) {
		err = uc.repo.Create(ctx, company)
	} else {
		err = uc.repo.Update(ctx, company)
	}
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Website:   c.Website,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Country:   c.Country,
		ZipCode:   c.ZipCode,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
