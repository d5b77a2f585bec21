package billing

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

// CustomerUseCase manages billing counterparties. Customers referenced by
// invoices can only be deactivated, never deleted.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, invoiceRepo repository.InvoiceRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, invoiceRepo: invoiceRepo}
}

// Create registers a new customer. An email already used by another of the
// owner's customers is a conflict.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Email != "" {
		existing, err := uc.customerRepo.GetByEmail(ctx, userID, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: customer with this email already exists", domain.ErrConflict)
		}
	}

	now := nowUTC()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		ZipCode:   in.ZipCode,
		TaxID:     in.TaxID,
		Notes:     in.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get returns one owner-scoped customer.
func (uc *CustomerUseCase) Get(ctx context.Context, userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
	}
	return toCustomerResponse(customer), nil
}

// List returns a filtered page of the owner's customers.
func (uc *CustomerUseCase) List(ctx context.Context, userID string, in dto.ListCustomersRequest) (*dto.ListCustomersResponse, error) {
	in.Defaults()
	filter := repository.CustomerFilter{Search: in.Search, IsActive: in.IsActive}
	list, total, err := uc.customerRepo.List(ctx, userID, filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.ListCustomersResponse{
		Customers:  make([]dto.CustomerResponse, 0, len(list)),
		Pagination: dto.NewPageMeta(total, in.Page, in.Limit),
	}
	for _, c := range list {
		out.Customers = append(out.Customers, *toCustomerResponse(c))
	}
	return out, nil
}

// Update applies a partial overwrite; a changed email must stay unique
// within the owner's scope.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
	}

	if in.Email != nil && *in.Email != "" && *in.Email != customer.Email {
		existing, err := uc.customerRepo.GetByEmail(ctx, userID, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: customer with this email already exists", domain.ErrConflict)
		}
	}

	applyString(&customer.Name, in.Name)
	applyString(&customer.Email, in.Email)
	applyString(&customer.Phone, in.Phone)
	applyString(&customer.Company, in.Company)
	applyString(&customer.Address, in.Address)
	applyString(&customer.City, in.City)
	applyString(&customer.State, in.State)
	applyString(&customer.Country, in.Country)
	applyString(&customer.ZipCode, in.ZipCode)
	applyString(&customer.TaxID, in.TaxID)
	applyString(&customer.Notes, in.Notes)
	if customer.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
	}
	customer.UpdatedAt = nowUTC()

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete removes a customer that no invoice references. Referenced
// customers must be deactivated instead.
func (uc *CustomerUseCase) Delete(ctx context.Context, userID, id string) error {
	customer, err := uc.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return fmt.Errorf("%w: customer", domain.ErrNotFound)
	}
	count, err := uc.invoiceRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: customer has invoices, deactivate instead", domain.ErrPreconditionFailed)
	}
	return uc.customerRepo.Delete(ctx, id)
}

// ToggleActive flips the active flag.
func (uc *CustomerUseCase) ToggleActive(ctx context.Context, userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
	}
	customer.IsActive = !customer.IsActive
	customer.UpdatedAt = nowUTC()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func nowUTC() time.Time { return time.Now().UTC() }

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Country:   c.Country,
		ZipCode:   c.ZipCode,
		TaxID:     c.TaxID,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
