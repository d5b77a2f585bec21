package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicepro/invoice-api/internal/application/dto"
	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/invoicenum"
	"github.com/invoicepro/invoice-api/internal/domain/pricing"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

// allocRetries bounds the optimistic retry loop around invoice-number
// allocation. Two concurrent creates for the same owner can read the same
// max sequence; the unique constraint on (user_id, invoice_number) rejects
// the loser, which rereads and tries again.
const allocRetries = 3

// InvoiceUseCase orchestrates the invoice lifecycle: create, read, list,
// update with whole-item replacement, delete and duplicate. Totals always
// come from the pricing engine; numbers from the sequence scheme in
// invoicenum.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	templateRepo repository.TemplateRepository
	clock        func() time.Time
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	templateRepo repository.TemplateRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		templateRepo: templateRepo,
		clock:        time.Now,
	}
}

// WithClock replaces the time source. Intended for tests that exercise the
// per-year sequence reset.
func (uc *InvoiceUseCase) WithClock(clock func() time.Time) *InvoiceUseCase {
	uc.clock = clock
	return uc
}

// Create allocates an invoice number, computes totals and persists the
// invoice with its line items atomically. The owner must have a company
// profile (ErrPreconditionFailed) and own the referenced customer
// (ErrNotFound — never reveal another owner's data).
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customerId is required", domain.ErrValidation)
	}
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	if in.DiscountType != "" && in.DiscountType != entity.DiscountPercentage && in.DiscountType != entity.DiscountFixed {
		return nil, fmt.Errorf("%w: unknown discount type %q", domain.ErrValidation, in.DiscountType)
	}

	company, err := uc.companyRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: set up your company profile first", domain.ErrPreconditionFailed)
	}

	customer, err := uc.customerRepo.GetByID(ctx, userID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
	}

	if in.TemplateID != "" {
		if err := uc.checkTemplate(ctx, userID, in.TemplateID); err != nil {
			return nil, err
		}
	}

	totals := pricing.Compute(pricingItems(in.Items), derefOrZero(in.TaxRate), in.DiscountType, derefOrZero(in.DiscountValue))

	now := uc.clock()
	issueDate := now
	if in.IssueDate != nil {
		issueDate = *in.IssueDate
	}

	inv := &entity.Invoice{
		ID:             uuid.New().String(),
		UserID:         userID,
		CompanyID:      company.ID,
		CustomerID:     in.CustomerID,
		Status:         status,
		IssueDate:      issueDate,
		DueDate:        in.DueDate,
		Subtotal:       pricing.Round2(totals.Subtotal),
		TaxRate:        in.TaxRate,
		TaxName:        in.TaxName,
		TaxAmount:      pricing.Round2(totals.TaxAmount),
		DiscountType:   in.DiscountType,
		DiscountValue:  in.DiscountValue,
		DiscountAmount: pricing.Round2(totals.DiscountAmount),
		TotalAmount:    pricing.Round2(totals.TotalAmount),
		Notes:          in.Notes,
		Terms:          in.Terms,
		Footer:         in.Footer,
		TemplateID:     in.TemplateID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	items := buildItems(inv.ID, in.Items)

	if err := uc.persistNew(ctx, inv, items, now.Year()); err != nil {
		return nil, err
	}

	inv.Items = items
	return toInvoiceResponse(inv, customer, company), nil
}

// persistNew allocates the next invoice number and writes header plus
// items in one transaction, retrying the whole allocation on a number
// collision.
func (uc *InvoiceUseCase) persistNew(ctx context.Context, inv *entity.Invoice, items []*entity.LineItem, year int) error {
	prefix := invoicenum.Prefix(year)

	var err error
	for attempt := 0; attempt < allocRetries; attempt++ {
		err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
			maxSeq, seqErr := invoiceRepo.MaxSequence(ctx, inv.UserID, prefix)
			if seqErr != nil {
				return seqErr
			}
			inv.InvoiceNumber = invoicenum.Format(year, maxSeq+1)

			if createErr := invoiceRepo.Create(ctx, inv); createErr != nil {
				return createErr
			}
			for _, item := range items {
				if itemErr := invoiceRepo.CreateItem(ctx, item); itemErr != nil {
					return itemErr
				}
			}
			return nil
		})
		if !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("%w: invoice number allocation kept colliding", domain.ErrConflict)
}

// Get returns the fully joined invoice, items ordered by position.
func (uc *InvoiceUseCase) Get(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	inv, customer, company, err := uc.loadFull(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, customer, company), nil
}

// List returns a filtered, paginated page of the owner's invoices, newest
// first, plus total count metadata.
func (uc *InvoiceUseCase) List(ctx context.Context, userID string, in dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error) {
	if in.Status != "" && !entity.ValidStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}
	in.Defaults()

	filter := repository.InvoiceFilter{
		Status:     in.Status,
		CustomerID: in.CustomerID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Search:     in.Search,
	}
	rows, total, err := uc.invoiceRepo.List(ctx, userID, filter, in.Limit, in.Offset())
	if err != nil {
		return nil, err
	}

	out := &dto.ListInvoicesResponse{
		Invoices:   make([]dto.InvoiceListEntry, 0, len(rows)),
		Pagination: dto.NewPageMeta(total, in.Page, in.Limit),
	}
	for _, row := range rows {
		out.Invoices = append(out.Invoices, dto.InvoiceListEntry{
			ID:            row.Invoice.ID,
			InvoiceNumber: row.Invoice.InvoiceNumber,
			Status:        row.Invoice.Status,
			IssueDate:     row.Invoice.IssueDate,
			DueDate:       row.Invoice.DueDate,
			CustomerID:    row.Invoice.CustomerID,
			CustomerName:  row.CustomerName,
			TotalAmount:   row.Invoice.TotalAmount,
			CreatedAt:     row.Invoice.CreatedAt,
		})
	}
	return out, nil
}

// Update applies a partial overwrite. A present Items slice wholly
// replaces the stored set — old items are discarded, not merged — and
// totals are recomputed with the payload's tax/discount values where
// provided, the stored ones otherwise.
func (uc *InvoiceUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invoice", domain.ErrNotFound)
	}

	if in.CustomerID != nil {
		customer, err := uc.customerRepo.GetByID(ctx, userID, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: customer", domain.ErrNotFound)
		}
		inv.CustomerID = *in.CustomerID
	}
	if in.Status != nil {
		if !entity.ValidStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
		}
		inv.Status = *in.Status
	}
	if in.TemplateID != nil {
		if *in.TemplateID != "" {
			if err := uc.checkTemplate(ctx, userID, *in.TemplateID); err != nil {
				return nil, err
			}
		}
		inv.TemplateID = *in.TemplateID
	}
	if in.DiscountType != nil {
		if *in.DiscountType != "" && *in.DiscountType != entity.DiscountPercentage && *in.DiscountType != entity.DiscountFixed {
			return nil, fmt.Errorf("%w: unknown discount type %q", domain.ErrValidation, *in.DiscountType)
		}
		inv.DiscountType = *in.DiscountType
	}
	if in.IssueDate != nil {
		inv.IssueDate = *in.IssueDate
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.TaxRate != nil {
		inv.TaxRate = in.TaxRate
	}
	if in.TaxName != nil {
		inv.TaxName = *in.TaxName
	}
	if in.DiscountValue != nil {
		inv.DiscountValue = in.DiscountValue
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Terms != nil {
		inv.Terms = *in.Terms
	}
	if in.Footer != nil {
		inv.Footer = *in.Footer
	}

	var newItems []*entity.LineItem
	if in.Items != nil {
		if err := validateItems(*in.Items); err != nil {
			return nil, err
		}
		// Recompute with the patched modifiers: payload values have
		// already been merged into inv above, stored values fill the rest.
		totals := pricing.Compute(pricingItems(*in.Items), derefOrZero(inv.TaxRate), inv.DiscountType, derefOrZero(inv.DiscountValue))
		inv.Subtotal = pricing.Round2(totals.Subtotal)
		inv.TaxAmount = pricing.Round2(totals.TaxAmount)
		inv.DiscountAmount = pricing.Round2(totals.DiscountAmount)
		inv.TotalAmount = pricing.Round2(totals.TotalAmount)
		newItems = buildItems(inv.ID, *in.Items)
	}

	inv.UpdatedAt = uc.clock()

	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if newItems != nil {
			if err := invoiceRepo.DeleteItems(ctx, inv.ID); err != nil {
				return err
			}
			for _, item := range newItems {
				if err := invoiceRepo.CreateItem(ctx, item); err != nil {
					return err
				}
			}
		}
		return invoiceRepo.Update(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	inv, customer, company, err := uc.loadFull(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, customer, company), nil
}

// Delete removes the invoice and its items unconditionally after the
// ownership check.
func (uc *InvoiceUseCase) Delete(ctx context.Context, userID, id string) error {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if inv == nil {
		return fmt.Errorf("%w: invoice", domain.ErrNotFound)
	}
	return uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.DeleteItems(ctx, inv.ID); err != nil {
			return err
		}
		return invoiceRepo.Delete(ctx, inv.ID)
	})
}

// Duplicate is create-with-copied-inputs: same customer, items and
// tax/discount settings, but a fresh invoice number and status forced back
// to Draft. It is not a row clone.
func (uc *InvoiceUseCase) Duplicate(ctx context.Context, userID, id string) (*dto.InvoiceResponse, error) {
	inv, _, _, err := uc.loadFull(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	req := dto.CreateInvoiceRequest{
		CustomerID:    inv.CustomerID,
		Status:        entity.StatusDraft,
		DueDate:       inv.DueDate,
		TaxRate:       inv.TaxRate,
		TaxName:       inv.TaxName,
		DiscountType:  inv.DiscountType,
		DiscountValue: inv.DiscountValue,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		Footer:        inv.Footer,
		TemplateID:    inv.TemplateID,
	}
	for _, it := range inv.Items {
		req.Items = append(req.Items, dto.InvoiceItemRequest{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			Discount:    it.Discount,
		})
	}
	return uc.Create(ctx, userID, req)
}

// loadFull resolves the invoice with ordered items, customer and company.
func (uc *InvoiceUseCase) loadFull(ctx context.Context, userID, id string) (*entity.Invoice, *entity.Customer, *entity.Company, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if inv == nil {
		return nil, nil, nil, fmt.Errorf("%w: invoice", domain.ErrNotFound)
	}
	items, err := uc.invoiceRepo.GetItems(ctx, inv.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	inv.Items = items

	customer, err := uc.customerRepo.GetByID(ctx, userID, inv.CustomerID)
	if err != nil {
		return nil, nil, nil, err
	}
	company, err := uc.companyRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	return inv, customer, company, nil
}

func (uc *InvoiceUseCase) checkTemplate(ctx context.Context, userID, templateID string) error {
	tpl, err := uc.templateRepo.GetByID(ctx, userID, templateID)
	if err != nil {
		return err
	}
	if tpl == nil {
		return fmt.Errorf("%w: template", domain.ErrNotFound)
	}
	return nil
}

// validateItems rejects what the pricing engine deliberately accepts:
// empty lists, blank descriptions, negative quantities and prices.
func validateItems(items []dto.InvoiceItemRequest) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one line item is required", domain.ErrValidation)
	}
	for i, it := range items {
		if it.Description == "" {
			return fmt.Errorf("%w: item %d has no description", domain.ErrValidation, i+1)
		}
		if it.Quantity.IsNegative() {
			return fmt.Errorf("%w: item %d has negative quantity", domain.ErrValidation, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d has negative unit price", domain.ErrValidation, i+1)
		}
	}
	return nil
}

func pricingItems(items []dto.InvoiceItemRequest) []pricing.Item {
	out := make([]pricing.Item, 0, len(items))
	for _, it := range items {
		out = append(out, pricing.Item{Quantity: it.Quantity, UnitPrice: it.UnitPrice, TaxRate: it.TaxRate})
	}
	return out
}

// buildItems materializes line items with derived amounts, order assigned
// from payload position (1-based).
func buildItems(invoiceID string, items []dto.InvoiceItemRequest) []*entity.LineItem {
	out := make([]*entity.LineItem, 0, len(items))
	for i, it := range items {
		pItem := pricing.Item{Quantity: it.Quantity, UnitPrice: it.UnitPrice, TaxRate: it.TaxRate}
		li := &entity.LineItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      pricing.Round2(pItem.Amount()),
			TaxRate:     it.TaxRate,
			Discount:    it.Discount,
			Order:       i + 1,
		}
		if tax := pricing.ItemTax(pItem); tax != nil {
			rounded := pricing.Round2(*tax)
			li.TaxAmount = &rounded
		}
		out = append(out, li)
	}
	return out
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toInvoiceResponse(inv *entity.Invoice, customer *entity.Customer, company *entity.Company) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		Status:         inv.Status,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		CustomerID:     inv.CustomerID,
		CompanyID:      inv.CompanyID,
		Subtotal:       inv.Subtotal,
		TaxRate:        inv.TaxRate,
		TaxName:        inv.TaxName,
		TaxAmount:      inv.TaxAmount,
		DiscountType:   inv.DiscountType,
		DiscountValue:  inv.DiscountValue,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		Notes:          inv.Notes,
		Terms:          inv.Terms,
		Footer:         inv.Footer,
		TemplateID:     inv.TemplateID,
		Items:          make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
			TaxRate:     it.TaxRate,
			TaxAmount:   it.TaxAmount,
			Discount:    it.Discount,
			Order:       it.Order,
		})
	}
	if customer != nil {
		resp.Customer = toCustomerResponse(customer)
	}
	if company != nil {
		resp.Company = toCompanyResponse(company)
	}
	return resp
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
