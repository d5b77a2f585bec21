package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one line item in a create or update payload.
// Amount and tax amount are never accepted from the client; they are
// recomputed on every write.
type InvoiceItemRequest struct {
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// CreateInvoiceRequest is the validated create payload.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customerId"`
	Status        string               `json:"status,omitempty"` // defaults to DRAFT
	IssueDate     *time.Time           `json:"issueDate,omitempty"`
	DueDate       *time.Time           `json:"dueDate,omitempty"`
	Items         []InvoiceItemRequest `json:"items"`
	TaxRate       *decimal.Decimal     `json:"taxRate,omitempty"`
	TaxName       string               `json:"taxName,omitempty"`
	DiscountType  string               `json:"discountType,omitempty"`
	DiscountValue *decimal.Decimal     `json:"discountValue,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Terms         string               `json:"terms,omitempty"`
	Footer        string               `json:"footer,omitempty"`
	TemplateID    string               `json:"templateId,omitempty"`
}

// UpdateInvoiceRequest is the partial update payload. Every field is
// optional: presence means "replace", absence means "leave unchanged".
// A present Items slice wholly replaces the stored item set and triggers a
// totals recomputation.
type UpdateInvoiceRequest struct {
	CustomerID    *string               `json:"customerId,omitempty"`
	Status        *string               `json:"status,omitempty"`
	IssueDate     *time.Time            `json:"issueDate,omitempty"`
	DueDate       *time.Time            `json:"dueDate,omitempty"`
	Items         *[]InvoiceItemRequest `json:"items,omitempty"`
	TaxRate       *decimal.Decimal      `json:"taxRate,omitempty"`
	TaxName       *string               `json:"taxName,omitempty"`
	DiscountType  *string               `json:"discountType,omitempty"`
	DiscountValue *decimal.Decimal      `json:"discountValue,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
	Terms         *string               `json:"terms,omitempty"`
	Footer        *string               `json:"footer,omitempty"`
	TemplateID    *string               `json:"templateId,omitempty"`
}

// ListInvoicesRequest bundles filters and pagination for listings.
type ListInvoicesRequest struct {
	Status     string     `query:"status"`
	CustomerID string     `query:"customerId"`
	StartDate  *time.Time `query:"startDate"`
	EndDate    *time.Time `query:"endDate"`
	Search     string     `query:"search"`
	PageRequest
}

// InvoiceItemResponse mirrors one persisted line item.
type InvoiceItemResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	Amount      decimal.Decimal  `json:"amount"`
	TaxRate     *decimal.Decimal `json:"taxRate,omitempty"`
	TaxAmount   *decimal.Decimal `json:"taxAmount,omitempty"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
	Order       int              `json:"order"`
}

// InvoiceResponse is the fully joined invoice record.
type InvoiceResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	Status        string           `json:"status"`
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	CustomerID    string           `json:"customerId"`
	CompanyID     string           `json:"companyId"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	TaxRate       *decimal.Decimal `json:"taxRate,omitempty"`
	TaxName       string           `json:"taxName,omitempty"`
	TaxAmount     decimal.Decimal  `json:"taxAmount"`
	DiscountType  string           `json:"discountType,omitempty"`
	DiscountValue *decimal.Decimal `json:"discountValue,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	Notes         string           `json:"notes,omitempty"`
	Terms         string           `json:"terms,omitempty"`
	Footer        string           `json:"footer,omitempty"`
	TemplateID    string           `json:"templateId,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Customer      *CustomerResponse     `json:"customer,omitempty"`
	Company       *CompanyResponse      `json:"company,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// InvoiceListEntry is one row of a paginated invoice listing.
type InvoiceListEntry struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Status        string          `json:"status"`
	IssueDate     time.Time       `json:"issueDate"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListInvoicesResponse is a page of invoices plus metadata.
type ListInvoicesResponse struct {
	Invoices   []InvoiceListEntry `json:"invoices"`
	Pagination PageMeta           `json:"pagination"`
}

// SendInvoiceRequest asks for the invoice PDF to be emailed.
type SendInvoiceRequest struct {
	Email string `json:"email"`
}
