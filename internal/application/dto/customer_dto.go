package dto

import "time"

// CreateCustomerRequest is the validated create payload. Name is required;
// email, when present, must be unique within the owner's scope.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// UpdateCustomerRequest is the partial update payload; presence = replace.
type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Country *string `json:"country,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// ListCustomersRequest bundles filters and pagination.
type ListCustomersRequest struct {
	Search   string `query:"search"`
	IsActive *bool  `query:"isActive"`
	PageRequest
}

// CustomerResponse mirrors a persisted customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Country   string    `json:"country,omitempty"`
	ZipCode   string    `json:"zipCode,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListCustomersResponse is a page of customers plus metadata.
type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination PageMeta           `json:"pagination"`
}
