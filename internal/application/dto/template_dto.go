package dto

import "time"

// CreateTemplateRequest creates an invoice template.
type CreateTemplateRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	Layout         string `json:"layout,omitempty"`
	IsDefault      bool   `json:"isDefault,omitempty"`
	DefaultNotes   string `json:"defaultNotes,omitempty"`
	DefaultTerms   string `json:"defaultTerms,omitempty"`
}

// UpdateTemplateRequest is the partial update payload; presence = replace.
type UpdateTemplateRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	Layout         *string `json:"layout,omitempty"`
	IsDefault      *bool   `json:"isDefault,omitempty"`
	DefaultNotes   *string `json:"defaultNotes,omitempty"`
	DefaultTerms   *string `json:"defaultTerms,omitempty"`
}

// TemplateResponse mirrors a persisted template.
type TemplateResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PrimaryColor   string    `json:"primaryColor,omitempty"`
	SecondaryColor string    `json:"secondaryColor,omitempty"`
	Layout         string    `json:"layout,omitempty"`
	IsDefault      bool      `json:"isDefault"`
	DefaultNotes   string    `json:"defaultNotes,omitempty"`
	DefaultTerms   string    `json:"defaultTerms,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
