package entity

import "time"

// InvoiceTemplate holds presentation defaults an invoice may reference.
// At most one template per owner is the default.
type InvoiceTemplate struct {
	ID             string
	UserID         string
	Name           string
	Description    string
	PrimaryColor   string
	SecondaryColor string
	Layout         string
	IsDefault      bool
	DefaultNotes   string
	DefaultTerms   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
