package entity

import "time"

// Customer is a billing counterparty scoped to one owner. Email is unique
// per owner. A customer referenced by invoices cannot be deleted, only
// deactivated.
type Customer struct {
	ID       string
	UserID   string // owner scope
	Name     string
	Email    string
	Phone    string
	Company  string
	Address  string
	City     string
	State    string
	Country  string
	ZipCode  string
	TaxID    string
	Notes    string
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
