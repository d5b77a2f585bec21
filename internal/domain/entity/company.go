package entity

import "time"

// Company is the owner's business profile. One per owner; required before
// any invoice can be created.
type Company struct {
	ID      string
	UserID  string
	Name    string
	Email   string
	Phone   string
	Website string
	Address string
	City    string
	State   string
	Country string
	ZipCode string
	TaxID   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
