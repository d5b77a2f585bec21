package entity

import "time"

// User roles.
const (
	RoleAdmin        = "ADMIN"
	RoleBusinessUser = "BUSINESS_USER"
)

// User is a business account. Every customer, invoice and company profile
// is scoped to exactly one user.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
