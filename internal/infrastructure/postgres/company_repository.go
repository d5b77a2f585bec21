package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invoicepro/invoice-api/internal/domain"
	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository (usable with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, user_id, name, email, phone, website, address, city, state, country, zip_code, tax_id, created_at, updated_at`

// Create inserts the owner's profile. A second profile for the same user
// violates the unique constraint and is a conflict.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Website, c.Address, c.City,
		c.State, c.Country, c.ZipCode, c.TaxID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company profile already exists", domain.ErrConflict)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByUser fetches the owner's profile, (nil, nil) when not set up.
func (r *CompanyRepo) GetByUser(ctx context.Context, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Website, &c.Address, &c.City,
		&c.State, &c.Country, &c.ZipCode, &c.TaxID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update overwrites the profile row.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET
			name = $2, email = $3, phone = $4, website = $5, address = $6, city = $7,
			state = $8, country = $9, zip_code = $10, tax_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Website, c.Address, c.City,
		c.State, c.Country, c.ZipCode, c.TaxID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
