package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implements TemplateRepository.
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository builds the adapter.
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

const templateColumns = `id, user_id, name, description, primary_color, secondary_color, layout, is_default, default_notes, default_terms, created_at, updated_at`

// Create inserts a template.
func (r *TemplateRepo) Create(ctx context.Context, t *entity.InvoiceTemplate) error {
	query := `
		INSERT INTO invoice_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.UserID, t.Name, t.Description, t.PrimaryColor, t.SecondaryColor,
		t.Layout, t.IsDefault, t.DefaultNotes, t.DefaultTerms, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID fetches an owner's template, (nil, nil) on miss.
func (r *TemplateRepo) GetByID(ctx context.Context, userID, id string) (*entity.InvoiceTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM invoice_templates WHERE user_id = $1 AND id = $2`
	t, err := scanTemplate(r.q.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

// ListByUser returns all of the owner's templates, default first.
func (r *TemplateRepo) ListByUser(ctx context.Context, userID string) ([]*entity.InvoiceTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM invoice_templates WHERE user_id = $1 ORDER BY is_default DESC, name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []*entity.InvoiceTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update overwrites the template row.
func (r *TemplateRepo) Update(ctx context.Context, t *entity.InvoiceTemplate) error {
	query := `
		UPDATE invoice_templates SET
			name = $2, description = $3, primary_color = $4, secondary_color = $5,
			layout = $6, is_default = $7, default_notes = $8, default_terms = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.Description, t.PrimaryColor, t.SecondaryColor,
		t.Layout, t.IsDefault, t.DefaultNotes, t.DefaultTerms, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete removes the template; invoices keep their dangling reference.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoice_templates WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

// ClearDefault unsets the default flag on all of the owner's templates.
func (r *TemplateRepo) ClearDefault(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE invoice_templates SET is_default = false WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear default template: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*entity.InvoiceTemplate, error) {
	var t entity.InvoiceTemplate
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.PrimaryColor, &t.SecondaryColor,
		&t.Layout, &t.IsDefault, &t.DefaultNotes, &t.DefaultTerms, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
