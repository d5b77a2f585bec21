package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invoicepro/invoice-api/internal/domain/entity"
	"github.com/invoicepro/invoice-api/internal/domain/repository"
)

var _ repository.ThemeRepository = (*ThemeRepo)(nil)

// ThemeRepo implements ThemeRepository.
type ThemeRepo struct {
	q Querier
}

// NewThemeRepository builds the adapter.
func NewThemeRepository(q Querier) *ThemeRepo {
	return &ThemeRepo{q: q}
}

const themeColumns = `id, user_id, name, mode, primary_color, secondary_color, accent_color, background_color, text_color, is_active, created_at, updated_at`

// Create inserts a theme.
func (r *ThemeRepo) Create(ctx context.Context, t *entity.Theme) error {
	query := `
		INSERT INTO themes (` + themeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.UserID, t.Name, t.Mode, t.PrimaryColor, t.SecondaryColor,
		t.AccentColor, t.BackgroundColor, t.TextColor, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert theme: %w", err)
	}
	return nil
}

// GetByID fetches an owner's theme, (nil, nil) on miss.
func (r *ThemeRepo) GetByID(ctx context.Context, userID, id string) (*entity.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes WHERE user_id = $1 AND id = $2`
	t, err := scanTheme(r.q.QueryRow(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get theme: %w", err)
	}
	return t, nil
}

// ListByUser returns all of the owner's themes, active first.
func (r *ThemeRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes WHERE user_id = $1 ORDER BY is_active DESC, name`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update overwrites the theme row.
func (r *ThemeRepo) Update(ctx context.Context, t *entity.Theme) error {
	query := `
		UPDATE themes SET
			name = $2, mode = $3, primary_color = $4, secondary_color = $5, accent_color = $6,
			background_color = $7, text_color = $8, is_active = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.Mode, t.PrimaryColor, t.SecondaryColor, t.AccentColor,
		t.BackgroundColor, t.TextColor, t.IsActive, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	return nil
}

// Delete removes the theme row.
func (r *ThemeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}

// Deactivate unsets the active flag on all of the owner's themes.
func (r *ThemeRepo) Deactivate(ctx context.Context, userID string) error {
	if _, err := r.q.Exec(ctx, `UPDATE themes SET is_active = false WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deactivate themes: %w", err)
	}
	return nil
}

func scanTheme(row pgx.Row) (*entity.Theme, error) {
	var t entity.Theme
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Mode, &t.PrimaryColor, &t.SecondaryColor,
		&t.AccentColor, &t.BackgroundColor, &t.TextColor, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
