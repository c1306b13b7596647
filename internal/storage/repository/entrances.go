package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/crackora-admin/internal/models"
)

// ListEntrances возвращает все категории в порядке их создания.
func (s *Storage) ListEntrances(ctx context.Context) ([]*models.Entrance, error) {
	const op = "storage.ListEntrances"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, is_active, created_at, updated_at
			  FROM entrances
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Entrance
	for rows.Next() {
		var e models.Entrance
		if err = rows.Scan(&e.ID, &e.Title, &e.Description, &e.IsActive,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
