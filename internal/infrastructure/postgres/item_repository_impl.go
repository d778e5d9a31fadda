package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

type ItemRepository struct {
	db Querier
}

func NewItemRepository(db Querier) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *entity.Item) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO items (user_id, title, description, size, condition, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, i.UserID, i.Title, i.Description, i.Size, i.Condition, i.ImageURL, i.Status)

	return row.Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
}

func (r *ItemRepository) ListByUser(ctx context.Context, userID string) ([]entity.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, size, condition, image_url, status,
			created_at, updated_at
		FROM items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list items by user: %w", err)
	}
	defer rows.Close()

	var items []entity.Item
	for rows.Next() {
		var i entity.Item
		if err := rows.Scan(&i.ID, &i.UserID, &i.Title, &i.Description, &i.Size,
			&i.Condition, &i.ImageURL, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}
	return items, nil
}

// Update matches on both id and user_id so updating someone else's item reads
// as not found rather than succeeding.
func (r *ItemRepository) Update(ctx context.Context, i *entity.Item) (bool, error) {
	i.UpdatedAt = time.Now()

	res, err := r.db.Exec(ctx, `
		UPDATE items
		SET title = $1, description = $2, size = $3, condition = $4, image_url = $5,
			status = $6, updated_at = $7
		WHERE id = $8 AND user_id = $9
	`, i.Title, i.Description, i.Size, i.Condition, i.ImageURL, i.Status,
		i.UpdatedAt, i.ID, i.UserID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
