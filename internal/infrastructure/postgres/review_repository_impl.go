package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

type ReviewRepository struct {
	db Querier
}

func NewReviewRepository(db Querier) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *entity.Review) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reviews (listing_id, author_id, comment, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rev.ListingID, rev.AuthorID, rev.Comment, rev.Rating)

	return row.Scan(&rev.ID, &rev.CreatedAt)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	rev := &entity.Review{}

	row := r.db.QueryRow(ctx, `
		SELECT id, listing_id, author_id, comment, rating, created_at
		FROM reviews
		WHERE id = $1
	`, id)

	if err := row.Scan(&rev.ID, &rev.ListingID, &rev.AuthorID, &rev.Comment,
		&rev.Rating, &rev.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return rev, nil
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string) ([]entity.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, listing_id, author_id, comment, rating, created_at
		FROM reviews
		WHERE listing_id = $1
		ORDER BY created_at ASC
	`, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var rev entity.Review
		if err := rows.Scan(&rev.ID, &rev.ListingID, &rev.AuthorID, &rev.Comment,
			&rev.Rating, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
