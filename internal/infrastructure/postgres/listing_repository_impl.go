package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

type ListingRepository struct {
	db Querier
}

func NewListingRepository(db Querier) *ListingRepository {
	return &ListingRepository{db: db}
}

const listingColumns = `id, owner_id, title, description, price, location, country,
	category, type, size, condition, tags, images, created_at, updated_at`

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	images, err := json.Marshal(l.Images)
	if err != nil {
		return fmt.Errorf("marshal listing images: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO listings (owner_id, title, description, price, location, country,
			category, type, size, condition, tags, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, l.OwnerID, l.Title, l.Description, l.Price, l.Location, l.Country,
		l.Category, l.Type, l.Size, l.Condition, l.Tags, images)

	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// Search returns all listings when query is empty, otherwise those whose
// title, location or country contains the query, case-insensitively.
func (r *ListingRepository) Search(ctx context.Context, query string) ([]entity.Listing, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		rows, err = r.db.Query(ctx, `
			SELECT `+listingColumns+` FROM listings ORDER BY created_at DESC`)
	} else {
		pattern := "%" + query + "%"
		rows, err = r.db.Query(ctx, `
			SELECT `+listingColumns+` FROM listings
			WHERE title ILIKE $1 OR location ILIKE $1 OR country ILIKE $1
			ORDER BY created_at DESC`, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+listingColumns+` FROM listings
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list listings by owner: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *ListingRepository) Update(ctx context.Context, l *entity.Listing) error {
	images, err := json.Marshal(l.Images)
	if err != nil {
		return fmt.Errorf("marshal listing images: %w", err)
	}
	l.UpdatedAt = time.Now()

	res, err := r.db.Exec(ctx, `
		UPDATE listings
		SET title = $1, description = $2, price = $3, location = $4, country = $5,
			category = $6, type = $7, size = $8, condition = $9, tags = $10,
			images = $11, updated_at = $12
		WHERE id = $13
	`, l.Title, l.Description, l.Price, l.Location, l.Country,
		l.Category, l.Type, l.Size, l.Condition, l.Tags, images, l.UpdatedAt, l.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*entity.Listing, error) {
	l := &entity.Listing{}
	var images []byte
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price,
		&l.Location, &l.Country, &l.Category, &l.Type, &l.Size, &l.Condition,
		&l.Tags, &images, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &l.Images); err != nil {
			return nil, fmt.Errorf("unmarshal listing images: %w", err)
		}
	}
	return l, nil
}

func collectListings(rows pgx.Rows) ([]entity.Listing, error) {
	var listings []entity.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listing rows: %w", err)
	}
	return listings, nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
