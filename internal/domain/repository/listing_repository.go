package repository

import (
	"context"

	"github.com/jeel735/rewear/internal/domain/entity"
)

// ListingRepository defines the interface for listing persistence.
// Search with an empty query returns every listing; otherwise it matches the
// query as a case-insensitive substring of title, location or country.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	Search(ctx context.Context, query string) ([]entity.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error)
	Update(ctx context.Context, l *entity.Listing) error
	Delete(ctx context.Context, id string) error
}
