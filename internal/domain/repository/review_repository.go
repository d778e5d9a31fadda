package repository

import (
	"context"

	"github.com/jeel735/rewear/internal/domain/entity"
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]entity.Review, error)
	Delete(ctx context.Context, id string) error
}
