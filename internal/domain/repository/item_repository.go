package repository

import (
	"context"

	"github.com/jeel735/rewear/internal/domain/entity"
)

// ItemRepository defines the interface for inventory item persistence.
// Update matches on both item id and user id so a foreign item reads as absent.
type ItemRepository interface {
	Create(ctx context.Context, i *entity.Item) error
	ListByUser(ctx context.Context, userID string) ([]entity.Item, error)
	Update(ctx context.Context, i *entity.Item) (bool, error)
}
