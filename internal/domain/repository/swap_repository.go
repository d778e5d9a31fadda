package repository

import (
	"context"

	"github.com/jeel735/rewear/internal/domain/entity"
)

// SwapRepository defines the interface for swap persistence.
//
// UpdateStatus is conditional: it flips the status only while the row is still
// pending and reports whether a row changed. Callers use the false return to
// distinguish an absent swap from an already-resolved one.
type SwapRepository interface {
	Create(ctx context.Context, s *entity.Swap) error
	GetByID(ctx context.Context, id string) (*entity.Swap, error)
	ListForUser(ctx context.Context, userID string) ([]entity.SwapDetail, error)
	ListForUsers(ctx context.Context, userIDs []string) ([]entity.Swap, error)
	ListAll(ctx context.Context) ([]entity.SwapDetail, error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	CountPendingForListing(ctx context.Context, listingID string) (int, error)
}
