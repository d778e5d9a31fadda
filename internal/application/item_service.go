package application

import (
	"context"
	"errors"

	"github.com/jeel735/rewear/internal/domain/entity"
	repo "github.com/jeel735/rewear/internal/domain/repository"
)

var ErrItemNotFound = errors.New("item not found or not yours")

// ItemService manages the standalone inventory bucket. Items never join the
// swap/listing graph; they are per-user uploads only.
type ItemService struct {
	Items repo.ItemRepository
}

func NewItemService(items repo.ItemRepository) *ItemService {
	return &ItemService{Items: items}
}

type ItemInput struct {
	Title       string
	Description string
	Size        string
	Condition   string
	ImageURL    string
	Status      string
}

func (s *ItemService) Create(ctx context.Context, userID string, in ItemInput) (*entity.Item, error) {
	status := in.Status
	if status == "" {
		status = entity.ItemAvailable
	}
	item := &entity.Item{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Size:        in.Size,
		Condition:   in.Condition,
		ImageURL:    in.ImageURL,
		Status:      status,
	}
	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) ListForUser(ctx context.Context, userID string) ([]entity.Item, error) {
	return s.Items.ListByUser(ctx, userID)
}

// Update rewrites an item owned by userID. The repository matches on both ids,
// so a foreign or absent item reads as not found.
func (s *ItemService) Update(ctx context.Context, userID, itemID string, in ItemInput) (*entity.Item, error) {
	item := &entity.Item{
		ID:          itemID,
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Size:        in.Size,
		Condition:   in.Condition,
		ImageURL:    in.ImageURL,
		Status:      in.Status,
	}
	if item.Status == "" {
		item.Status = entity.ItemAvailable
	}
	updated, err := s.Items.Update(ctx, item)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrItemNotFound
	}
	return item, nil
}
