package application

import (
	"context"
	"errors"

	"github.com/jeel735/rewear/internal/domain/entity"
	repo "github.com/jeel735/rewear/internal/domain/repository"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewService struct {
	Reviews  repo.ReviewRepository
	Listings repo.ListingRepository
}

func NewReviewService(reviews repo.ReviewRepository, listings repo.ListingRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Listings: listings}
}

// Create attaches a review to a listing. The listing is checked first so a
// vanished listing fails fast before any write.
func (s *ReviewService) Create(ctx context.Context, listingID, authorID, comment string, rating int) (*entity.Review, error) {
	if _, err := s.Listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	review := &entity.Review{
		ListingID: listingID,
		AuthorID:  authorID,
		Comment:   comment,
		Rating:    rating,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes a review. Authorship is enforced by the route guard.
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	if err := s.Reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
