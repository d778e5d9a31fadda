package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/domain/entity"
)

func newReviewFixture() *ReviewService {
	listings := newFakeListingRepo(
		&entity.Listing{ID: "l1", OwnerID: "alice", Title: "denim jacket"},
	)
	return NewReviewService(newFakeReviewRepo(), listings)
}

func TestReviewCreate(t *testing.T) {
	svc := newReviewFixture()

	r, err := svc.Create(context.Background(), "l1", "bob", "fits perfectly", 5)

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "l1", r.ListingID)
	assert.Equal(t, "bob", r.AuthorID)
	assert.Equal(t, 5, r.Rating)
}

func TestReviewCreate_UnknownListing(t *testing.T) {
	svc := newReviewFixture()

	_, err := svc.Create(context.Background(), "l-missing", "bob", "nice", 4)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestReviewDelete(t *testing.T) {
	svc := newReviewFixture()
	r, err := svc.Create(context.Background(), "l1", "bob", "ok", 3)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), r.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), r.ID), ErrReviewNotFound)
}
