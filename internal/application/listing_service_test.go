package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/domain/entity"
)

func newListingFixture(swaps ...*entity.Swap) *ListingService {
	users := newFakeUserRepo(
		&entity.User{ID: "alice", Username: "alice"},
		&entity.User{ID: "bob", Username: "bob"},
	)
	listings := newFakeListingRepo(
		&entity.Listing{ID: "l1", OwnerID: "alice", Title: "denim jacket", Location: "Oslo"},
		&entity.Listing{ID: "l2", OwnerID: "bob", Title: "wool coat", Location: "Berlin"},
	)
	return NewListingService(listings, newFakeReviewRepo(), users, newFakeSwapRepo(swaps...), nil, "", nil, nil)
}

func TestNormalizeTags(t *testing.T) {
	assert.Nil(t, NormalizeTags(""))
	assert.Nil(t, NormalizeTags("   "))
	assert.Equal(t, []string{"vintage"}, NormalizeTags("vintage"))
	assert.Equal(t, []string{"vintage", "denim", "blue"}, NormalizeTags(" vintage, denim ,blue "))
	assert.Equal(t, []string{"a", "b"}, NormalizeTags("a,,b,"))
}

func TestListingSearch_AttachesOwnerBalances(t *testing.T) {
	svc := newListingFixture(
		&entity.Swap{ID: "s1", SenderID: "alice", ReceiverID: "bob", Status: entity.SwapApproved},
		&entity.Swap{ID: "s2", SenderID: "bob", ReceiverID: "carol", Status: entity.SwapRejected},
	)

	results, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, results, 2)

	byOwner := map[string]DirectoryListing{}
	for _, r := range results {
		byOwner[r.OwnerID] = r
	}
	assert.Equal(t, BasePoints+ApprovedSwapPoints, byOwner["alice"].Owner.Points)
	assert.Equal(t, BasePoints+ApprovedSwapPoints+RejectedSwapPoints, byOwner["bob"].Owner.Points)
	assert.Equal(t, "alice", byOwner["alice"].Owner.Username)
}

func TestListingGet_NotFound(t *testing.T) {
	svc := newListingFixture()

	_, err := svc.Get(context.Background(), "l-missing")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListingGet_IncludesOwnerAndReviews(t *testing.T) {
	svc := newListingFixture()
	require.NoError(t, svc.Reviews.Create(context.Background(), &entity.Review{
		ListingID: "l1", AuthorID: "bob", Comment: "great fit", Rating: 5,
	}))

	detail, err := svc.Get(context.Background(), "l1")
	require.NoError(t, err)

	assert.Equal(t, "alice", detail.Owner.Username)
	assert.Equal(t, BasePoints, detail.Owner.Points)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "bob", detail.Reviews[0].AuthorName)
	assert.Equal(t, [2]float64{0, 0}, detail.Coordinates)
}

func TestListingDelete_RefusedWhilePendingSwap(t *testing.T) {
	svc := newListingFixture(
		&entity.Swap{ID: "s1", SenderID: "alice", ReceiverID: "bob", SenderItemID: "l1", ReceiverItemID: "l2", Status: entity.SwapPending},
	)

	err := svc.Delete(context.Background(), "l1")
	assert.ErrorIs(t, err, ErrListingInSwap)
}

func TestListingDelete_AllowedAfterResolution(t *testing.T) {
	svc := newListingFixture(
		&entity.Swap{ID: "s1", SenderID: "alice", ReceiverID: "bob", SenderItemID: "l1", ReceiverItemID: "l2", Status: entity.SwapApproved},
	)

	require.NoError(t, svc.Delete(context.Background(), "l1"))

	_, err := svc.Get(context.Background(), "l1")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListingDelete_Missing(t *testing.T) {
	svc := newListingFixture()

	err := svc.Delete(context.Background(), "l-missing")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListingCreate_NormalizesTags(t *testing.T) {
	svc := newListingFixture()

	l, err := svc.Create(context.Background(), "alice", ListingInput{
		Title: "silk scarf", Description: "barely worn", Location: "Paris",
		Tags: "silk, summer ,",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"silk", "summer"}, l.Tags)
	assert.Equal(t, "alice", l.OwnerID)
}
