package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/domain/entity"
)

func newSwapFixture() (*SwapService, *fakeSwapRepo) {
	users := newFakeUserRepo(
		&entity.User{ID: "alice", Username: "alice"},
		&entity.User{ID: "bob", Username: "bob"},
	)
	listings := newFakeListingRepo(
		&entity.Listing{ID: "l-alice", OwnerID: "alice", Title: "denim jacket"},
		&entity.Listing{ID: "l-bob", OwnerID: "bob", Title: "wool coat"},
	)
	swaps := newFakeSwapRepo()
	return NewSwapService(swaps, users, listings, nil, nil), swaps
}

func TestSwapCreate(t *testing.T) {
	svc, _ := newSwapFixture()

	s, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, entity.SwapPending, s.Status)
	assert.Equal(t, "alice", s.SenderID)
	assert.Equal(t, "bob", s.ReceiverID)
}

func TestSwapCreate_SelfSwap(t *testing.T) {
	svc, _ := newSwapFixture()

	_, err := svc.Create(context.Background(), "alice", "alice", "l-alice", "l-bob")
	assert.ErrorIs(t, err, ErrSwapWithSelf)
}

func TestSwapCreate_UnknownParty(t *testing.T) {
	svc, _ := newSwapFixture()

	_, err := svc.Create(context.Background(), "alice", "nobody", "l-alice", "l-bob")
	assert.ErrorIs(t, err, ErrSwapParty)
}

func TestSwapCreate_UnknownListing(t *testing.T) {
	svc, _ := newSwapFixture()

	_, err := svc.Create(context.Background(), "alice", "bob", "l-missing", "l-bob")
	assert.ErrorIs(t, err, ErrSwapItem)
}

func TestSwapCreate_ListingOwnedByWrongParty(t *testing.T) {
	svc, _ := newSwapFixture()

	// alice offers bob's listing
	_, err := svc.Create(context.Background(), "alice", "bob", "l-bob", "l-alice")
	assert.ErrorIs(t, err, ErrNotItemOwner)
}

func TestSwapApprove(t *testing.T) {
	svc, repo := newSwapFixture()
	created, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")
	require.NoError(t, err)

	s, err := svc.Approve(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SwapApproved, s.Status)
	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, entity.SwapApproved, stored.Status)
}

func TestSwapApprove_Idempotent(t *testing.T) {
	svc, _ := newSwapFixture()
	created, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	// A repeated approve is a no-op success.
	s, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.SwapApproved, s.Status)
}

func TestSwapReject_AfterApproveRefused(t *testing.T) {
	svc, _ := newSwapFixture()
	created, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSwapApprove_AfterRejectRefused(t *testing.T) {
	svc, _ := newSwapFixture()
	created, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSwapApprove_Missing(t *testing.T) {
	svc, _ := newSwapFixture()

	_, err := svc.Approve(context.Background(), "no-such-swap")
	assert.ErrorIs(t, err, ErrSwapNotFound)
}

func TestSwapListForUser(t *testing.T) {
	svc, _ := newSwapFixture()
	_, err := svc.Create(context.Background(), "alice", "bob", "l-alice", "l-bob")
	require.NoError(t, err)

	mine, err := svc.ListForUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := svc.ListForUser(context.Background(), "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}
