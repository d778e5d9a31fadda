package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

func newSwapMock(t *testing.T) (pgxmock.PgxPoolIface, *SwapRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewSwapRepository(mock)
}

func TestSwapUpdateStatus_PendingRowFlips(t *testing.T) {
	mock, repo := newSwapMock(t)

	mock.ExpectExec("UPDATE swaps SET status").
		WithArgs(entity.SwapApproved, "s1", entity.SwapPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	changed, err := repo.UpdateStatus(context.Background(), "s1", entity.SwapApproved)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapUpdateStatus_ResolvedRowUntouched(t *testing.T) {
	mock, repo := newSwapMock(t)

	mock.ExpectExec("UPDATE swaps SET status").
		WithArgs(entity.SwapRejected, "s1", entity.SwapPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	changed, err := repo.UpdateStatus(context.Background(), "s1", entity.SwapRejected)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapGetByID(t *testing.T) {
	mock, repo := newSwapMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "sender_id", "receiver_id", "sender_item_id", "receiver_item_id",
		"status", "created_at", "updated_at",
	}).AddRow("s1", "alice", "bob", "l1", "l2", entity.SwapPending, now, now)
	mock.ExpectQuery("SELECT (.+) FROM swaps").WithArgs("s1").WillReturnRows(rows)

	s, err := repo.GetByID(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "alice", s.SenderID)
	assert.Equal(t, entity.SwapPending, s.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapGetByID_NotFound(t *testing.T) {
	mock, repo := newSwapMock(t)

	mock.ExpectQuery("SELECT (.+) FROM swaps").WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "sender_id", "receiver_id", "sender_item_id", "receiver_item_id",
			"status", "created_at", "updated_at",
		}))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapCountPendingForListing(t *testing.T) {
	mock, repo := newSwapMock(t)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(entity.SwapPending, "l1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountPendingForListing(context.Background(), "l1")

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapListAll_HydratesDetails(t *testing.T) {
	mock, repo := newSwapMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "sender_id", "receiver_id", "sender_item_id", "receiver_item_id",
		"status", "created_at", "updated_at",
		"sender_name", "receiver_name", "sender_item_title", "receiver_item_title",
	}).AddRow("s1", "alice", "bob", "l1", "l2", entity.SwapApproved, now, now,
		"alice", "bob", "denim jacket", "")
	mock.ExpectQuery("SELECT s.id, s.sender_id").WillReturnRows(rows)

	details, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "alice", details[0].SenderName)
	// Listing deleted after resolution leaves an empty title.
	assert.Equal(t, "", details[0].ReceiverItemTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}
