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

func listingRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "owner_id", "title", "description", "price", "location", "country",
		"category", "type", "size", "condition", "tags", "images", "created_at", "updated_at",
	})
}

func newListingMock(t *testing.T) (pgxmock.PgxPoolIface, *ListingRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewListingRepository(mock)
}

func TestListingSearch_EmptyQueryListsAll(t *testing.T) {
	mock, repo := newListingMock(t)
	now := time.Now()

	rows := listingRows().
		AddRow("l1", "alice", "denim jacket", "worn twice", 25.0, "Oslo", "Norway",
			"outerwear", "jacket", "M", "good", []string{"denim"}, []byte(`[]`), now, now)
	mock.ExpectQuery("SELECT (.+) FROM listings ORDER BY created_at DESC").WillReturnRows(rows)

	listings, err := repo.Search(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "denim jacket", listings[0].Title)
	assert.Equal(t, []string{"denim"}, listings[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingSearch_PatternMatchesSubstring(t *testing.T) {
	mock, repo := newListingMock(t)

	mock.ExpectQuery("title ILIKE").WithArgs("%coat%").WillReturnRows(listingRows())

	listings, err := repo.Search(context.Background(), "coat")

	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingGetByID_UnmarshalsImages(t *testing.T) {
	mock, repo := newListingMock(t)
	now := time.Now()

	rows := listingRows().
		AddRow("l1", "alice", "denim jacket", "", 0.0, "Oslo", "Norway",
			"", "", "", "", []string{}, []byte(`[{"url":"https://cdn/x.jpg","filename":"x.jpg"}]`), now, now)
	mock.ExpectQuery("SELECT (.+) FROM listings WHERE id").WithArgs("l1").WillReturnRows(rows)

	l, err := repo.GetByID(context.Background(), "l1")

	require.NoError(t, err)
	require.Len(t, l.Images, 1)
	assert.Equal(t, entity.ListingImage{URL: "https://cdn/x.jpg", Filename: "x.jpg"}, l.Images[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingDelete_NotFound(t *testing.T) {
	mock, repo := newListingMock(t)

	mock.ExpectExec("DELETE FROM listings").WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
