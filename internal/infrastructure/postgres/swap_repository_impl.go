package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

type SwapRepository struct {
	db Querier
}

func NewSwapRepository(db Querier) *SwapRepository {
	return &SwapRepository{db: db}
}

func (r *SwapRepository) Create(ctx context.Context, s *entity.Swap) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO swaps (sender_id, receiver_id, sender_item_id, receiver_item_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, s.SenderID, s.ReceiverID, s.SenderItemID, s.ReceiverItemID, s.Status)

	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SwapRepository) GetByID(ctx context.Context, id string) (*entity.Swap, error) {
	s := &entity.Swap{}

	row := r.db.QueryRow(ctx, `
		SELECT id, sender_id, receiver_id, sender_item_id, receiver_item_id, status,
			created_at, updated_at
		FROM swaps
		WHERE id = $1
	`, id)

	if err := row.Scan(&s.ID, &s.SenderID, &s.ReceiverID, &s.SenderItemID,
		&s.ReceiverItemID, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return s, nil
}

// detailQuery joins party usernames and listing titles. Listing titles use a
// left join: resolved swaps may reference listings deleted since.
const detailQuery = `
	SELECT s.id, s.sender_id, s.receiver_id, s.sender_item_id, s.receiver_item_id,
		s.status, s.created_at, s.updated_at,
		su.username, ru.username,
		COALESCE(sl.title, ''), COALESCE(rl.title, '')
	FROM swaps s
	JOIN users su ON su.id = s.sender_id
	JOIN users ru ON ru.id = s.receiver_id
	LEFT JOIN listings sl ON sl.id = s.sender_item_id
	LEFT JOIN listings rl ON rl.id = s.receiver_item_id`

func (r *SwapRepository) ListForUser(ctx context.Context, userID string) ([]entity.SwapDetail, error) {
	rows, err := r.db.Query(ctx, detailQuery+`
		WHERE s.sender_id = $1 OR s.receiver_id = $1
		ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list swaps for user: %w", err)
	}
	defer rows.Close()

	return collectSwapDetails(rows)
}

func (r *SwapRepository) ListAll(ctx context.Context) ([]entity.SwapDetail, error) {
	rows, err := r.db.Query(ctx, detailQuery+` ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all swaps: %w", err)
	}
	defer rows.Close()

	return collectSwapDetails(rows)
}

// ListForUsers returns every swap involving any of the given users. Used by the
// directory to compute owner balances in one round trip.
func (r *SwapRepository) ListForUsers(ctx context.Context, userIDs []string) ([]entity.Swap, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, sender_item_id, receiver_item_id, status,
			created_at, updated_at
		FROM swaps
		WHERE sender_id = ANY($1) OR receiver_id = ANY($1)
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("list swaps for users: %w", err)
	}
	defer rows.Close()

	var swaps []entity.Swap
	for rows.Next() {
		var s entity.Swap
		if err := rows.Scan(&s.ID, &s.SenderID, &s.ReceiverID, &s.SenderItemID,
			&s.ReceiverItemID, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan swap row: %w", err)
		}
		swaps = append(swaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swap rows: %w", err)
	}
	return swaps, nil
}

// UpdateStatus resolves a swap, but only while it is still pending. The WHERE
// clause is the compare-and-swap guard against concurrent approve/reject.
func (r *SwapRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	res, err := r.db.Exec(ctx, `
		UPDATE swaps SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, status, id, entity.SwapPending)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *SwapRepository) CountPendingForListing(ctx context.Context, listingID string) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `
		SELECT COUNT(1) FROM swaps
		WHERE status = $1 AND (sender_item_id = $2 OR receiver_item_id = $2)
	`, entity.SwapPending, listingID)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending swaps for listing: %w", err)
	}
	return count, nil
}

func collectSwapDetails(rows pgx.Rows) ([]entity.SwapDetail, error) {
	var details []entity.SwapDetail
	for rows.Next() {
		var d entity.SwapDetail
		if err := rows.Scan(&d.ID, &d.SenderID, &d.ReceiverID, &d.SenderItemID,
			&d.ReceiverItemID, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.SenderName, &d.ReceiverName, &d.SenderItemTitle, &d.ReceiverItemTitle); err != nil {
			return nil, fmt.Errorf("scan swap detail row: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate swap detail rows: %w", err)
	}
	return details, nil
}

var _ repository.SwapRepository = (*SwapRepository)(nil)
