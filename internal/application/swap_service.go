package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/domain/entity"
	repo "github.com/jeel735/rewear/internal/domain/repository"
	"github.com/jeel735/rewear/pkg/helpers"
	"github.com/jeel735/rewear/pkg/mailer"
)

var (
	ErrSwapNotFound      = errors.New("swap not found")
	ErrSwapParty         = errors.New("swap party not found")
	ErrSwapItem          = errors.New("swap item not found")
	ErrNotItemOwner      = errors.New("listing does not belong to that party")
	ErrSwapWithSelf      = errors.New("cannot swap with yourself")
	ErrInvalidTransition = errors.New("swap already resolved")
)

// SwapService owns the swap lifecycle: pending on create, resolved exactly once
// by an admin to approved or rejected. It never touches a stored balance;
// points are always recomputed from status (see ComputeBalance).
type SwapService struct {
	Swaps    repo.SwapRepository
	Users    repo.UserRepository
	Listings repo.ListingRepository
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewSwapService(swaps repo.SwapRepository, users repo.UserRepository, listings repo.ListingRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *SwapService {
	return &SwapService{Swaps: swaps, Users: users, Listings: listings, Pub: pub, Logger: logger}
}

// Create proposes a swap. All four ids must resolve, and each listing must
// belong to the party offering it.
func (s *SwapService) Create(ctx context.Context, senderID, receiverID, senderItemID, receiverItemID string) (*entity.Swap, error) {
	if senderID == receiverID {
		return nil, ErrSwapWithSelf
	}
	if _, err := s.Users.GetByID(ctx, senderID); err != nil {
		return nil, partyErr(err)
	}
	if _, err := s.Users.GetByID(ctx, receiverID); err != nil {
		return nil, partyErr(err)
	}

	senderItem, err := s.Listings.GetByID(ctx, senderItemID)
	if err != nil {
		return nil, itemErr(err)
	}
	receiverItem, err := s.Listings.GetByID(ctx, receiverItemID)
	if err != nil {
		return nil, itemErr(err)
	}
	if senderItem.OwnerID != senderID || receiverItem.OwnerID != receiverID {
		return nil, ErrNotItemOwner
	}

	swap := &entity.Swap{
		SenderID:       senderID,
		ReceiverID:     receiverID,
		SenderItemID:   senderItemID,
		ReceiverItemID: receiverItemID,
		Status:         entity.SwapPending,
	}
	if err := s.Swaps.Create(ctx, swap); err != nil {
		return nil, err
	}
	return swap, nil
}

// Approve resolves a pending swap to approved. Approving an already-approved
// swap is a no-op; approving a rejected one is an invalid transition.
func (s *SwapService) Approve(ctx context.Context, id string) (*entity.Swap, error) {
	return s.resolve(ctx, id, entity.SwapApproved)
}

// Reject resolves a pending swap to rejected, with the mirrored rules.
func (s *SwapService) Reject(ctx context.Context, id string) (*entity.Swap, error) {
	return s.resolve(ctx, id, entity.SwapRejected)
}

func (s *SwapService) resolve(ctx context.Context, id, status string) (*entity.Swap, error) {
	changed, err := s.Swaps.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	swap, err := s.Swaps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, err
	}

	if !changed {
		// The conditional update lost: the swap was already resolved. Repeating
		// the same decision is idempotent; flipping it is refused.
		if swap.Status != status {
			return nil, ErrInvalidTransition
		}
		return swap, nil
	}

	s.notifyDecision(ctx, swap)
	return swap, nil
}

// ListForUser returns every swap the user participates in, hydrated for
// dashboard display. Callers partition by Resolved().
func (s *SwapService) ListForUser(ctx context.Context, userID string) ([]entity.SwapDetail, error) {
	return s.Swaps.ListForUser(ctx, userID)
}

// ListAll returns every swap in the system for the admin dashboard.
func (s *SwapService) ListAll(ctx context.Context) ([]entity.SwapDetail, error) {
	return s.Swaps.ListAll(ctx)
}

// notifyDecision publishes decision emails to both parties, best effort.
func (s *SwapService) notifyDecision(ctx context.Context, swap *entity.Swap) {
	if s.Pub == nil {
		return
	}
	for _, partyID := range []string{swap.SenderID, swap.ReceiverID} {
		u, err := s.Users.GetByID(ctx, partyID)
		if err != nil {
			continue
		}
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateSwapDecision,
			Data: map[string]any{
				"Name":   u.Username,
				"SwapID": swap.ID,
				"Status": swap.Status,
			},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("swap_id", swap.ID).Warn("publish swap decision email failed")
		}
	}
}

func partyErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrSwapParty
	}
	return err
}

func itemErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrSwapItem
	}
	return err
}
