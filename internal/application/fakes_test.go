package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.New().String()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

type fakeListingRepo struct {
	listings map[string]*entity.Listing
}

func newFakeListingRepo(listings ...*entity.Listing) *fakeListingRepo {
	f := &fakeListingRepo{listings: map[string]*entity.Listing{}}
	for _, l := range listings {
		f.listings[l.ID] = l
	}
	return f
}

func (f *fakeListingRepo) Create(_ context.Context, l *entity.Listing) error {
	l.ID = uuid.New().String()
	f.listings[l.ID] = l
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return l, nil
}

func (f *fakeListingRepo) Search(_ context.Context, _ string) ([]entity.Listing, error) {
	out := make([]entity.Listing, 0, len(f.listings))
	for _, l := range f.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeListingRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range f.listings {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) Update(_ context.Context, l *entity.Listing) error {
	if _, ok := f.listings[l.ID]; !ok {
		return repository.ErrNotFound
	}
	f.listings[l.ID] = l
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]*entity.Review{}}
}

func (f *fakeReviewRepo) Create(_ context.Context, r *entity.Review) error {
	r.ID = uuid.New().String()
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r, nil
}

func (f *fakeReviewRepo) ListByListing(_ context.Context, listingID string) ([]entity.Review, error) {
	var out []entity.Review
	for _, r := range f.reviews {
		if r.ListingID == listingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeSwapRepo struct {
	swaps map[string]*entity.Swap
}

func newFakeSwapRepo(swaps ...*entity.Swap) *fakeSwapRepo {
	f := &fakeSwapRepo{swaps: map[string]*entity.Swap{}}
	for _, s := range swaps {
		f.swaps[s.ID] = s
	}
	return f
}

func (f *fakeSwapRepo) Create(_ context.Context, s *entity.Swap) error {
	s.ID = uuid.New().String()
	f.swaps[s.ID] = s
	return nil
}

func (f *fakeSwapRepo) GetByID(_ context.Context, id string) (*entity.Swap, error) {
	s, ok := f.swaps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeSwapRepo) ListForUser(_ context.Context, userID string) ([]entity.SwapDetail, error) {
	var out []entity.SwapDetail
	for _, s := range f.swaps {
		if s.Involves(userID) {
			out = append(out, entity.SwapDetail{Swap: *s})
		}
	}
	return out, nil
}

func (f *fakeSwapRepo) ListForUsers(_ context.Context, userIDs []string) ([]entity.Swap, error) {
	var out []entity.Swap
	for _, s := range f.swaps {
		for _, id := range userIDs {
			if s.Involves(id) {
				out = append(out, *s)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSwapRepo) ListAll(_ context.Context) ([]entity.SwapDetail, error) {
	var out []entity.SwapDetail
	for _, s := range f.swaps {
		out = append(out, entity.SwapDetail{Swap: *s})
	}
	return out, nil
}

// UpdateStatus mirrors the conditional SQL: only a pending row changes.
func (f *fakeSwapRepo) UpdateStatus(_ context.Context, id, status string) (bool, error) {
	s, ok := f.swaps[id]
	if !ok || s.Status != entity.SwapPending {
		return false, nil
	}
	s.Status = status
	return true, nil
}

func (f *fakeSwapRepo) CountPendingForListing(_ context.Context, listingID string) (int, error) {
	n := 0
	for _, s := range f.swaps {
		if s.Status == entity.SwapPending && (s.SenderItemID == listingID || s.ReceiverItemID == listingID) {
			n++
		}
	}
	return n, nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (f *fakeItemRepo) Create(_ context.Context, i *entity.Item) error {
	i.ID = uuid.New().String()
	f.items[i.ID] = i
	return nil
}

func (f *fakeItemRepo) ListByUser(_ context.Context, userID string) ([]entity.Item, error) {
	var out []entity.Item
	for _, i := range f.items {
		if i.UserID == userID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, i *entity.Item) (bool, error) {
	existing, ok := f.items[i.ID]
	if !ok || existing.UserID != i.UserID {
		return false, nil
	}
	f.items[i.ID] = i
	return true, nil
}

var (
	_ repository.ItemRepository    = (*fakeItemRepo)(nil)
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.ListingRepository = (*fakeListingRepo)(nil)
	_ repository.ReviewRepository  = (*fakeReviewRepo)(nil)
	_ repository.SwapRepository    = (*fakeSwapRepo)(nil)
)
