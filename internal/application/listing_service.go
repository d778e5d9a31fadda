package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/domain/entity"
	repo "github.com/jeel735/rewear/internal/domain/repository"
	"github.com/jeel735/rewear/pkg/helpers"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingInSwap   = errors.New("listing is part of a pending swap")
)

// DirectoryListing is a search result: the listing plus its owner's identity
// and live point balance.
type DirectoryListing struct {
	entity.Listing
	Owner entity.ListingOwner
}

// ListingDetail is the show-page shape: listing, owner, reviews with author
// usernames, and geocoded coordinates for the location.
type ListingDetail struct {
	entity.Listing
	Owner       entity.ListingOwner
	Reviews     []ReviewWithAuthor
	Coordinates [2]float64
}

type ReviewWithAuthor struct {
	entity.Review
	AuthorName string
}

// ListingInput carries the validated create/update fields. Tags arrive as the
// form's comma-separated string and are normalized here.
type ListingInput struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Country     string
	Category    string
	Type        string
	Size        string
	Condition   string
	Tags        string
}

// ImageUpload is one incoming image file.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

type ListingService struct {
	Listings  repo.ListingRepository
	Reviews   repo.ReviewRepository
	Users     repo.UserRepository
	Swaps     repo.SwapRepository
	GCS       *storage.Client
	GCSBucket string
	Geocoder  *helpers.Geocoder
	Logger    *logrus.Logger
}

func NewListingService(listings repo.ListingRepository, reviews repo.ReviewRepository, users repo.UserRepository, swaps repo.SwapRepository, gcs *storage.Client, gcsBucket string, geocoder *helpers.Geocoder, logger *logrus.Logger) *ListingService {
	return &ListingService{
		Listings:  listings,
		Reviews:   reviews,
		Users:     users,
		Swaps:     swaps,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Geocoder:  geocoder,
		Logger:    logger,
	}
}

// Search runs the directory query and attaches each owner's identity and
// freshly computed balance. One swap query covers every owner in the result.
func (s *ListingService) Search(ctx context.Context, query string) ([]DirectoryListing, error) {
	listings, err := s.Listings.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]string, 0, len(listings))
	seen := make(map[string]bool, len(listings))
	for i := range listings {
		if !seen[listings[i].OwnerID] {
			seen[listings[i].OwnerID] = true
			ownerIDs = append(ownerIDs, listings[i].OwnerID)
		}
	}

	swaps, err := s.Swaps.ListForUsers(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	balances := BalancesFor(ownerIDs, swaps)

	owners := make(map[string]*entity.User, len(ownerIDs))
	for _, id := range ownerIDs {
		u, err := s.Users.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				continue
			}
			return nil, err
		}
		owners[id] = u
	}

	out := make([]DirectoryListing, 0, len(listings))
	for i := range listings {
		dl := DirectoryListing{Listing: listings[i]}
		if u := owners[listings[i].OwnerID]; u != nil {
			dl.Owner = entity.ListingOwner{ID: u.ID, Username: u.Username, Points: balances[u.ID]}
		}
		out = append(out, dl)
	}
	return out, nil
}

// Get loads one listing with owner, reviews, and geocoded coordinates.
// Geocoding failures degrade to [0,0] rather than failing the page.
func (s *ListingService) Get(ctx context.Context, id string) (*ListingDetail, error) {
	listing, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	detail := &ListingDetail{Listing: *listing}

	if owner, err := s.Users.GetByID(ctx, listing.OwnerID); err == nil {
		swaps, err := s.Swaps.ListForUsers(ctx, []string{owner.ID})
		if err != nil {
			return nil, err
		}
		detail.Owner = entity.ListingOwner{
			ID:       owner.ID,
			Username: owner.Username,
			Points:   ComputeBalance(owner.ID, swaps),
		}
	}

	reviews, err := s.Reviews.ListByListing(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, rev := range reviews {
		rwa := ReviewWithAuthor{Review: rev}
		if author, err := s.Users.GetByID(ctx, rev.AuthorID); err == nil {
			rwa.AuthorName = author.Username
		}
		detail.Reviews = append(detail.Reviews, rwa)
	}

	if s.Geocoder != nil {
		coords, err := s.Geocoder.Forward(ctx, listing.Location)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("location", listing.Location).Warn("geocode failed")
			}
		} else {
			detail.Coordinates = coords
		}
	}

	return detail, nil
}

// Create persists a new listing for ownerID, uploading images to GCS first so
// a storage failure never leaves a half-built row.
func (s *ListingService) Create(ctx context.Context, ownerID string, in ListingInput, images []ImageUpload) (*entity.Listing, error) {
	refs, err := s.uploadImages(ctx, ownerID, images)
	if err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		Country:     in.Country,
		Category:    in.Category,
		Type:        in.Type,
		Size:        in.Size,
		Condition:   in.Condition,
		Tags:        NormalizeTags(in.Tags),
		Images:      refs,
	}
	if err := s.Listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update rewrites the mutable fields. Ownership is enforced by the route guard
// before this runs. A replacement image, when present, supersedes the old set.
func (s *ListingService) Update(ctx context.Context, id string, in ListingInput, image *ImageUpload) (*entity.Listing, error) {
	listing, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	listing.Title = in.Title
	listing.Description = in.Description
	listing.Price = in.Price
	listing.Location = in.Location
	listing.Country = in.Country
	listing.Category = in.Category
	listing.Type = in.Type
	listing.Size = in.Size
	listing.Condition = in.Condition
	listing.Tags = NormalizeTags(in.Tags)

	if image != nil {
		refs, err := s.uploadImages(ctx, listing.OwnerID, []ImageUpload{*image})
		if err != nil {
			return nil, err
		}
		listing.Images = refs
	}

	if err := s.Listings.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Delete removes a listing. Refused while a pending swap still references it,
// so an in-flight swap never gains a dangling item.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	pending, err := s.Swaps.CountPendingForListing(ctx, id)
	if err != nil {
		return err
	}
	if pending > 0 {
		return ErrListingInSwap
	}
	if err := s.Listings.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	return nil
}

// ListByOwner returns a user's own listings for their dashboard.
func (s *ListingService) ListByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	return s.Listings.ListByOwner(ctx, ownerID)
}

func (s *ListingService) uploadImages(ctx context.Context, ownerID string, images []ImageUpload) ([]entity.ListingImage, error) {
	if len(images) == 0 {
		return nil, nil
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}
	refs := make([]entity.ListingImage, 0, len(images))
	for _, img := range images {
		id := uuid.NewString()
		ext := strings.ToLower(filepath.Ext(img.Filename))
		objectPath := filepath.ToSlash(filepath.Join("listings", ownerID, id+ext))
		url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, img.ContentType, img.Reader)
		if err != nil {
			return nil, err
		}
		refs = append(refs, entity.ListingImage{URL: url, Filename: id + ext})
	}
	return refs, nil
}

// NormalizeTags splits a comma-separated tag string into a trimmed, ordered
// list, dropping empties. Order is preserved as typed.
func NormalizeTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
