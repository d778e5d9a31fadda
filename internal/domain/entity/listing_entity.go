package entity

import "time"

// ListingImage is one uploaded image reference. Stored as a jsonb array on the
// listing row, mirroring the {url, filename} pairs the storage layer returns.
type ListingImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Listing is a postable clothing item available for swap.
type Listing struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Price       float64
	Location    string
	Country     string
	Category    string
	Type        string
	Size        string
	Condition   string
	Tags        []string
	Images      []ListingImage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListingOwner is the owner identity attached to directory results. Points is
// derived from swap history at read time and is never persisted.
type ListingOwner struct {
	ID       string
	Username string
	Points   int
}
