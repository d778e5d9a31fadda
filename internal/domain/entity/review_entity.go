package entity

import "time"

// Review is a user's review of a listing. Rating is an integer 1..5.
type Review struct {
	ID        string
	ListingID string
	AuthorID  string
	Comment   string
	Rating    int
	CreatedAt time.Time
}
