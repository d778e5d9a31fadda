package entity

import "time"

// ItemAvailable is the default status for a newly uploaded item.
const ItemAvailable = "available"

// Item is a user's standalone inventory record. It is a separate bucket from
// the listing/swap graph and carries no referential link into it.
type Item struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Size        string
	Condition   string
	ImageURL    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
