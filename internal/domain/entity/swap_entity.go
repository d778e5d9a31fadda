package entity

import "time"

// Swap statuses. A swap starts pending and resolves to exactly one of the
// terminal states; terminal states never transition again.
const (
	SwapPending  = "pending"
	SwapApproved = "approved"
	SwapRejected = "rejected"
)

// Swap is a proposed exchange of two listings between two users. Only the
// status field is mutable after creation.
type Swap struct {
	ID             string
	SenderID       string
	ReceiverID     string
	SenderItemID   string
	ReceiverItemID string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Resolved reports whether the swap reached a terminal state.
func (s *Swap) Resolved() bool {
	return s.Status == SwapApproved || s.Status == SwapRejected
}

// Involves reports whether the given user is a party to the swap.
func (s *Swap) Involves(userID string) bool {
	return s.SenderID == userID || s.ReceiverID == userID
}

// SwapDetail is a swap hydrated with party usernames and listing titles for
// dashboard display.
type SwapDetail struct {
	Swap
	SenderName        string
	ReceiverName      string
	SenderItemTitle   string
	ReceiverItemTitle string
}
