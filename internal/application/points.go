package application

import "github.com/jeel735/rewear/internal/domain/entity"

// Point accrual rules. Balances are never persisted; they are recomputed from
// swap history on every read so an admin decision made between two requests is
// always reflected.
const (
	BasePoints         = 1000
	ApprovedSwapPoints = 200
	RejectedSwapPoints = 100
)

// ComputeBalance derives a user's point balance from their swap history.
// Every swap the user participates in contributes by final status only, so the
// result is independent of ordering and of how many times a swap was read.
func ComputeBalance(userID string, swaps []entity.Swap) int {
	balance := BasePoints
	for i := range swaps {
		if !swaps[i].Involves(userID) {
			continue
		}
		switch swaps[i].Status {
		case entity.SwapApproved:
			balance += ApprovedSwapPoints
		case entity.SwapRejected:
			balance += RejectedSwapPoints
		}
	}
	return balance
}

// BalancesFor computes balances for a set of users over one shared swap slice.
// The directory uses it to price every listing owner in a single pass.
func BalancesFor(userIDs []string, swaps []entity.Swap) map[string]int {
	balances := make(map[string]int, len(userIDs))
	for _, id := range userIDs {
		balances[id] = ComputeBalance(id, swaps)
	}
	return balances
}
