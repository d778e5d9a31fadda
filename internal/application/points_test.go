package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeel735/rewear/internal/domain/entity"
)

func TestComputeBalance_NoSwaps(t *testing.T) {
	assert.Equal(t, BasePoints, ComputeBalance("u1", nil))
}

func TestComputeBalance_PendingContributesNothing(t *testing.T) {
	swaps := []entity.Swap{
		{SenderID: "u1", ReceiverID: "u2", Status: entity.SwapPending},
	}
	assert.Equal(t, BasePoints, ComputeBalance("u1", swaps))
	assert.Equal(t, BasePoints, ComputeBalance("u2", swaps))
}

func TestComputeBalance_OneOfEach(t *testing.T) {
	swaps := []entity.Swap{
		{SenderID: "u1", ReceiverID: "u2", Status: entity.SwapApproved},
		{SenderID: "u3", ReceiverID: "u1", Status: entity.SwapRejected},
		{SenderID: "u1", ReceiverID: "u4", Status: entity.SwapPending},
	}
	assert.Equal(t, BasePoints+ApprovedSwapPoints+RejectedSwapPoints, ComputeBalance("u1", swaps))
}

func TestComputeBalance_IgnoresForeignSwaps(t *testing.T) {
	swaps := []entity.Swap{
		{SenderID: "u2", ReceiverID: "u3", Status: entity.SwapApproved},
		{SenderID: "u3", ReceiverID: "u2", Status: entity.SwapRejected},
	}
	assert.Equal(t, BasePoints, ComputeBalance("u1", swaps))
}

func TestComputeBalance_BothPartiesAccrue(t *testing.T) {
	swaps := []entity.Swap{
		{SenderID: "u1", ReceiverID: "u2", Status: entity.SwapApproved},
	}
	assert.Equal(t, BasePoints+ApprovedSwapPoints, ComputeBalance("u1", swaps))
	assert.Equal(t, BasePoints+ApprovedSwapPoints, ComputeBalance("u2", swaps))
}

func TestComputeBalance_OrderIndependent(t *testing.T) {
	a := []entity.Swap{
		{SenderID: "u1", ReceiverID: "u2", Status: entity.SwapApproved},
		{SenderID: "u1", ReceiverID: "u3", Status: entity.SwapRejected},
	}
	b := []entity.Swap{a[1], a[0]}
	assert.Equal(t, ComputeBalance("u1", a), ComputeBalance("u1", b))
}

func TestBalancesFor(t *testing.T) {
	swaps := []entity.Swap{
		{SenderID: "u1", ReceiverID: "u2", Status: entity.SwapApproved},
		{SenderID: "u2", ReceiverID: "u3", Status: entity.SwapRejected},
	}
	got := BalancesFor([]string{"u1", "u2", "u4"}, swaps)

	assert.Equal(t, BasePoints+ApprovedSwapPoints, got["u1"])
	assert.Equal(t, BasePoints+ApprovedSwapPoints+RejectedSwapPoints, got["u2"])
	assert.Equal(t, BasePoints, got["u4"])
	assert.NotContains(t, got, "u3")
}
