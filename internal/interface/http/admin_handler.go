package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/pkg/response"
)

// AdminHandler serves the moderation surface: the swap queue and the
// approve/reject decisions.
type AdminHandler struct {
	Swaps  *application.SwapService
	Logger *logrus.Logger
}

func NewAdminHandler(swaps *application.SwapService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Swaps: swaps, Logger: logger}
}

// ListSwaps returns every swap with party names and listing titles, pending
// first in creation order.
func (h *AdminHandler) ListSwaps(c *gin.Context) {
	details, err := h.Swaps.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("admin swap list failed")
		response.Fail(c, http.StatusInternalServerError, "failed to list swaps", nil)
		return
	}
	response.OK(c, http.StatusOK, swapDetailViews(details), "swaps")
}

// Dashboard returns queue counts alongside the full swap list.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	details, err := h.Swaps.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("admin dashboard failed")
		response.Fail(c, http.StatusInternalServerError, "failed to load dashboard", nil)
		return
	}
	var pending, approved, rejected int
	for _, d := range details {
		switch d.Status {
		case entity.SwapPending:
			pending++
		case entity.SwapApproved:
			approved++
		case entity.SwapRejected:
			rejected++
		}
	}
	response.OK(c, http.StatusOK, gin.H{
		"counts": gin.H{
			"pending":  pending,
			"approved": approved,
			"rejected": rejected,
			"total":    len(details),
		},
		"swaps": swapDetailViews(details),
	}, "admin dashboard")
}

func (h *AdminHandler) Approve(c *gin.Context) {
	h.decide(c, h.Swaps.Approve, "swap approved")
}

func (h *AdminHandler) Reject(c *gin.Context) {
	h.decide(c, h.Swaps.Reject, "swap rejected")
}

func (h *AdminHandler) decide(c *gin.Context, fn func(ctx context.Context, id string) (*entity.Swap, error), msg string) {
	s, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSwapNotFound):
			response.Fail(c, http.StatusNotFound, "swap not found", nil)
		case errors.Is(err, application.ErrInvalidTransition):
			response.Fail(c, http.StatusConflict, "swap already resolved", nil)
		default:
			h.Logger.WithError(err).Error("swap decision failed")
			response.Fail(c, http.StatusInternalServerError, "failed to resolve swap", nil)
		}
		return
	}
	response.OK(c, http.StatusOK, swapView(s), msg)
}
