package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/pkg/response"
	"github.com/jeel735/rewear/pkg/validation"
)

type SwapHandler struct {
	Svc    *application.SwapService
	Logger *logrus.Logger
}

func NewSwapHandler(svc *application.SwapService, logger *logrus.Logger) *SwapHandler {
	return &SwapHandler{Svc: svc, Logger: logger}
}

type createSwapRequest struct {
	ReceiverID     string `json:"receiver_id" binding:"required,uuid"`
	SenderItemID   string `json:"sender_item_id" binding:"required,uuid"`
	ReceiverItemID string `json:"receiver_item_id" binding:"required,uuid"`
}

func (h *SwapHandler) Create(c *gin.Context) {
	var req createSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	senderID := c.Param("id")
	s, err := h.Svc.Create(c.Request.Context(), senderID, req.ReceiverID, req.SenderItemID, req.ReceiverItemID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrSwapWithSelf):
			response.Fail(c, http.StatusBadRequest, "cannot swap with yourself", nil)
		case errors.Is(err, application.ErrSwapParty):
			response.Fail(c, http.StatusNotFound, "swap partner not found", nil)
		case errors.Is(err, application.ErrSwapItem):
			response.Fail(c, http.StatusNotFound, "swap listing not found", nil)
		case errors.Is(err, application.ErrNotItemOwner):
			response.Fail(c, http.StatusForbidden, "listing does not belong to its party", nil)
		default:
			h.Logger.WithError(err).Error("swap create failed")
			response.Fail(c, http.StatusInternalServerError, "failed to create swap", nil)
		}
		return
	}
	response.OK(c, http.StatusCreated, swapView(s), "swap proposed")
}

// List returns the swaps the path user participates in, either side.
func (h *SwapHandler) List(c *gin.Context) {
	details, err := h.Svc.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("swap list failed")
		response.Fail(c, http.StatusInternalServerError, "failed to list swaps", nil)
		return
	}
	response.OK(c, http.StatusOK, swapDetailViews(details), "swaps")
}
