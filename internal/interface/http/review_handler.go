package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/response"
	"github.com/jeel735/rewear/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type reviewRequest struct {
	Comment string `json:"comment" binding:"required,min=1,max=2000"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	r, err := h.Svc.Create(c.Request.Context(), c.Param("id"), uid, req.Comment, req.Rating)
	if err != nil {
		if errors.Is(err, application.ErrListingNotFound) {
			response.Fail(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("review create failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create review", nil)
		return
	}
	response.OK(c, http.StatusCreated, reviewView(r), "review created")
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("reviewId")); err != nil {
		if errors.Is(err, application.ErrReviewNotFound) {
			response.Fail(c, http.StatusNotFound, "review not found", nil)
			return
		}
		h.Logger.WithError(err).Error("review delete failed")
		response.Fail(c, http.StatusInternalServerError, "failed to delete review", nil)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "review deleted")
}
