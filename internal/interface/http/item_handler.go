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

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

type itemRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=120"`
	Description string `json:"description"`
	Size        string `json:"size"`
	Condition   string `json:"condition"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Status      string `json:"status" binding:"omitempty,oneof=available swapped retired"`
}

func (r *itemRequest) toInput() application.ItemInput {
	return application.ItemInput{
		Title:       r.Title,
		Description: r.Description,
		Size:        r.Size,
		Condition:   r.Condition,
		ImageURL:    r.ImageURL,
		Status:      r.Status,
	}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	item, err := h.Svc.Create(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		h.Logger.WithError(err).Error("item create failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create item", nil)
		return
	}
	response.OK(c, http.StatusCreated, itemView(item), "item created")
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.Svc.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Logger.WithError(err).Error("item list failed")
		response.Fail(c, http.StatusInternalServerError, "failed to list items", nil)
		return
	}
	views := make([]gin.H, 0, len(items))
	for i := range items {
		views = append(views, itemView(&items[i]))
	}
	response.OK(c, http.StatusOK, views, "items")
}

func (h *ItemHandler) Update(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	item, err := h.Svc.Update(c.Request.Context(), c.Param("id"), c.Param("itemId"), req.toInput())
	if err != nil {
		if errors.Is(err, application.ErrItemNotFound) {
			response.Fail(c, http.StatusNotFound, "item not found", nil)
			return
		}
		h.Logger.WithError(err).Error("item update failed")
		response.Fail(c, http.StatusInternalServerError, "failed to update item", nil)
		return
	}
	response.OK(c, http.StatusOK, itemView(item), "item updated")
}
