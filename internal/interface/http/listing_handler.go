package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/response"
	"github.com/jeel735/rewear/pkg/validation"
)

const maxListingImages = 6

type ListingHandler struct {
	Svc    *application.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *application.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

// listingForm binds both multipart and urlencoded listing submissions.
type listingForm struct {
	Title       string   `form:"title" binding:"required,min=2,max=120"`
	Description string   `form:"description" binding:"required,min=2"`
	Price       *float64 `form:"price" binding:"required,gte=0"`
	Location    string   `form:"location" binding:"required"`
	Country     string   `form:"country" binding:"required"`
	Category    string   `form:"category" binding:"required"`
	Type        string   `form:"type"`
	Size        string   `form:"size"`
	Condition   string   `form:"condition"`
	Tags        string   `form:"tags"`
}

func (f *listingForm) toInput() application.ListingInput {
	return application.ListingInput{
		Title:       f.Title,
		Description: f.Description,
		Price:       *f.Price,
		Location:    f.Location,
		Country:     f.Country,
		Category:    f.Category,
		Type:        f.Type,
		Size:        f.Size,
		Condition:   f.Condition,
		Tags:        f.Tags,
	}
}

func openUpload(fh *multipart.FileHeader) (*application.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	up := &application.ImageUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}
	return up, func() { _ = f.Close() }, nil
}

func (h *ListingHandler) Search(c *gin.Context) {
	results, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.Logger.WithError(err).Error("listing search failed")
		response.Fail(c, http.StatusInternalServerError, "failed to search listings", nil)
		return
	}
	views := make([]gin.H, 0, len(results))
	for _, r := range results {
		views = append(views, directoryView(r))
	}
	response.OK(c, http.StatusOK, views, "listings")
}

func (h *ListingHandler) Get(c *gin.Context) {
	detail, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrListingNotFound) {
			response.Fail(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("listing fetch failed")
		response.Fail(c, http.StatusInternalServerError, "failed to load listing", nil)
		return
	}
	response.OK(c, http.StatusOK, detailView(detail), "listing")
}

func (h *ListingHandler) Create(c *gin.Context) {
	var form listingForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var uploads []application.ImageUpload
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		files := mf.File["images"]
		if len(files) > maxListingImages {
			response.Fail(c, http.StatusBadRequest, "too many images, max "+strconv.Itoa(maxListingImages), nil)
			return
		}
		for _, fh := range files {
			up, closeFn, err := openUpload(fh)
			if err != nil {
				response.Fail(c, http.StatusBadRequest, "unreadable image "+fh.Filename, nil)
				return
			}
			defer closeFn()
			uploads = append(uploads, *up)
		}
	}

	uid := c.GetString(middleware.CtxUserIDKey)
	l, err := h.Svc.Create(c.Request.Context(), uid, form.toInput(), uploads)
	if err != nil {
		h.Logger.WithError(err).Error("listing create failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create listing", nil)
		return
	}
	response.OK(c, http.StatusCreated, listingView(l), "listing created")
}

func (h *ListingHandler) Update(c *gin.Context) {
	var form listingForm
	if err := c.ShouldBind(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var upload *application.ImageUpload
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		up, closeFn, err := openUpload(fh)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "unreadable image "+fh.Filename, nil)
			return
		}
		defer closeFn()
		upload = up
	}

	l, err := h.Svc.Update(c.Request.Context(), c.Param("id"), form.toInput(), upload)
	if err != nil {
		if errors.Is(err, application.ErrListingNotFound) {
			response.Fail(c, http.StatusNotFound, "listing not found", nil)
			return
		}
		h.Logger.WithError(err).Error("listing update failed")
		response.Fail(c, http.StatusInternalServerError, "failed to update listing", nil)
		return
	}
	response.OK(c, http.StatusOK, listingView(l), "listing updated")
}

func (h *ListingHandler) Delete(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrListingNotFound):
			response.Fail(c, http.StatusNotFound, "listing not found", nil)
		case errors.Is(err, application.ErrListingInSwap):
			response.Fail(c, http.StatusConflict, "listing is part of a pending swap", nil)
		default:
			h.Logger.WithError(err).Error("listing delete failed")
			response.Fail(c, http.StatusInternalServerError, "failed to delete listing", nil)
		}
		return
	}
	response.OK(c, http.StatusOK, gin.H{"deleted": true}, "listing deleted")
}
