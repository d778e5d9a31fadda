package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/helpers"
	"github.com/jeel735/rewear/pkg/response"
	"github.com/jeel735/rewear/pkg/validation"
)

type UserHandler struct {
	Svc      *application.UserService
	Listings *application.ListingService
	Items    *application.ItemService
	Swaps    *application.SwapService
	Logger   *logrus.Logger
	Cookies  *helpers.Manager
}

func NewUserHandler(svc *application.UserService, listings *application.ListingService, items *application.ItemService, swaps *application.SwapService, logger *logrus.Logger, cookies *helpers.Manager) *UserHandler {
	return &UserHandler{Svc: svc, Listings: listings, Items: items, Swaps: swaps, Logger: logger, Cookies: cookies}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type updateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=32"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, "email or username already in use", nil)
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create account", nil)
		return
	}
	response.OK(c, http.StatusCreated, userView(u), "account created")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, application.ErrRoleMismatch) {
			response.Fail(c, http.StatusForbidden, "selected role does not match account", nil)
			return
		}
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, userView(u), "login successful")
}

func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Fail(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed")
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	h.Svc.Logout(c.Request.Context(), uid)
	h.Cookies.Clear(c)
	response.OK(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.OK(c, http.StatusOK, userView(u), "profile")
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{Username: req.Username, Email: req.Email})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, "email or username already in use", nil)
			return
		}
		response.Fail(c, http.StatusBadRequest, "failed to update profile", nil)
		return
	}
	response.OK(c, http.StatusOK, userView(u), "profile updated")
}

// Dashboard assembles the signed-in user's home view: profile, point balance,
// own listings, inventory items, and swap history.
func (h *UserHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	uid := c.GetString(middleware.CtxUserIDKey)

	u, err := h.Svc.GetProfile(ctx, uid)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "user not found", nil)
		return
	}

	details, err := h.Swaps.ListForUser(ctx, uid)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard swaps failed")
		response.Fail(c, http.StatusInternalServerError, "failed to load dashboard", nil)
		return
	}
	raw := make([]entity.Swap, 0, len(details))
	for _, d := range details {
		raw = append(raw, d.Swap)
	}

	listings, err := h.Listings.ListByOwner(ctx, uid)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard listings failed")
		response.Fail(c, http.StatusInternalServerError, "failed to load dashboard", nil)
		return
	}
	items, err := h.Items.ListForUser(ctx, uid)
	if err != nil {
		h.Logger.WithError(err).Error("dashboard items failed")
		response.Fail(c, http.StatusInternalServerError, "failed to load dashboard", nil)
		return
	}

	listingViews := make([]gin.H, 0, len(listings))
	for i := range listings {
		listingViews = append(listingViews, listingView(&listings[i]))
	}
	itemViews := make([]gin.H, 0, len(items))
	for i := range items {
		itemViews = append(itemViews, itemView(&items[i]))
	}

	response.OK(c, http.StatusOK, gin.H{
		"user":     userView(u),
		"points":   application.ComputeBalance(uid, raw),
		"listings": listingViews,
		"items":    itemViews,
		"swaps":    swapDetailViews(details),
	}, "dashboard")
}

// SearchUsers backs the swap form's partner picker.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q, 10)
	if err != nil {
		h.Logger.WithError(err).Warn("user search failed")
		response.Fail(c, http.StatusInternalServerError, "search unavailable", nil)
		return
	}
	response.OK(c, http.StatusOK, hits, "users")
}
