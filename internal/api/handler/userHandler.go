package handler

import (
	"errors"
	"net/http"
	"strconv"

	"foodgram/internal/api/dto"
	"foodgram/internal/api/middleware"
	"foodgram/internal/api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users    service.UserService
	subs     service.SubscriptionService
	imageURL func(ref string) string
}

func NewUserHandler(users service.UserService, subs service.SubscriptionService, imageURL func(ref string) string) *UserHandler {
	return &UserHandler{users: users, subs: subs, imageURL: imageURL}
}

func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := pagination(c)

	users, total, err := h.users.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	subscribed, err := h.subs.SubscribedSet(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromUserToResponse(u, subscribed[u.ID]))
	}
	c.JSON(http.StatusOK, dto.NewPage(out, total, page, pageSize))
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	isSubscribed, err := h.subs.IsSubscribed(c.Request.Context(), middleware.UserID(c), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromUserToResponse(*user, isSubscribed))
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetUserByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromUserToResponse(*user, false))
}

func (h *UserHandler) SetPassword(c *gin.Context) {
	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.users.SetPassword(c.Request.Context(), middleware.UserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "current password is wrong"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscribe follows an author and returns the author projection with their
// newest recipes, capped by ?recipes_limit.
func (h *UserHandler) Subscribe(c *gin.Context) {
	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	author, err := h.subs.Subscribe(c.Request.Context(), middleware.UserID(c), c.Param("id"), recipesLimit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrRelationExists):
			c.JSON(http.StatusConflict, gin.H{"error": "already subscribed"})
		case errors.Is(err, service.ErrSelfSubscription):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot subscribe to yourself"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.FromSubscribedAuthor(*author, h.imageURL))
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	if err := h.subs.Unsubscribe(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrRelationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not subscribed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscriptions lists the authors the acting user follows, with the same
// projection the subscribe endpoint returns.
func (h *UserHandler) Subscriptions(c *gin.Context) {
	page, pageSize := pagination(c)
	recipesLimit, _ := strconv.Atoi(c.DefaultQuery("recipes_limit", "0"))

	authors, total, err := h.subs.Subscriptions(c.Request.Context(), middleware.UserID(c), page, pageSize, recipesLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.SubscribedAuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, dto.FromSubscribedAuthor(a, h.imageURL))
	}
	c.JSON(http.StatusOK, dto.NewPage(out, total, page, pageSize))
}
