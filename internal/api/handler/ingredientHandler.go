package handler

import (
	"errors"
	"net/http"

	"foodgram/internal/api/dto"
	"foodgram/internal/api/service"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	svc service.IngredientService
}

func NewIngredientHandler(svc service.IngredientService) *IngredientHandler {
	return &IngredientHandler{svc: svc}
}

// List supports ?name= prefix search for the autocomplete widget.
func (h *IngredientHandler) List(c *gin.Context) {
	list, err := h.svc.SearchIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.IngredientResponse, 0, len(list))
	for _, ing := range list {
		out = append(out, dto.FromIngredientToResponse(ing))
	}
	c.JSON(http.StatusOK, out)
}

func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ing, err := h.svc.GetIngredientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrIngredientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromIngredientToResponse(*ing))
}

// Create is admin-only; route guarded by RequireAdmin.
func (h *IngredientHandler) Create(c *gin.Context) {
	var req dto.CreateIngredientDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing := req.ToModel()
	if err := h.svc.CreateIngredient(c.Request.Context(), &ing); err != nil {
		if errors.Is(err, service.ErrDuplicateIngredient) {
			c.JSON(http.StatusConflict, gin.H{"error": "ingredient already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromIngredientToResponse(ing))
}
