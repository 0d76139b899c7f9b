package handler

import (
	"errors"
	"net/http"

	"foodgram/internal/api/middleware"
	"foodgram/internal/api/models"
	"foodgram/internal/api/service"

	"github.com/gin-gonic/gin"
)

// RecipeRelationHandler serves the user-to-recipe toggles (favorite and
// shopping cart). One handler type covers both: the relation engine and the
// post-add projection are constructor arguments, so the favorite and cart
// instances differ only in wiring.
type RecipeRelationHandler struct {
	relation *service.RelationService[models.Recipe, int64]
	project  func(models.Recipe) any
}

func NewRecipeRelationHandler(
	relation *service.RelationService[models.Recipe, int64],
	project func(models.Recipe) any,
) *RecipeRelationHandler {
	return &RecipeRelationHandler{relation: relation, project: project}
}

// Add toggles the relation on. Adding twice is a conflict, caught by the
// unique pair index rather than a pre-check.
func (h *RecipeRelationHandler) Add(c *gin.Context) {
	recipeID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.relation.Add(c.Request.Context(), middleware.UserID(c), recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrRelationExists):
			c.JSON(http.StatusConflict, gin.H{"error": "recipe already added"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, h.project(*recipe))
}

// Remove toggles the relation off; removing an absent relation is 404.
func (h *RecipeRelationHandler) Remove(c *gin.Context) {
	recipeID, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.relation.Remove(c.Request.Context(), middleware.UserID(c), recipeID); err != nil {
		switch {
		case errors.Is(err, service.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		case errors.Is(err, service.ErrRelationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe was not added"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
