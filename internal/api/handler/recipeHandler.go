package handler

import (
	"errors"
	"net/http"

	"foodgram/internal/api/dto"
	"foodgram/internal/api/middleware"
	"foodgram/internal/api/models"
	"foodgram/internal/api/repository"
	"foodgram/internal/api/service"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	svc      service.RecipeService
	subs     service.SubscriptionService
	shopping service.ShoppingListService
	imageURL func(ref string) string
}

func NewRecipeHandler(
	svc service.RecipeService,
	subs service.SubscriptionService,
	shopping service.ShoppingListService,
	imageURL func(ref string) string,
) *RecipeHandler {
	return &RecipeHandler{
		svc:      svc,
		subs:     subs,
		shopping: shopping,
		imageURL: imageURL,
	}
}

// List is public; the membership filters only apply for authenticated
// viewers since they are scoped to the acting user.
func (h *RecipeHandler) List(c *gin.Context) {
	viewerID := middleware.UserID(c)
	page, pageSize := pagination(c)

	f := repository.RecipeFilter{
		TagSlugs: c.QueryArray("tags"),
		AuthorID: c.Query("author"),
	}
	if viewerID != "" {
		if c.Query("is_favorited") == "1" {
			f.FavoritedBy = viewerID
		}
		if c.Query("is_in_shopping_cart") == "1" {
			f.InCartOf = viewerID
		}
	}

	recipes, total, err := h.svc.ListRecipes(c.Request.Context(), f, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	flags, err := h.svc.ViewerFlags(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	subscribed, err := h.subs.SubscribedSet(c.Request.Context(), viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.FromRecipeToResponse(
			r,
			h.imageURL(r.Image),
			subscribed[r.AuthorID],
			flags.Favorited[r.ID],
			flags.InCart[r.ID],
		))
	}
	c.JSON(http.StatusOK, dto.NewPage(out, total, page, pageSize))
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.svc.GetRecipeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondWithRecipe(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.svc.CreateRecipe(c.Request.Context(), middleware.UserID(c), req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respondWithRecipe(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req dto.UpdateRecipeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.svc.UpdateRecipe(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), id, req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.respondWithRecipe(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.svc.DeleteRecipe(c.Request.Context(), middleware.UserID(c), middleware.IsAdmin(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadShoppingCart renders the aggregated purchase list as a plain-text
// attachment.
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	username, _ := c.Get("username")
	name, _ := username.(string)

	data, err := h.shopping.RenderShoppingList(c.Request.Context(), middleware.UserID(c), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchase_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

func (h *RecipeHandler) respondWithRecipe(c *gin.Context, status int, recipe *models.Recipe) {
	viewerID := middleware.UserID(c)
	ctx := c.Request.Context()

	favorited := false
	inCart := false
	authorSubscribed := false
	if viewerID != "" {
		flags, err := h.svc.ViewerFlags(ctx, viewerID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		favorited = flags.Favorited[recipe.ID]
		inCart = flags.InCart[recipe.ID]

		authorSubscribed, err = h.subs.IsSubscribed(ctx, viewerID, recipe.AuthorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(status, dto.FromRecipeToResponse(*recipe, h.imageURL(recipe.Image), authorSubscribed, favorited, inCart))
}

func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrTagNotFound),
		errors.Is(err, service.ErrIngredientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRepeatedIngredient):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidRecipe):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotRecipeAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
