package dto

import (
	"foodgram/internal/api/models"
	"foodgram/internal/api/service"
)

// RecipeIngredientDTO is one ingredient line of a recipe write.
type RecipeIngredientDTO struct {
	ID     int64 `json:"id" binding:"required"`
	Amount int64 `json:"amount" binding:"required"`
}

// CreateRecipeDTO used for POST /api/recipes. Image is a base64 data URI.
type CreateRecipeDTO struct {
	Name        string                `json:"name" binding:"required,max=200"`
	Image       string                `json:"image" binding:"required"`
	Text        string                `json:"text" binding:"required"`
	CookingTime int                   `json:"cooking_time" binding:"required"`
	Tags        []int64               `json:"tags" binding:"required"`
	Ingredients []RecipeIngredientDTO `json:"ingredients" binding:"required"`
}

// UpdateRecipeDTO used for PATCH /api/recipes/:id. Same shape, but a missing
// image keeps the stored one; links are replaced wholesale.
type UpdateRecipeDTO struct {
	Name        string                `json:"name" binding:"required,max=200"`
	Image       string                `json:"image"`
	Text        string                `json:"text" binding:"required"`
	CookingTime int                   `json:"cooking_time" binding:"required"`
	Tags        []int64               `json:"tags" binding:"required"`
	Ingredients []RecipeIngredientDTO `json:"ingredients" binding:"required"`
}

// IngredientLineResponse is one ingredient line of the recipe projection.
type IngredientLineResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// RecipeResponse is the full recipe projection with per-viewer flags.
type RecipeResponse struct {
	ID               int64                    `json:"id"`
	Author           UserResponse             `json:"author"`
	Name             string                   `json:"name"`
	Image            string                   `json:"image"`
	Text             string                   `json:"text"`
	CookingTime      int                      `json:"cooking_time"`
	Tags             []TagResponse            `json:"tags"`
	Ingredients      []IngredientLineResponse `json:"ingredients"`
	IsFavorited      bool                     `json:"is_favorited"`
	IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
}

// ShortRecipeResponse is the compact projection returned by the favorite and
// shopping cart add endpoints.
type ShortRecipeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// Converters

func (d CreateRecipeDTO) ToInput() service.RecipeInput {
	return service.RecipeInput{
		Name:        d.Name,
		Image:       d.Image,
		Text:        d.Text,
		CookingTime: d.CookingTime,
		TagIDs:      d.Tags,
		Ingredients: toAmounts(d.Ingredients),
	}
}

func (d UpdateRecipeDTO) ToInput() service.RecipeInput {
	return service.RecipeInput{
		Name:        d.Name,
		Image:       d.Image,
		Text:        d.Text,
		CookingTime: d.CookingTime,
		TagIDs:      d.Tags,
		Ingredients: toAmounts(d.Ingredients),
	}
}

func toAmounts(lines []RecipeIngredientDTO) []service.IngredientAmount {
	out := make([]service.IngredientAmount, 0, len(lines))
	for _, l := range lines {
		out = append(out, service.IngredientAmount{ID: l.ID, Amount: l.Amount})
	}
	return out
}

// FromRecipeToResponse renders the full projection. imageURL is the resolved
// media URL for the recipe's image ref; the flags are the viewer's.
func FromRecipeToResponse(r models.Recipe, imageURL string, authorSubscribed, favorited, inCart bool) RecipeResponse {
	tags := make([]TagResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, FromTagToResponse(t))
	}

	lines := make([]IngredientLineResponse, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		line := IngredientLineResponse{
			ID:     ri.IngredientID,
			Amount: ri.Amount,
		}
		if ri.Ingredient != nil {
			line.Name = ri.Ingredient.Name
			line.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		lines = append(lines, line)
	}

	var author UserResponse
	if r.Author != nil {
		author = FromUserToResponse(*r.Author, authorSubscribed)
	}

	return RecipeResponse{
		ID:               r.ID,
		Author:           author,
		Name:             r.Name,
		Image:            imageURL,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		Tags:             tags,
		Ingredients:      lines,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
	}
}

func FromRecipeToShortResponse(r models.Recipe, imageURL string) ShortRecipeResponse {
	return ShortRecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       imageURL,
		CookingTime: r.CookingTime,
	}
}
