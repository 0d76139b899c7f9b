package dto

import "foodgram/internal/api/service"

// SubscribedAuthorResponse is the subscription projection: the followed
// author plus their newest recipes and total recipe count.
type SubscribedAuthorResponse struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	Username     string                `json:"username"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	IsSubscribed bool                  `json:"is_subscribed"`
	Recipes      []ShortRecipeResponse `json:"recipes"`
	RecipesCount int64                 `json:"recipes_count"`
}

// FromSubscribedAuthor renders the projection; imageURL resolves a recipe's
// image ref to its media URL. is_subscribed is true by construction.
func FromSubscribedAuthor(a service.SubscribedAuthor, imageURL func(ref string) string) SubscribedAuthorResponse {
	recipes := make([]ShortRecipeResponse, 0, len(a.Recipes))
	for _, r := range a.Recipes {
		recipes = append(recipes, FromRecipeToShortResponse(r, imageURL(r.Image)))
	}
	return SubscribedAuthorResponse{
		ID:           a.User.ID,
		Email:        a.User.Email,
		Username:     a.User.Username,
		FirstName:    a.User.FirstName,
		LastName:     a.User.LastName,
		IsSubscribed: true,
		Recipes:      recipes,
		RecipesCount: a.RecipesCount,
	}
}
