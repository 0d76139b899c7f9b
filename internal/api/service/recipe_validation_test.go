package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() RecipeInput {
	return RecipeInput{
		Name:        "Pancakes",
		Image:       "data:image/png;base64,aGVsbG8=",
		Text:        "Mix and fry.",
		CookingTime: 20,
		TagIDs:      []int64{1},
		Ingredients: []IngredientAmount{
			{ID: 1, Amount: 300},
			{ID: 2, Amount: 2},
		},
	}
}

func TestValidateRecipeInput(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		assert.NoError(t, validateRecipeInput(validInput(), true))
	})

	t.Run("CookingTimeBounds", func(t *testing.T) {
		cases := []struct {
			cookingTime int
			wantErr     bool
		}{
			{0, true},
			{1, false},
			{1000, false},
			{1001, true},
		}
		for _, tc := range cases {
			in := validInput()
			in.CookingTime = tc.cookingTime
			err := validateRecipeInput(in, true)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecipe, "cooking_time=%d", tc.cookingTime)
			} else {
				assert.NoError(t, err, "cooking_time=%d", tc.cookingTime)
			}
		}
	})

	t.Run("NoTags", func(t *testing.T) {
		in := validInput()
		in.TagIDs = nil
		assert.ErrorIs(t, validateRecipeInput(in, true), ErrInvalidRecipe)
	})

	t.Run("NoIngredients", func(t *testing.T) {
		in := validInput()
		in.Ingredients = nil
		assert.ErrorIs(t, validateRecipeInput(in, true), ErrInvalidRecipe)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		in := validInput()
		in.Ingredients[0].Amount = 0
		assert.ErrorIs(t, validateRecipeInput(in, true), ErrInvalidRecipe)
	})

	t.Run("DuplicateIngredient", func(t *testing.T) {
		in := validInput()
		in.Ingredients = []IngredientAmount{
			{ID: 1, Amount: 300},
			{ID: 1, Amount: 100},
		}
		assert.ErrorIs(t, validateRecipeInput(in, true), ErrRepeatedIngredient)
	})

	t.Run("MissingImageOnCreate", func(t *testing.T) {
		in := validInput()
		in.Image = ""
		assert.ErrorIs(t, validateRecipeInput(in, true), ErrInvalidRecipe)
	})

	t.Run("MissingImageOnUpdateKeepsStored", func(t *testing.T) {
		in := validInput()
		in.Image = ""
		assert.NoError(t, validateRecipeInput(in, false))
	})
}
