package service

import (
	"context"
	"testing"

	"foodgram/internal/api/repository"

	"github.com/stretchr/testify/assert"
)

type fakeCartLines struct {
	lines []repository.IngredientLine
}

func (f *fakeCartLines) CartIngredientLines(ctx context.Context, userID string) ([]repository.IngredientLine, error) {
	return f.lines, nil
}

func TestRenderShoppingList(t *testing.T) {
	t.Run("SumsAcrossRecipes", func(t *testing.T) {
		// two recipes in the cart: flour appears in both
		src := &fakeCartLines{lines: []repository.IngredientLine{
			{IngredientID: 1, Name: "flour", MeasurementUnit: "g", Amount: 200},
			{IngredientID: 2, Name: "egg", MeasurementUnit: "pcs", Amount: 2},
			{IngredientID: 1, Name: "flour", MeasurementUnit: "g", Amount: 100},
			{IngredientID: 3, Name: "sugar", MeasurementUnit: "g", Amount: 50},
		}}
		svc := NewShoppingListService(src)

		got, err := svc.RenderShoppingList(context.Background(), "user-1", "alice")
		assert.NoError(t, err)

		want := "Shopping list for alice\n\n" +
			"egg - 2pcs\n" +
			"flour - 300g\n" +
			"sugar - 50g\n"
		assert.Equal(t, want, string(got))
	})

	t.Run("ByteStable", func(t *testing.T) {
		src := &fakeCartLines{lines: []repository.IngredientLine{
			{IngredientID: 2, Name: "egg", MeasurementUnit: "pcs", Amount: 2},
			{IngredientID: 1, Name: "flour", MeasurementUnit: "g", Amount: 300},
		}}
		svc := NewShoppingListService(src)

		first, err := svc.RenderShoppingList(context.Background(), "user-1", "alice")
		assert.NoError(t, err)
		second, err := svc.RenderShoppingList(context.Background(), "user-1", "alice")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		svc := NewShoppingListService(&fakeCartLines{})

		got, err := svc.RenderShoppingList(context.Background(), "user-1", "bob")
		assert.NoError(t, err)
		assert.Equal(t, "Shopping list for bob\n\n", string(got))
	})

	t.Run("OrderedByName", func(t *testing.T) {
		src := &fakeCartLines{lines: []repository.IngredientLine{
			{IngredientID: 3, Name: "zucchini", MeasurementUnit: "pcs", Amount: 1},
			{IngredientID: 1, Name: "apple", MeasurementUnit: "pcs", Amount: 4},
			{IngredientID: 2, Name: "milk", MeasurementUnit: "ml", Amount: 500},
		}}
		svc := NewShoppingListService(src)

		got, err := svc.RenderShoppingList(context.Background(), "user-1", "alice")
		assert.NoError(t, err)

		want := "Shopping list for alice\n\n" +
			"apple - 4pcs\n" +
			"milk - 500ml\n" +
			"zucchini - 1pcs\n"
		assert.Equal(t, want, string(got))
	})
}
