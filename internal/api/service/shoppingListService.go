package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodgram/internal/api/repository"
)

// CartLineSource yields the flat, unaggregated ingredient lines of every
// recipe in a user's shopping cart. repository.RecipeRepository satisfies it.
type CartLineSource interface {
	CartIngredientLines(ctx context.Context, userID string) ([]repository.IngredientLine, error)
}

type ShoppingListService interface {
	RenderShoppingList(ctx context.Context, userID, username string) ([]byte, error)
}

type shoppingListService struct {
	lines CartLineSource
}

func NewShoppingListService(lines CartLineSource) ShoppingListService {
	return &shoppingListService{lines: lines}
}

// RenderShoppingList aggregates the cart into a plain-text purchase list.
// Amounts of the same ingredient are summed across recipes; lines are sorted
// by ingredient name so the same cart always renders the same bytes. An
// empty cart yields just the header.
func (s *shoppingListService) RenderShoppingList(ctx context.Context, userID, username string) ([]byte, error) {
	raw, err := s.lines.CartIngredientLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	// ingredient names are unique, so the name carries the unit with it
	totals := make(map[string]*repository.IngredientLine, len(raw))
	for _, line := range raw {
		if t, ok := totals[line.Name]; ok {
			t.Amount += line.Amount
			continue
		}
		l := line
		totals[line.Name] = &l
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Shopping list for %s\n\n", username)
	for _, name := range names {
		t := totals[name]
		fmt.Fprintf(&b, "%s - %d%s\n", t.Name, t.Amount, t.MeasurementUnit)
	}
	return []byte(b.String()), nil
}
