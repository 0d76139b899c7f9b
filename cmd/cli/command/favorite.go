package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite",
	Short: "Manage your favorite recipes",
	Long:  `Add and remove recipes from your favorites.`,
}

var favoriteAddCmd = &cobra.Command{
	Use:   "add [recipe_id]",
	Short: "Add a recipe to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipe id: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		recipe, err := httpClient.AddFavorite(recipeID)
		if err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}

		fmt.Printf("Added %q (ID: %d) to your favorites\n", recipe.Name, recipe.ID)
		return nil
	},
}

var favoriteRemoveCmd = &cobra.Command{
	Use:   "remove [recipe_id]",
	Short: "Remove a recipe from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipe id: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		if err := httpClient.RemoveFavorite(recipeID); err != nil {
			return fmt.Errorf("failed to remove favorite: %w", err)
		}

		fmt.Printf("Removed recipe (ID: %d) from your favorites\n", recipeID)
		return nil
	},
}

func init() {
	favoriteCmd.AddCommand(favoriteAddCmd)
	favoriteCmd.AddCommand(favoriteRemoveCmd)
}
