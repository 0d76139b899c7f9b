package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your shopping cart",
	Long:  `Add and remove recipes from your shopping cart, and download the aggregated shopping list.`,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [recipe_id]",
	Short: "Add a recipe to your shopping cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipe id: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		recipe, err := httpClient.AddToCart(recipeID)
		if err != nil {
			return fmt.Errorf("failed to add to cart: %w", err)
		}

		fmt.Printf("Added %q (ID: %d) to your shopping cart\n", recipe.Name, recipe.ID)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [recipe_id]",
	Short: "Remove a recipe from your shopping cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipe id: %w", err)
		}

		httpClient := GetAuthenticatedClient()
		if err := httpClient.RemoveFromCart(recipeID); err != nil {
			return fmt.Errorf("failed to remove from cart: %w", err)
		}

		fmt.Printf("Removed recipe (ID: %d) from your shopping cart\n", recipeID)
		return nil
	},
}

var cartDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the aggregated shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		httpClient := GetAuthenticatedClient()
		data, err := httpClient.DownloadShoppingList()
		if err != nil {
			return fmt.Errorf("failed to download shopping list: %w", err)
		}

		if output == "-" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("Shopping list saved to %s\n", output)
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartDownloadCmd)

	cartDownloadCmd.Flags().StringP("output", "o", "purchase_list.txt", `Output file ("-" for stdout)`)
}
