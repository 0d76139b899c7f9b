package command

import (
	"fmt"

	"foodgram/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Browse the ingredient catalog",
}

var ingredientSearchCmd = &cobra.Command{
	Use:   "search [prefix]",
	Short: "Search ingredients by name prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}

		httpClient := client.NewHTTPClient(apiURL)
		list, err := httpClient.SearchIngredients(prefix)
		if err != nil {
			return fmt.Errorf("failed to search ingredients: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No ingredients found.")
			return nil
		}
		for _, ing := range list {
			fmt.Printf("%d. %s (%s)\n", ing.ID, ing.Name, ing.MeasurementUnit)
		}
		return nil
	},
}

func init() {
	ingredientCmd.AddCommand(ingredientSearchCmd)
}
