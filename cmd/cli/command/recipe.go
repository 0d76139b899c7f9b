package command

import (
	"fmt"
	"strconv"

	"foodgram/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse recipes",
	Long:  `List and inspect recipes published on foodgram.`,
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		tags, _ := cmd.Flags().GetStringSlice("tags")

		httpClient := client.NewHTTPClient(apiURL)
		result, err := httpClient.ListRecipes(page, pageSize, tags)
		if err != nil {
			return fmt.Errorf("failed to list recipes: %w", err)
		}

		if len(result.Results) == 0 {
			fmt.Println("No recipes found.")
			return nil
		}

		fmt.Printf("Recipes (page %d, %d total)\n", result.Page, result.Count)
		fmt.Println("─────────────────────────────────────────────────────────")
		for _, r := range result.Results {
			fmt.Printf("%d. %s by %s (%d min)\n", r.ID, r.Name, r.Author.Username, r.CookingTime)
			for _, t := range r.Tags {
				fmt.Printf("   #%s", t.Slug)
			}
			if len(r.Tags) > 0 {
				fmt.Println()
			}
		}
		return nil
	},
}

var recipeGetCmd = &cobra.Command{
	Use:   "get [recipe_id]",
	Short: "Show one recipe with its ingredients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid recipe id: %w", err)
		}

		httpClient := client.NewHTTPClient(apiURL)
		r, err := httpClient.GetRecipe(id)
		if err != nil {
			return fmt.Errorf("failed to fetch recipe: %w", err)
		}

		fmt.Printf("%s (ID: %d)\n", r.Name, r.ID)
		fmt.Printf("Author: %s\n", r.Author.Username)
		fmt.Printf("Cooking time: %d min\n", r.CookingTime)
		fmt.Println("Ingredients:")
		for _, line := range r.Ingredients {
			fmt.Printf("  - %s: %d %s\n", line.Name, line.Amount, line.MeasurementUnit)
		}
		fmt.Println()
		fmt.Println(r.Text)
		return nil
	},
}

func init() {
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeGetCmd)

	recipeListCmd.Flags().Int("page", 1, "Page number")
	recipeListCmd.Flags().Int("page-size", 10, "Recipes per page")
	recipeListCmd.Flags().StringSlice("tags", nil, "Filter by tag slugs")
}
