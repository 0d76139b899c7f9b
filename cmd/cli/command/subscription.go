package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Follow recipe authors",
	Long:  `Subscribe to authors, list your subscriptions, and unsubscribe.`,
}

var subscriptionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the authors you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		httpClient := GetAuthenticatedClient()
		result, err := httpClient.Subscriptions(page, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}

		if len(result.Results) == 0 {
			fmt.Println("You are not following anyone yet.")
			return nil
		}

		fmt.Printf("Subscriptions (page %d, %d total)\n", result.Page, result.Count)
		fmt.Println("─────────────────────────────────────────────────────────")
		for _, a := range result.Results {
			fmt.Printf("%s (%s) - %d recipes\n", a.Username, a.ID, a.RecipesCount)
			for _, r := range a.Recipes {
				fmt.Printf("   %d. %s (%d min)\n", r.ID, r.Name, r.CookingTime)
			}
		}
		return nil
	},
}

var subscribeCmd = &cobra.Command{
	Use:   "add [user_id]",
	Short: "Subscribe to an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipesLimit, _ := cmd.Flags().GetInt("recipes-limit")

		httpClient := GetAuthenticatedClient()
		author, err := httpClient.Subscribe(args[0], recipesLimit)
		if err != nil {
			return fmt.Errorf("failed to subscribe: %w", err)
		}

		fmt.Printf("Subscribed to %s (%d recipes)\n", author.Username, author.RecipesCount)
		return nil
	},
}

var unsubscribeCmd = &cobra.Command{
	Use:   "remove [user_id]",
	Short: "Unsubscribe from an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := GetAuthenticatedClient()
		if err := httpClient.Unsubscribe(args[0]); err != nil {
			return fmt.Errorf("failed to unsubscribe: %w", err)
		}

		fmt.Printf("Unsubscribed from %s\n", args[0])
		return nil
	},
}

func init() {
	subscriptionCmd.AddCommand(subscriptionListCmd)
	subscriptionCmd.AddCommand(subscribeCmd)
	subscriptionCmd.AddCommand(unsubscribeCmd)

	subscriptionListCmd.Flags().Int("page", 1, "Page number")
	subscriptionListCmd.Flags().Int("page-size", 10, "Authors per page")
	subscribeCmd.Flags().Int("recipes-limit", 3, "How many recent recipes to show")
}
