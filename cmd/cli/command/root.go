package command

// root.go defines the root command for the foodgram CLI application.
// set up the global flags and configuration here.

import (
	"fmt"
	"os"

	"foodgram/cmd/cli/authentication"
	"foodgram/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var apiURL string // Global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "foodgram",
	Short: "foodgram - recipe sharing command line interface",
	Long: `foodgram is a tool to interact with the foodgram API. You can use it to:
- Browse recipes, tags and the ingredient catalog
- Manage your favorites and shopping cart
- Download your aggregated shopping list
- Follow recipe authors

Use "foodgram [command] --help" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(recipeCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(ingredientCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(subscriptionCmd)
}

// GetAuthenticatedClient builds an HTTP client carrying the stored access
// token. Exits with a login hint when no credentials are stored.
func GetAuthenticatedClient() *client.HTTPClient {
	httpClient := client.NewHTTPClient(apiURL)

	creds, err := authentication.GetTokens()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Not logged in. Run: foodgram auth login")
		os.Exit(1)
	}
	if creds.Expired() {
		fmt.Fprintln(os.Stderr, "Session expired. Run: foodgram auth login")
		os.Exit(1)
	}
	httpClient.SetToken(creds.AccessToken)
	return httpClient
}
