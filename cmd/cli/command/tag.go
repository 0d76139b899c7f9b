package command

import (
	"fmt"

	"foodgram/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Browse recipe tags",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		tags, err := httpClient.ListTags()
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if len(tags) == 0 {
			fmt.Println("No tags defined.")
			return nil
		}
		for _, t := range tags {
			fmt.Printf("%d. %s (#%s, %s)\n", t.ID, t.Name, t.Slug, t.Color)
		}
		return nil
	},
}

func init() {
	tagCmd.AddCommand(tagListCmd)
}
