package command

import (
	"fmt"
	"time"

	"foodgram/cmd/cli/authentication"
	"foodgram/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// auth.go handles authentication commands for the foodgram CLI.

// authCmd represents the auth command for authentication related subcommands
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the foodgram API server. Supports login, registration, logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new foodgram account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.RegisterRequest
		c.Email, _ = cmd.Flags().GetString("email")
		c.Username, _ = cmd.Flags().GetString("username")
		c.FirstName, _ = cmd.Flags().GetString("first-name")
		c.LastName, _ = cmd.Flags().GetString("last-name")
		c.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Register(&c)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println("Registration successful! Please login to continue.")
		fmt.Printf("UserID: %s\n", response.UserID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your foodgram account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.LoginRequest
		c.Email, _ = cmd.Flags().GetString("email")
		c.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&c)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken:  response.AccessToken,
			RefreshToken: response.RefreshToken,
			Username:     response.Username,
			ExpiresAt:    time.Now().Unix() + response.ExpiresIn,
		})
		if err != nil {
			return fmt.Errorf("failed to store credentials: %w", err)
		}

		fmt.Printf("Successfully logged in as %s\n", response.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your foodgram account",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err == nil && creds.RefreshToken != "" {
			// best effort: the local credentials go away either way
			httpClient := client.NewHTTPClient(apiURL)
			httpClient.SetToken(creds.AccessToken)
			if err := httpClient.Logout(creds.RefreshToken); err != nil {
				fmt.Println("Warning: could not revoke server session:", err)
			}
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to clear stored credentials: %w", err)
		}
		fmt.Println("Successfully logged out.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().String("first-name", "", "First name")
	registerCmd.Flags().String("last-name", "", "Last name")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address of the account")
	loginCmd.Flags().StringP("password", "p", "", "Password of the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
