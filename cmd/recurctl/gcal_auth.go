package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// newGCalAuthCmd authorizes Google Calendar access once and writes token.json
// next to the credentials, where the API server picks it up.
func newGCalAuthCmd() *cobra.Command {
	var (
		credsPath string
		tokenPath string
	)

	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar sync and save token.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("parse credentials: %w (expected an OAuth Desktop App credentials file)", err)
			}

			out := cmd.OutOrStdout()
			authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
			fmt.Fprintln(out, "Step 1: open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, authURL)
			fmt.Fprintln(out)
			fmt.Fprint(out, "Step 2: paste the authorization code here and press Enter: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := config.Exchange(context.Background(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
			if err != nil {
				return fmt.Errorf("create %s: %w", tokenPath, err)
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", tokenPath, err)
			}

			fmt.Fprintf(out, "\nSaved %s. Restart the API server to enable calendar sync.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth client credentials file")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "where to write the token")
	return cmd
}
