// Command gcal-auth authorizes Google Calendar access for an OAuth desktop
// client and saves the token the server reads at startup.
//
// Run it once locally:
//
//	go run ./scripts/gcal-auth --credentials google-credentials.json
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"atrova/pkg/gcalendar"
)

var rootCmd = &cobra.Command{
	Use:          "gcal-auth",
	Short:        "Authorize Google Calendar and write token.json",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		credsPath, _ := cmd.Flags().GetString("credentials")
		tokenPath, _ := cmd.Flags().GetString("token")

		data, err := os.ReadFile(credsPath)
		if err != nil {
			return fmt.Errorf("read credentials %q: %w", credsPath, err)
		}
		cfg, err := gcalendar.OAuthConfigFromJSON(data)
		if err != nil {
			return fmt.Errorf("%w (expected an OAuth desktop app credentials file)", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, cfg.AuthCodeURL("atrova", oauth2.AccessTypeOffline))
		fmt.Fprintln(out)
		fmt.Fprint(out, "2. Paste the authorization code here: ")

		code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && strings.TrimSpace(code) == "" {
			return fmt.Errorf("read authorization code: %w", err)
		}

		tok, err := cfg.Exchange(cmd.Context(), strings.TrimSpace(code))
		if err != nil {
			return fmt.Errorf("exchange authorization code: %w", err)
		}
		if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		fmt.Fprintf(out, "\nSaved %s. Restart the server to enable calendar sync.\n", tokenPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	rootCmd.Flags().String("token", gcalendar.DefaultTokenPath, "where to write the token")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
