// Command grantctl runs one-off maintenance tasks against the GrantFlow
// database and event bus.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grantctl",
	Short: "GrantFlow maintenance commands",
	Long: `Maintenance commands for the GrantFlow backend.

Available subcommands:
  migrate   - Create or update the database schema
  seed      - Load the built-in prompt library, templates and notification types
  catalog   - Print the grant-writing checklist
  broadcast - Send an announcement to every connected user`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(migrateCmd, seedCmd, catalogCmd, broadcastCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
