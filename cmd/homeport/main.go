// Homeport is a terminal menu for HuskHomes-style waypoint servers.
//
// It browses a player's saved homes, server warps, and public homes in
// a paginated grid, teleports to them, creates new ones at the current
// position, and deletes them with a two-step confirmation. The
// waypoint server remains the authoritative store; every change is
// followed by a re-fetch and a full menu rebuild.
//
// Usage:
//
//	homeport [command] [flags]
//
// Running without arguments opens the homes menu.
// See 'homeport --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"homeport/internal/logging"
	"homeport/internal/version"
)

func main() {
	_ = logging.InitializeFromEnv()
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homeport",
	Short: "Terminal menu for homes and warps",
	Long: `A terminal client for HuskHomes-style waypoint servers.

Browse your homes in a grid menu, teleport to them, set new ones at
your current position, and delete them with confirmation. Warps and
public homes open in read-only menus.

If no command is specified, the homes menu opens.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the homes menu
		return runHomes(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("homeport %s (commit: %s)\n", version.Version, version.Commit)
	},
}
