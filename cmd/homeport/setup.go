package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"homeport/internal/wizard/tui"
)

// setupCmd runs the first-run configuration wizard
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Find a waypoint server and save it to your settings",
	Long: `Run the interactive setup wizard.

The wizard scans your network for waypoint servers, lets you pick one
(or enter an address manually), asks for an access token if the server
needs one, and writes the result to your settings file.`,
	Example: `  homeport setup`,
	RunE:    runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("setup error: %w", err)
	}

	if m, ok := final.(tui.SetupModel); ok && m.Result.Saved {
		fmt.Printf("Configured server %s\n", m.Result.Endpoint)
		fmt.Println("Run 'homeport' to open your homes menu")
	}
	return nil
}
