package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"homeport/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with default values to the standard
location, ready to be edited. Refuses to overwrite an existing file
unless --force is given.`,
	Example: `  homeport config init
  homeport config init --force`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print the configuration as read from disk",
	Example: `  homeport config show`,
	RunE:    runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing configuration file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists; use --force to overwrite", path)
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	fmt.Printf("Wrote default configuration to %s\n", path)
	fmt.Println("Edit server.endpoint to point at your waypoint server, or run 'homeport setup'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	// Read straight from disk rather than the cached registry, so edits
	// made since this process started still show up.
	registry, err := config.ReloadRegistry()
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(registry)
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n%s", path, data)
	return nil
}
