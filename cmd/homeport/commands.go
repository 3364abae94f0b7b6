package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"homeport/internal/config"
	"homeport/internal/discovery"
	"homeport/internal/icons"
	"homeport/internal/locales"
	"homeport/internal/menu"
	"homeport/internal/waypoints"
)

// Command flags
var (
	serverURL   string
	serverToken string
	userID      string
	userName    string
	menuRows    int
	sortFlag    string
	modeFlag    string
	atFlag      string
	worldFlag   string
	httpTimeout int
	scanTimeout int
	scanQuick   bool
	scanFind    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Waypoint server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&serverToken, "token", "", "Bearer token (overrides config)")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Player UUID")
	rootCmd.PersistentFlags().StringVar(&userName, "user", os.Getenv("USER"), "Player name")
	rootCmd.PersistentFlags().IntVar(&menuRows, "rows", 0, "Menu height in rows, 2-6 (overrides config)")
	rootCmd.PersistentFlags().StringVar(&sortFlag, "sort", "", "Initial sort order: asc or desc")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Initial mode: teleport or delete")
	rootCmd.PersistentFlags().StringVar(&atFlag, "at", "0,0,0", "Current position as x,y,z (used for new homes)")
	rootCmd.PersistentFlags().StringVar(&worldFlag, "world", "world", "Current world (used for new homes)")
	rootCmd.PersistentFlags().IntVar(&httpTimeout, "http-timeout", 0, "HTTP request timeout in seconds (default 10)")

	rootCmd.AddCommand(homesCmd)
	rootCmd.AddCommand(warpsCmd)
	rootCmd.AddCommand(publicCmd)
	rootCmd.AddCommand(scanCmd)
}

// homesCmd opens the viewer's own homes menu
var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "Open your homes menu",
	Long: `Open the menu over your own homes.

Entries can be teleported to, deleted (with confirmation), and new
homes can be set at your current position, up to your slot limit.`,
	Example: `  # Open your homes (also the default command)
  homeport homes
  homeport

  # Open against a specific server, four rows tall
  homeport homes --server http://play.example.net:8455 --rows 4

  # Start sorted Z-A in delete mode
  homeport homes --sort desc --mode delete`,
	RunE: runHomes,
}

// warpsCmd opens the server warps menu
var warpsCmd = &cobra.Command{
	Use:   "warps",
	Short: "Open the server warps menu",
	Long: `Open a read-only menu over the server's warps.

Warps can be teleported to but not created or deleted from here.`,
	Example: `  homeport warps
  homeport warps --server http://play.example.net:8455`,
	RunE: runWarps,
}

// publicCmd opens the public homes menu
var publicCmd = &cobra.Command{
	Use:   "public",
	Short: "Open the public homes menu",
	Long: `Open a read-only menu over homes other players have shared.

Public homes can be teleported to but not created or deleted from here.`,
	Example: `  homeport public`,
	RunE: runPublic,
}

// scanCmd discovers waypoint servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for waypoint servers on the network",
	Long: `Scan for waypoint servers using mDNS/DNS-SD discovery.

This command listens for mDNS broadcasts from waypoint servers and
displays all discovered servers with their addresses and metadata.`,
	Example: `  # Scan for 10 seconds (default)
  homeport scan

  # Quick 3-second scan
  homeport scan --quick

  # Wait for a specific server to appear
  homeport scan --find "survival"`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 10, "Scan timeout in seconds")
	scanCmd.Flags().BoolVar(&scanQuick, "quick", false, "Fast 3-second scan")
	scanCmd.Flags().StringVar(&scanFind, "find", "", "Wait for a server with this instance name")
}

func runHomes(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	entries, err := env.client.FetchEntries(env.viewer)
	if err != nil {
		return fmt.Errorf("failed to fetch homes: %w", err)
	}
	max, err := env.client.MaxEntries(env.viewer)
	if err != nil {
		max = -1
	}

	title := env.loc.Get("homes_menu_title", env.viewer.Name)
	session := menu.NewSession(title, env.viewer, env.viewer, entries, env.rows, max, true, env.mode, env.sort)
	return env.open(session, menu.SourceHomes)
}

func runWarps(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	entries, err := env.client.FetchWarps()
	if err != nil {
		return fmt.Errorf("failed to fetch warps: %w", err)
	}

	title := env.loc.Get("warps_menu_title")
	session := menu.NewSession(title, env.viewer, waypoints.User{}, entries, env.rows, -1, false, menu.ModeTeleport, env.sort)
	return env.open(session, menu.SourceWarps)
}

func runPublic(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	entries, err := env.client.FetchPublicEntries()
	if err != nil {
		return fmt.Errorf("failed to fetch public homes: %w", err)
	}

	title := env.loc.Get("public_homes_menu_title")
	session := menu.NewSession(title, env.viewer, waypoints.User{}, entries, env.rows, -1, false, menu.ModeTeleport, env.sort)
	return env.open(session, menu.SourcePublic)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFind != "" {
		fmt.Printf("Waiting for server %q...\n\n", scanFind)
		server, err := discovery.FindServer(scanFind)
		if err != nil {
			return err
		}
		printServer(1, server)
		fmt.Println("Use 'homeport --server <url>' to open a menu against it")
		return nil
	}

	var servers []*discovery.Server
	var err error
	if scanQuick {
		fmt.Println("Scanning for waypoint servers (quick)...")
		fmt.Println()
		servers, err = discovery.QuickScan()
	} else {
		fmt.Printf("Scanning for waypoint servers (timeout: %ds)...\n\n", scanTimeout)
		servers, err = discovery.ScanForServers(time.Duration(scanTimeout) * time.Second)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(servers) == 0 {
		fmt.Println("No servers found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Check you are on the same network as the server")
		fmt.Println("  - Try increasing --timeout for slower networks")
		fmt.Println("  - Use --server flag to specify the address manually")
		return nil
	}

	fmt.Printf("Found %d server(s):\n\n", len(servers))

	for i, server := range servers {
		printServer(i+1, server)
	}

	fmt.Println("Use 'homeport --server <url>' to open a menu against one")

	return nil
}

func printServer(index int, server *discovery.Server) {
	fmt.Printf("%d. %s\n", index, server.Name)
	fmt.Printf("   Address: %s\n", server.BaseURL())
	if server.RequiresAuth() {
		fmt.Printf("   Auth:    required (%s)\n", server.GetMetadata("auth"))
	}
	if len(server.Metadata) > 0 {
		fmt.Printf("   Metadata: %v\n", server.Metadata)
	}
	fmt.Println()
}

// environment bundles everything a menu command needs.
type environment struct {
	registry *config.Registry
	loc      *locales.Locales
	client   *waypoints.Client
	viewer   waypoints.User
	position waypoints.Position
	rows     int
	sort     menu.Sort
	mode     menu.Mode
}

// loadEnvironment resolves config, flags, locale, and the API client.
func loadEnvironment() (*environment, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	endpoint := registry.Server.Endpoint
	if serverURL != "" {
		endpoint = serverURL
	}
	token := registry.Server.Token
	if serverToken != "" {
		token = serverToken
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no server configured; use --server or set server.endpoint in the config file")
	}

	loc, err := locales.Load(registry.Language())
	if err != nil {
		return nil, err
	}
	loc.SetWrapLength(registry.WrapLength())

	rows := registry.PageRows()
	if menuRows != 0 {
		rows = menuRows
	}

	sortOrder := menu.SortAscending
	if registry.Menu != nil && !registry.Menu.SortAscending {
		sortOrder = menu.SortDescending
	}
	switch strings.ToLower(sortFlag) {
	case "asc":
		sortOrder = menu.SortAscending
	case "desc":
		sortOrder = menu.SortDescending
	case "":
	default:
		return nil, fmt.Errorf("invalid --sort %q (use asc or desc)", sortFlag)
	}

	mode := menu.ModeTeleport
	switch strings.ToLower(modeFlag) {
	case "delete":
		mode = menu.ModeDelete
	case "teleport", "":
	default:
		return nil, fmt.Errorf("invalid --mode %q (use teleport or delete)", modeFlag)
	}

	position, err := parsePosition(atFlag, worldFlag)
	if err != nil {
		return nil, err
	}

	viewer := waypoints.User{UUID: userID, Name: userName}
	if viewer.UUID == "" {
		viewer.UUID = viewer.Name
	}

	client := waypoints.NewClient(endpoint, token)
	if httpTimeout > 0 {
		client.SetTimeout(time.Duration(httpTimeout) * time.Second)
	}

	return &environment{
		registry: registry,
		loc:      loc,
		client:   client,
		viewer:   viewer,
		position: position,
		rows:     rows,
		sort:     sortOrder,
		mode:     mode,
	}, nil
}

// open runs the menu program over a built session, with the change
// watcher attached when the server supports it.
func (env *environment) open(session *menu.Session, source menu.Source) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := waypoints.NewWatcher(env.client.BaseURL, env.client.Token)
	if err != nil {
		return err
	}
	go watcher.Run(ctx)

	model := menu.New(
		env.client,
		env.registry,
		env.loc,
		icons.NewResolver(env.registry),
		session,
		env.position,
		watcher.Events(),
	)
	model.Source = source

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("menu error: %w", err)
	}

	return nil
}

// parsePosition parses the --at flag as "x,y,z".
func parsePosition(at, world string) (waypoints.Position, error) {
	parts := strings.Split(at, ",")
	if len(parts) != 3 {
		return waypoints.Position{}, fmt.Errorf("invalid --at %q (use x,y,z)", at)
	}

	coords := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return waypoints.Position{}, fmt.Errorf("invalid --at coordinate %q: %w", part, err)
		}
		coords[i] = v
	}

	return waypoints.Position{X: coords[0], Y: coords[1], Z: coords[2], World: world}, nil
}
