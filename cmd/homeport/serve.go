package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"homeport/internal/discovery"
	"homeport/internal/server"
	"homeport/internal/waypoints"
)

var (
	serveHost     string
	servePort     int
	serveName     string
	serveAnnounce bool
	serveSlots    int
	serveCert     string
	serveKey      string
	serveDemo     bool
)

// serveCmd runs the built-in waypoint store server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a built-in waypoint server",
	Long: `Run the built-in in-memory waypoint server.

The server speaks the same API the menu commands use, so pointing
'homeport --server' at it gives a complete working setup with no
external store. Nothing is persisted across restarts.`,
	Example: `  # Serve on the default port with sample data
  homeport serve --demo

  # Announce on the LAN so 'homeport scan' finds it
  homeport serve --announce --name survival

  # Require a token
  homeport serve --token hunter2`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (default all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", discovery.DefaultPort, "Listen port")
	serveCmd.Flags().StringVar(&serveName, "name", "homeport", "Instance name announced over mDNS")
	serveCmd.Flags().BoolVar(&serveAnnounce, "announce", false, "Announce the server over mDNS")
	serveCmd.Flags().IntVar(&serveSlots, "slots", server.DefaultSlots, "Default per-user home limit")
	serveCmd.Flags().StringVar(&serveCert, "cert", "", "TLS certificate file (serves plain HTTP when empty)")
	serveCmd.Flags().StringVar(&serveKey, "key", "", "TLS private key file")
	serveCmd.Flags().BoolVar(&serveDemo, "demo", false, "Seed sample warps and homes")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(&server.Config{
		Host:     serveHost,
		Port:     servePort,
		Token:    serverToken,
		Name:     serveName,
		Announce: serveAnnounce,
		CertPath: serveCert,
		KeyPath:  serveKey,
		Slots:    serveSlots,
	})

	if serveDemo {
		if err := seedDemo(srv.Store()); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		fmt.Println("Seeded demo warps and homes")
	}

	scheme := "http"
	if serveCert != "" {
		scheme = "https"
	}
	fmt.Printf("Waypoint server listening on %s://%s:%d\n", scheme, displayHost(serveHost), servePort)
	if serveAnnounce {
		fmt.Printf("Announcing as %q (%s)\n", serveName, discovery.ServiceType)
	}
	fmt.Println("Press Ctrl+C to stop")

	return srv.Start()
}

func displayHost(host string) string {
	if host == "" {
		return "localhost"
	}
	return host
}

// seedDemo fills the store with enough data to explore every menu surface.
func seedDemo(store *server.Store) error {
	steve := waypoints.User{UUID: "steve", Name: "Steve"}
	alex := waypoints.User{UUID: "alex", Name: "Alex"}

	homes := []struct {
		owner  waypoints.User
		name   string
		pos    waypoints.Position
		public bool
	}{
		{steve, "Base", waypoints.Position{X: 120, Y: 64, Z: -40, World: "world"}, false},
		{steve, "Cave", waypoints.Position{X: -15, Y: 12, Z: 310, World: "world"}, false},
		{steve, "Farm", waypoints.Position{X: 88, Y: 70, Z: 6, World: "world"}, true},
		{alex, "Tower", waypoints.Position{X: 0, Y: 180, Z: 0, World: "world"}, true},
	}
	for _, h := range homes {
		if _, err := store.CreateHome(h.owner, h.name, h.pos); err != nil {
			return err
		}
		if h.public {
			if err := store.SetPublic(h.owner.UUID, h.name, true); err != nil {
				return err
			}
		}
	}

	warps := []struct {
		name        string
		pos         waypoints.Position
		description string
	}{
		{"Spawn", waypoints.Position{X: 0, Y: 65, Z: 0, World: "world"}, "The spawn point"},
		{"Market", waypoints.Position{X: 200, Y: 64, Z: 200, World: "world"}, "Trade district"},
		{"End_Portal", waypoints.Position{X: -1200, Y: 30, Z: 540, World: "world"}, "Stronghold portal room"},
	}
	for _, w := range warps {
		if _, err := store.AddWarp(w.name, w.pos, w.description); err != nil {
			return err
		}
	}

	return nil
}
