package discovery

import (
	"fmt"
	"time"
)

// Server represents a discovered waypoint server on the network
type Server struct {
	// Name is the advertised instance name (e.g., "survival")
	Name string

	// Hostname is the mDNS hostname (e.g., "mc-survival.local.")
	Hostname string

	// IP is the IPv4 address (e.g., "192.168.1.40")
	IP string

	// Port is the HTTP API port
	Port int

	// Metadata contains additional mDNS TXT record data
	// Common fields: "version=1", "auth=bearer"
	Metadata map[string]string

	// DiscoveredAt is when the server was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the server
func (s *Server) String() string {
	return fmt.Sprintf("Waypoint server %s (%s) at %s:%d", s.Name, s.Hostname, s.IP, s.Port)
}

// BaseURL returns the HTTP base URL for the server's API
func (s *Server) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", s.IP, s.Port)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (s *Server) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}

// RequiresAuth reports whether the server advertised an auth requirement
func (s *Server) RequiresAuth() bool {
	return s.GetMetadata("auth") != ""
}
