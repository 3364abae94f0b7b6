package waypoints

import "fmt"

// Kind distinguishes the two flavours of saved location.
type Kind string

const (
	// KindHome is a private, per-player location
	KindHome Kind = "home"
	// KindWarp is a server-wide location
	KindWarp Kind = "warp"
)

// User identifies a player on the waypoint service.
type User struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// Position is a location in a world on a server.
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	World  string  `json:"world"`
	Server string  `json:"server"`
}

// String formats coordinates the way the menu displays them.
func (p Position) String() string {
	return fmt.Sprintf("X: %.1f, Y: %.1f, Z: %.1f", p.X, p.Y, p.Z)
}

// Entry is one saved location record (home or warp) as served by the store.
// The store is authoritative for the entry's whole lifecycle; clients only
// ever hold snapshots.
type Entry struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	Owner       User     `json:"owner"`
	Position    Position `json:"position"`
	Description string   `json:"description,omitempty"`
	Public      bool     `json:"public,omitempty"` // homes only
}

// slotInfo is the wire shape of the per-user slot limit response.
type slotInfo struct {
	Max int `json:"max"`
}

// teleportRequest is the wire shape of a timed teleport request.
type teleportRequest struct {
	User   User     `json:"user"`
	Target Position `json:"target"`
}

// createRequest is the wire shape of an entry creation request.
type createRequest struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// apiError is the wire shape of an error payload from the store.
type apiError struct {
	Message string `json:"message"`
}
