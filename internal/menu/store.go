package menu

import "homeport/internal/waypoints"

// Store is the slice of the waypoint client the menu depends on.
// *waypoints.Client satisfies it; tests substitute fakes.
type Store interface {
	FetchEntries(owner waypoints.User) ([]waypoints.Entry, error)
	FetchPublicEntries() ([]waypoints.Entry, error)
	FetchWarps() ([]waypoints.Entry, error)
	CreateEntry(owner waypoints.User, name string, pos waypoints.Position) (*waypoints.Entry, error)
	DeleteEntry(entry waypoints.Entry) error
	MaxEntries(user waypoints.User) (int, error)
	BeginTeleport(user waypoints.User, target waypoints.Position) error
}

// Source names the collection a menu is showing, so a refresh re-fetches
// from the same place the initial snapshot came from.
type Source int

const (
	SourceHomes Source = iota
	SourcePublic
	SourceWarps
)
