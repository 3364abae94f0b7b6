package urls

import (
	"fmt"
	"net/url"
	"strings"
)

// Fixed API routes.
const (
	// PublicHomes lists every home its owner has marked public.
	PublicHomes = "/api/v1/homes/public"

	// Warps lists the server-wide warps.
	Warps = "/api/v1/warps"

	// Teleports accepts timed teleport requests.
	Teleports = "/api/v1/teleports"

	// Events is the websocket feed of store-side changes.
	Events = "/api/v1/events"
)

// UserHomes returns the route for a user's home collection.
func UserHomes(uuid string) string {
	return fmt.Sprintf("/api/v1/users/%s/homes", url.PathEscape(uuid))
}

// UserHome returns the route for a single named home.
func UserHome(uuid, name string) string {
	return fmt.Sprintf("/api/v1/users/%s/homes/%s", url.PathEscape(uuid), url.PathEscape(name))
}

// UserSlots returns the route for a user's home slot limit.
func UserSlots(uuid string) string {
	return fmt.Sprintf("/api/v1/users/%s/slots", url.PathEscape(uuid))
}

// Warp returns the route for a single named warp.
func Warp(name string) string {
	return fmt.Sprintf("/api/v1/warps/%s", url.PathEscape(name))
}

// Websocket derives the event feed endpoint from an HTTP base URL, switching
// the scheme to its websocket counterpart.
func Websocket(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + Events
	return u.String(), nil
}
