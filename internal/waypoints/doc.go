// Package waypoints provides the client for the waypoint store's HTTP API.
//
// This package implements the data model and transport for saved locations
// ("entries": per-player homes and server-wide warps), name validation, the
// error taxonomy shared by the menu, and an optional websocket watcher for
// store-side change notifications.
//
// # Authoritative store
//
// The store owns every entry for its entire lifetime. Clients receive
// snapshots from FetchEntries and must treat them as stale the moment a
// mutation is issued: the store applies side effects (slot-limit enforcement,
// admin deletions, cross-server sync) that are invisible locally. The menu
// layer re-fetches after every write instead of patching snapshots.
//
// # Usage Example
//
//	client := waypoints.NewClient("http://play.example.net:8455", token)
//
//	entries, err := client.FetchEntries(owner)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry, err := client.CreateEntry(owner, "MyHome", viewerPos)
//	if waypoints.IsValidation(err) {
//	    // duplicate or invalid name: show err's message inline and re-prompt
//	}
//
// # Error Handling
//
// All failures are *waypoints.Error values with a Kind. Validation errors
// carry wording meant for the viewer; IsValidation, IsTeleport and IsNetwork
// classify errors across wrapping.
package waypoints
