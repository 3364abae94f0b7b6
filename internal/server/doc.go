// Package server implements the built-in waypoint store server.
//
// The server is an in-memory store exposing the same HTTP API the client in
// internal/waypoints speaks, so a full create/delete/teleport round trip can
// be exercised without a production store. It is meant for development,
// demos, and small self-hosted setups; nothing is persisted across restarts.
//
// # Surfaces
//
//   - REST routes for homes, warps, public homes, slot limits, and teleports
//     (paths defined in internal/urls)
//   - a websocket event feed at /api/v1/events broadcasting entries_changed
//     events after every mutation
//   - optional mDNS announcement so `homeport scan` discovers the instance
//
// # Usage
//
//	srv := server.New(&server.Config{Port: 8455, Announce: true})
//	srv.Store().AddWarp("Spawn", pos, "The spawn point")
//	err := srv.Start() // blocks until SIGINT/SIGTERM
//
// When a bearer token is configured every route requires it, including the
// event feed.
package server
