// Package urls defines the waypoint store's API routes in one place.
//
// The client, the change watcher, and the built-in server all speak the same
// paths; keeping them here means a route change happens in a single location
// instead of hunting through request and handler code.
//
// Usage:
//
//	import "homeport/internal/urls"
//
//	resp, err := httpClient.Get(baseURL + urls.UserHomes(owner.UUID))
package urls
