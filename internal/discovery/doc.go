// Package discovery provides mDNS-based discovery of waypoint servers.
//
// This package implements multicast DNS (mDNS) service discovery to
// automatically locate waypoint servers on the local network. Servers
// advertise themselves using the "_waypoints._tcp" service type.
//
// # Discovery Process
//
// The discovery process works as follows:
//  1. Broadcasts mDNS queries on the local network
//  2. Listens for service advertisements from waypoint servers
//  3. Collects server information (instance name, IP, port, TXT metadata)
//  4. Returns a list of discovered servers after the timeout period
//
// # Usage Example
//
//	// Discover servers with 10-second timeout
//	servers, err := discovery.ScanForServers(10 * time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, server := range servers {
//	    fmt.Printf("Found: %s at %s\n", server.Name, server.BaseURL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Servers must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions can run
// simultaneously without interference.
package discovery
