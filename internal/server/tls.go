package server

import "crypto/tls"

// newTLSConfig returns the TLS settings used when the server is given a
// certificate. Certificates themselves are loaded by net/http from the
// configured file paths.
func newTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}
