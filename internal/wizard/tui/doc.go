// Package tui implements the first-run setup wizard.
//
// The wizard walks through finding a waypoint server and saving it to the
// settings file: an mDNS scan of the local network, a selectable list of
// discovered servers (or manual address entry when discovery comes up
// empty), an optional access token, and an atomic settings write.
//
// Built on Bubble Tea with immutable state updates; the single SetupModel
// moves through phases (scanning, results, manual, token, done) rather than
// swapping between screen models. The Scan and Save fields are function
// values so tests can drive the full flow without a network or a home
// directory.
package tui
