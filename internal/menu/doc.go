// Package menu implements the interactive grid menu over waypoint
// entries: homes, warps, and public homes.
//
// # Session model
//
// A Session is one immutable snapshot of the entries fetched from the
// store, sorted for display. All interaction (mode switching, sort
// toggling, paging, filtering) happens against that snapshot. After any
// store mutation the whole Session is thrown away and rebuilt from a
// fresh fetch; nothing ever patches an entry list in place. This keeps
// the menu trivially consistent with the store at the cost of one
// re-fetch per write.
//
// # Grid
//
// The menu is a fixed 9-column grid of 2 to 6 rows. The last row is
// the control row (page navigation, mode buttons, add, sort, entry
// count); the rows above it hold entries, so a page fits
// (rows-1) * 9 entries and every entry appears on exactly one page.
//
// # Modes
//
// ModeTeleport makes activating an entry dismiss the menu and start a
// timed teleport. ModeDelete makes it open a two-step confirmation.
// Confirming issues the deletion and then runs the refresh path;
// cancelling restores the untouched parent snapshot.
//
// # Refresh path
//
// Create and delete funnel through the same orchestration: the
// mutating call resolves, a settle delay gives the store time to
// propagate, then the entry list and slot limit are re-fetched and a
// brand-new Session replaces the old one. If that re-fetch fails the
// failure is logged and the menu stays dismissed rather than reopening
// over data known to be stale.
package menu
