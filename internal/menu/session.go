package menu

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"homeport/internal/waypoints"
)

// Columns is the fixed width of the menu grid.
const Columns = 9

// Session is one immutable snapshot of the menu: the entries fetched
// from the store, ordered for display, plus the interaction state that
// applies to them. After any mutation the whole Session is replaced by
// a freshly built one; a Session is never patched in place.
type Session struct {
	Title       string
	Viewer      waypoints.User
	Owner       waypoints.User
	Entries     []waypoints.Entry
	Mode        Mode
	Sort        Sort
	Page        int
	Rows        int // total grid rows, including the control row
	MaxEntries  int // live slot limit, -1 when unknown
	AllowCreate bool
	Filter      string
}

// NewSession builds a session over a copy of the given entries, sorted
// by name. Names compare byte-wise by code point, so "Base" < "Cave" <
// "base2". The sort is stable: entries with equal names keep the order
// the store returned them in. Descending order is the exact reverse of
// ascending.
func NewSession(title string, viewer, owner waypoints.User, entries []waypoints.Entry, rows, maxEntries int, allowCreate bool, mode Mode, sortOrder Sort) *Session {
	sorted := make([]waypoints.Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	if sortOrder == SortDescending {
		reverse(sorted)
	}

	if rows < 2 {
		rows = 2
	}
	if rows > 6 {
		rows = 6
	}

	return &Session{
		Title:       title,
		Viewer:      viewer,
		Owner:       owner,
		Entries:     sorted,
		Mode:        mode,
		Sort:        sortOrder,
		Rows:        rows,
		MaxEntries:  maxEntries,
		AllowCreate: allowCreate,
	}
}

// Resorted returns a fresh session over the same snapshot with the
// opposite ordering and the page reset to the first. An active name
// filter keeps narrowing the reordered list.
func (s *Session) Resorted() *Session {
	next := NewSession(s.Title, s.Viewer, s.Owner, s.Entries, s.Rows, s.MaxEntries, s.AllowCreate, s.Mode, s.Sort.Toggle())
	next.Filter = s.Filter
	return next
}

// Capacity returns how many entries fit on one page. The control row
// occupies the last row, so capacity is (Rows-1) * Columns.
func (s *Session) Capacity() int {
	return (s.Rows - 1) * Columns
}

// visible returns the entries after the name filter, in display order.
func (s *Session) visible() []waypoints.Entry {
	if s.Filter == "" {
		return s.Entries
	}
	matched := make([]waypoints.Entry, 0, len(s.Entries))
	for _, entry := range s.Entries {
		if fuzzy.MatchFold(s.Filter, entry.Name) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// VisibleCount returns how many entries pass the current filter.
func (s *Session) VisibleCount() int {
	return len(s.visible())
}

// PageCount returns how many pages the current snapshot occupies.
// An empty menu still has one page.
func (s *Session) PageCount() int {
	n := len(s.visible())
	if n == 0 {
		return 1
	}
	return (n + s.Capacity() - 1) / s.Capacity()
}

// PageEntries returns the slice of entries shown on the current page.
// Every entry appears on exactly one page.
func (s *Session) PageEntries() []waypoints.Entry {
	visible := s.visible()
	start := s.Page * s.Capacity()
	if start >= len(visible) {
		return nil
	}
	end := start + s.Capacity()
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// NextPage advances to the next page if one exists. Reports whether
// the page changed.
func (s *Session) NextPage() bool {
	if s.Page+1 >= s.PageCount() {
		return false
	}
	s.Page++
	return true
}

// PrevPage moves to the previous page if one exists. Reports whether
// the page changed.
func (s *Session) PrevPage() bool {
	if s.Page == 0 {
		return false
	}
	s.Page--
	return true
}

// SetFilter applies a name filter to the snapshot and resets the page.
// The filter narrows what is shown; it never mutates the snapshot.
func (s *Session) SetFilter(filter string) {
	s.Filter = filter
	s.Page = 0
}

// AtLimit reports whether the viewer has used every entry slot the
// store grants them. Unknown limits never block creation.
func (s *Session) AtLimit() bool {
	return s.MaxEntries >= 0 && len(s.Entries) >= s.MaxEntries
}

// CanCreate reports whether the add control is active: the menu allows
// creation and the viewer is under their slot limit.
func (s *Session) CanCreate() bool {
	return s.AllowCreate && !s.AtLimit()
}

// CanDelete reports whether the delete mode is available. Read-only
// views (public homes, warp lists for regular viewers) are
// teleport-only.
func (s *Session) CanDelete() bool {
	return s.AllowCreate || s.Owner == s.Viewer
}

func reverse(entries []waypoints.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
