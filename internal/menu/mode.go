package menu

// Mode determines what activating an entry slot does.
type Mode int

const (
	// ModeTeleport makes entry slots teleport the viewer.
	ModeTeleport Mode = iota
	// ModeDelete makes entry slots open a delete confirmation.
	ModeDelete
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeDelete:
		return "delete"
	default:
		return "teleport"
	}
}

// Sort is the alphabetical ordering applied to a session's entries.
type Sort int

const (
	// SortAscending orders entries A to Z.
	SortAscending Sort = iota
	// SortDescending orders entries Z to A.
	SortDescending
)

// Toggle returns the opposite ordering.
func (s Sort) Toggle() Sort {
	if s == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// String returns a human-readable sort name.
func (s Sort) String() string {
	if s == SortDescending {
		return "descending"
	}
	return "ascending"
}
