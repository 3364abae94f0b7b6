package menu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"homeport/internal/config"
	"homeport/internal/icons"
	"homeport/internal/locales"
	"homeport/internal/logging"
	"homeport/internal/waypoints"
)

// Model is the bubbletea model for the list menu. It owns the current
// Session snapshot and the modal sub-flows (delete confirmation, create
// prompt, name filter) layered on top of it.
type Model struct {
	Session  *Session
	Store    Store
	Registry *config.Registry
	Locales  *locales.Locales
	Icons    *icons.Resolver
	Sounds   *Notifier

	// Source selects which collection a refresh re-fetches. The zero
	// value is the viewer's own homes.
	Source Source

	// Position the viewer is standing at, used for new entries
	ViewerPosition waypoints.Position

	// Store-side change feed; nil when the watcher is unavailable
	Events <-chan waypoints.ChangeEvent

	// Cursor is a linear slot index on the current page grid.
	// Indices below Capacity() address entry slots, the rest the
	// control row.
	Cursor int

	Width  int
	Height int

	// Delete confirmation state
	Confirming    bool
	ConfirmTarget waypoints.Entry
	ConfirmCursor int // 0 = confirm, 1 = cancel

	// Create workflow state
	Creating    bool
	NameInput   textinput.Model
	CreateError string

	// Name filter state
	Filtering   bool
	FilterInput textinput.Model

	// Refreshing is set between a successful mutation and the arrival
	// of the rebuilt session
	Refreshing bool

	StatusMessage string
	Quitting      bool

	Help help.Model
	Keys listKeyMap
}

// New assembles a menu model over an already-built session.
func New(store Store, registry *config.Registry, loc *locales.Locales, resolver *icons.Resolver, session *Session, viewerPos waypoints.Position, events <-chan waypoints.ChangeEvent) Model {
	// No CharLimit on the input: over-long names go through the same
	// validation as every other bad name and re-prompt with a message.
	nameInput := textinput.New()
	nameInput.Placeholder = loc.Get("add_home_default_name")
	nameInput.Width = 24

	filterInput := textinput.New()
	filterInput.Placeholder = "filter by name"
	filterInput.Width = 24

	// Until the first WindowSizeMsg arrives the terminal size comes
	// straight from the tty.
	width := GetTerminalWidth()
	helpModel := help.New()
	helpModel.Width = width

	return Model{
		Session:        session,
		Store:          store,
		Registry:       registry,
		Locales:        loc,
		Icons:          resolver,
		Sounds:         NewNotifier(registry),
		ViewerPosition: viewerPos,
		Events:         events,
		NameInput:      nameInput,
		FilterInput:    filterInput,
		ConfirmCursor:  1,
		Width:          width,
		Help:           helpModel,
		Keys:           newListKeyMap(),
	}
}

// Init starts the store change watcher, when one is attached.
func (m Model) Init() tea.Cmd {
	return watchChangesCmd(m.Events, m.Session.Owner)
}

// Update handles all messages for the menu.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Confirming {
			return m.updateConfirm(msg)
		}
		if m.Creating {
			return m.updateCreate(msg)
		}
		if m.Filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)

	case slotCheckedMsg:
		return m.handleSlotChecked(msg)

	case createDoneMsg:
		return m.handleCreateDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)

	case teleportDoneMsg:
		// The menu is already dismissed; a refused teleport is the
		// store's business, not the menu's. Log it and finish.
		if msg.err != nil {
			logging.Warn("teleport not executed: " + msg.err.Error())
		}
		return m, tea.Quit

	case settleTickMsg:
		return m, fetchEntriesCmd(m.Store, m.Source, m.Session.Owner, m.Session.Viewer)

	case sessionRebuiltMsg:
		return m.handleSessionRebuilt(msg)

	case refreshFailedMsg:
		// The snapshot is stale and a fresh one could not be fetched.
		// Do not reopen a menu over data known to be wrong.
		logging.LogRefresh(m.Session.Owner.Name, 0, msg.err)
		m.Quitting = true
		return m, tea.Quit

	case entriesChangedMsg:
		if m.Refreshing || m.Confirming || m.Creating {
			// A refresh is already pending or a sub-flow is open;
			// re-arm the watcher and pick the change up next time.
			return m, watchChangesCmd(m.Events, m.Session.Owner)
		}
		m.Refreshing = true
		return m, tea.Batch(
			fetchEntriesCmd(m.Store, m.Source, m.Session.Owner, m.Session.Viewer),
			watchChangesCmd(m.Events, m.Session.Owner),
		)
	}

	return m, nil
}

// updateList handles keys while the plain list is showing.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor >= Columns {
			m.Cursor -= Columns
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor+Columns < m.Session.Rows*Columns {
			m.Cursor += Columns
		}
		return m, nil

	case key.Matches(msg, m.Keys.Left):
		if m.Cursor%Columns > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, m.Keys.Right):
		if m.Cursor%Columns < Columns-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, m.Keys.PrevPage):
		if m.Session.PrevPage() {
			m.Sounds.Play(ActionPageTurn)
			m.Cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.Keys.NextPage):
		if m.Session.NextPage() {
			m.Sounds.Play(ActionPageTurn)
			m.Cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.Keys.TeleportMode):
		return m.setMode(ModeTeleport), nil

	case key.Matches(msg, m.Keys.DeleteMode):
		return m.setMode(ModeDelete), nil

	case key.Matches(msg, m.Keys.SortToggle):
		m.Sounds.Play(ActionClick)
		m.Session = m.Session.Resorted()
		m.Cursor = 0
		return m, nil

	case key.Matches(msg, m.Keys.Add):
		return m.openCreate()

	case key.Matches(msg, m.Keys.Filter):
		m.Filtering = true
		m.FilterInput.SetValue(m.Session.Filter)
		m.FilterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.Keys.Select):
		return m.activateSlot()
	}

	return m, nil
}

// setMode switches the interaction mode. Mode is a property of the
// current snapshot's presentation; it never touches the store.
func (m Model) setMode(mode Mode) Model {
	if mode == ModeDelete && !m.Session.CanDelete() {
		return m
	}
	if m.Session.Mode != mode {
		m.Sounds.Play(ActionClick)
		m.Session.Mode = mode
		logging.LogMenuEvent(m.Session.Viewer.Name, "mode switched to "+mode.String())
	}
	return m
}

// activateSlot acts on the slot under the cursor.
func (m Model) activateSlot() (tea.Model, tea.Cmd) {
	capacity := m.Session.Capacity()

	if m.Cursor < capacity {
		entries := m.Session.PageEntries()
		if m.Cursor >= len(entries) {
			return m, nil
		}
		return m.activateEntry(entries[m.Cursor])
	}

	switch m.Cursor - capacity {
	case controlPrev:
		if m.Session.PrevPage() {
			m.Sounds.Play(ActionPageTurn)
			m.Cursor = 0
		}
	case controlTeleportMode:
		return m.setMode(ModeTeleport), nil
	case controlAdd:
		return m.openCreate()
	case controlSort:
		m.Sounds.Play(ActionClick)
		m.Session = m.Session.Resorted()
		m.Cursor = 0
	case controlDeleteMode:
		return m.setMode(ModeDelete), nil
	case controlNext:
		if m.Session.NextPage() {
			m.Sounds.Play(ActionPageTurn)
			m.Cursor = 0
		}
	}

	return m, nil
}

// activateEntry teleports to or starts deleting the entry, depending
// on the current mode.
func (m Model) activateEntry(entry waypoints.Entry) (tea.Model, tea.Cmd) {
	switch m.Session.Mode {
	case ModeDelete:
		m.Sounds.Play(ActionClick)
		m.Confirming = true
		m.ConfirmTarget = entry
		m.ConfirmCursor = 1
		return m, nil

	default:
		// Dismiss the menu first, then teleport; the viewer is done
		// with the list either way.
		m.Sounds.Play(ActionTeleport)
		m.Quitting = true
		m.StatusMessage = "Teleporting to " + entry.Name + "..."
		logging.LogMenuEvent(m.Session.Viewer.Name, "teleport to "+entry.Name)
		return m, beginTeleportCmd(m.Store, m.Session.Viewer, entry.Position)
	}
}

// handleSessionRebuilt installs the freshly fetched snapshot. The old
// session is discarded wholesale; mode and sort return to their
// defaults, as when the menu is first opened.
func (m Model) handleSessionRebuilt(msg sessionRebuiltMsg) (tea.Model, tea.Cmd) {
	old := m.Session
	m.Session = NewSession(
		old.Title, old.Viewer, old.Owner,
		msg.entries, old.Rows, msg.max, old.AllowCreate,
		ModeTeleport, SortAscending,
	)
	m.Refreshing = false
	m.Creating = false
	m.CreateError = ""
	m.NameInput.Blur()
	m.Cursor = 0
	m.StatusMessage = ""
	logging.LogRefresh(old.Owner.Name, len(msg.entries), nil)
	return m, nil
}
