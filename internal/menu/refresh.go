package menu

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"homeport/internal/logging"
	"homeport/internal/waypoints"
)

// SettleDelay is how long to wait after a successful mutation before
// re-fetching, giving the store time to propagate the write.
const SettleDelay = 500 * time.Millisecond

// Message types for async operations
type settleTickMsg struct{}

type sessionRebuiltMsg struct {
	entries []waypoints.Entry
	max     int
}

type refreshFailedMsg struct {
	err error
}

type createDoneMsg struct {
	entry *waypoints.Entry
	err   error
}

type deleteDoneMsg struct {
	name string
	err  error
}

type teleportDoneMsg struct {
	err error
}

type entriesChangedMsg struct{}

type slotCheckedMsg struct {
	max int
}

// settleCmd schedules the post-write re-fetch after the settle delay.
func settleCmd() tea.Cmd {
	return tea.Tick(SettleDelay, func(time.Time) tea.Msg {
		return settleTickMsg{}
	})
}

// fetchEntriesCmd re-fetches the menu's collection and, for a personal
// homes menu, the viewer's live slot limit. This is the single refresh
// path both create and delete funnel through.
func fetchEntriesCmd(store Store, source Source, owner, viewer waypoints.User) tea.Cmd {
	return func() tea.Msg {
		var entries []waypoints.Entry
		var err error
		switch source {
		case SourcePublic:
			entries, err = store.FetchPublicEntries()
		case SourceWarps:
			entries, err = store.FetchWarps()
		default:
			entries, err = store.FetchEntries(owner)
		}
		if err != nil {
			return refreshFailedMsg{err: err}
		}

		// Slot limits only apply to personal homes.
		max := -1
		if source == SourceHomes {
			max, err = store.MaxEntries(viewer)
			if err != nil {
				// The entry list is the menu's substance; show it even
				// when the slot limit is unavailable.
				logging.Warn("failed to fetch slot limit: " + err.Error())
				max = -1
			}
		}

		return sessionRebuiltMsg{entries: entries, max: max}
	}
}

// checkSlotsCmd fetches the viewer's slot limit at the moment the add
// control is activated. The limit is live on the server; the copy on
// the session is only a display value.
func checkSlotsCmd(store Store, viewer waypoints.User) tea.Cmd {
	return func() tea.Msg {
		max, err := store.MaxEntries(viewer)
		if err != nil {
			logging.Warn("failed to fetch slot limit: " + err.Error())
			max = -1
		}
		return slotCheckedMsg{max: max}
	}
}

// createEntryCmd issues the creation call against the store.
func createEntryCmd(store Store, owner waypoints.User, name string, pos waypoints.Position) tea.Cmd {
	return func() tea.Msg {
		entry, err := store.CreateEntry(owner, name, pos)
		return createDoneMsg{entry: entry, err: err}
	}
}

// deleteEntryCmd issues the deletion call against the store.
func deleteEntryCmd(store Store, entry waypoints.Entry) tea.Cmd {
	return func() tea.Msg {
		err := store.DeleteEntry(entry)
		return deleteDoneMsg{name: entry.Name, err: err}
	}
}

// beginTeleportCmd asks the store to start a timed teleport.
func beginTeleportCmd(store Store, viewer waypoints.User, target waypoints.Position) tea.Cmd {
	return func() tea.Msg {
		err := store.BeginTeleport(viewer, target)
		return teleportDoneMsg{err: err}
	}
}

// watchChangesCmd waits for the next store-side change event and turns
// it into an entriesChangedMsg on the update loop.
func watchChangesCmd(events <-chan waypoints.ChangeEvent, owner waypoints.User) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		for event := range events {
			if event.OwnerUUID == "" || event.OwnerUUID == owner.UUID {
				return entriesChangedMsg{}
			}
		}
		return nil
	}
}
