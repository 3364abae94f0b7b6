package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"homeport/internal/logging"
	"homeport/internal/waypoints"
)

// updateConfirm handles keys while the delete confirmation is showing.
// The parent session is retained untouched underneath; cancelling
// restores it exactly, with no fetch and no re-sort.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.Confirming = false
		return m, nil

	case "left", "h":
		m.ConfirmCursor = 0
		return m, nil

	case "right", "l":
		m.ConfirmCursor = 1
		return m, nil

	case "y":
		return m.confirmDelete()

	case "enter":
		if m.ConfirmCursor == 0 {
			return m.confirmDelete()
		}
		m.Confirming = false
		return m, nil
	}

	return m, nil
}

// confirmDelete dismisses the confirmation and issues the deletion.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	m.Sounds.Play(ActionClick)
	m.Confirming = false
	m.Refreshing = true
	m.StatusMessage = "Deleting " + m.ConfirmTarget.Name + "..."
	logging.LogMenuEvent(m.Session.Viewer.Name, "deleting entry "+m.ConfirmTarget.Name)
	return m, deleteEntryCmd(m.Store, m.ConfirmTarget)
}

// handleDeleteDone reacts to the store's answer to the delete call.
func (m Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// A rejected deletion leaves the confirmation dismissed and
		// the stale list showing; the viewer sees why in the status
		// line.
		logging.Error("failed to delete " + msg.name + ": " + msg.err.Error())
		m.Refreshing = false
		m.StatusMessage = waypoints.UserMessage(msg.err)
		return m, nil
	}

	m.StatusMessage = "Deleted " + msg.name + ", refreshing..."
	return m, settleCmd()
}
