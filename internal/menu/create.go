package menu

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"homeport/internal/logging"
	"homeport/internal/waypoints"
)

// openCreate starts the guided create workflow. The slot limit is
// checked against the store first; the session's copy may be stale the
// moment a rank change or purchase lands server-side.
func (m Model) openCreate() (tea.Model, tea.Cmd) {
	if !m.Session.AllowCreate {
		return m, nil
	}
	return m, checkSlotsCmd(m.Store, m.Session.Viewer)
}

// handleSlotChecked opens the name prompt if the live limit allows
// another entry. The fetched value replaces the session's display copy
// either way. The list stays suspended underneath the prompt until the
// rebuilt session arrives or the viewer backs out.
func (m Model) handleSlotChecked(msg slotCheckedMsg) (tea.Model, tea.Cmd) {
	m.Session.MaxEntries = msg.max
	if m.Session.AtLimit() {
		m.StatusMessage = m.Locales.Get("add_button_disabled")
		return m, nil
	}

	m.Sounds.Play(ActionClick)
	m.Creating = true
	m.CreateError = ""
	m.StatusMessage = ""
	m.NameInput.SetValue(m.Locales.Get("add_home_default_name"))
	m.NameInput.Focus()
	return m, textinput.Blink
}

// updateCreate handles keys while the name prompt is open.
func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.Refreshing {
			// The entry was already created; the prompt stays until
			// the rebuilt session replaces it.
			return m, nil
		}
		m.Creating = false
		m.CreateError = ""
		m.NameInput.Blur()
		return m, nil

	case "enter":
		if m.Refreshing {
			return m, nil
		}
		name := m.NameInput.Value()

		// Reject locally before anything touches the network.
		if err := waypoints.ValidateName(name); err != nil {
			m.CreateError = waypoints.UserMessage(err)
			return m, nil
		}

		m.CreateError = ""
		logging.LogMenuEvent(m.Session.Viewer.Name, "creating entry "+waypoints.NormalizeName(name))
		return m, createEntryCmd(m.Store, m.Session.Owner, name, m.ViewerPosition)
	}

	var cmd tea.Cmd
	m.NameInput, cmd = m.NameInput.Update(msg)
	return m, cmd
}

// handleCreateDone reacts to the store's answer to the create call.
func (m Model) handleCreateDone(msg createDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if waypoints.IsValidation(msg.err) {
			// Re-prompt inline with the store's wording.
			m.CreateError = waypoints.UserMessage(msg.err)
			return m, nil
		}
		logging.Error("entry creation failed: " + msg.err.Error())
		m.Creating = false
		m.NameInput.Blur()
		m.StatusMessage = waypoints.UserMessage(msg.err)
		return m, nil
	}

	// Created. Hold the prompt open as a progress surface until the
	// rebuilt session is ready.
	m.Refreshing = true
	m.CreateError = ""
	m.StatusMessage = "Created " + msg.entry.Name + ", refreshing..."
	return m, settleCmd()
}
