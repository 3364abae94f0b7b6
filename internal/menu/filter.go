package menu

import tea "github.com/charmbracelet/bubbletea"

// updateFilter handles keys while the name filter line is open. The
// filter narrows the current snapshot only; it never mutates it.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Filtering = false
		m.FilterInput.Blur()
		m.Session.SetFilter("")
		m.Cursor = 0
		return m, nil

	case "enter":
		m.Filtering = false
		m.FilterInput.Blur()
		m.Session.SetFilter(m.FilterInput.Value())
		m.Cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	return m, cmd
}
