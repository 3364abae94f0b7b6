package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"homeport/internal/waypoints"
)

// Control row slot positions, mirroring the fixed button order:
// previous page, teleport mode, add, sort, delete mode, next page,
// entry count, then filler.
const (
	controlPrev = iota
	controlTeleportMode
	controlAdd
	controlSort
	controlDeleteMode
	controlNext
	controlCount
)

// View renders the menu.
func (m Model) View() string {
	if m.Quitting {
		if m.StatusMessage != "" {
			return m.StatusMessage + "\n"
		}
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Session.Title))
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render(m.statusLine()))
	b.WriteString("\n\n")

	if m.Confirming {
		b.WriteString(m.renderConfirm())
	} else {
		b.WriteString(m.renderGrid())

		if detail := m.renderDetail(); detail != "" {
			b.WriteString("\n")
			b.WriteString(detail)
		}
	}

	if m.Creating {
		b.WriteString("\n")
		b.WriteString(m.renderCreate())
	}

	if m.Filtering {
		b.WriteString("\n")
		b.WriteString("/" + m.FilterInput.View())
	}

	if m.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.StatusMessage))
	}

	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))
	b.WriteString("\n")

	return b.String()
}

// statusLine summarizes mode, sort, page, and any active filter.
func (m Model) statusLine() string {
	sortLabel := m.Locales.Get("sort_ascending")
	if m.Session.Sort == SortDescending {
		sortLabel = m.Locales.Get("sort_descending")
	}

	line := fmt.Sprintf("mode: %s   sort: %s   page %d/%d",
		m.Session.Mode, sortLabel, m.Session.Page+1, m.Session.PageCount())

	if m.Session.Filter != "" {
		line += fmt.Sprintf("   filter: %q (%d match)", m.Session.Filter, m.Session.VisibleCount())
	}
	if m.Refreshing {
		line += "   refreshing..."
	}
	return line
}

// renderGrid draws the entry rows and the control row.
func (m Model) renderGrid() string {
	var b strings.Builder

	entries := m.Session.PageEntries()
	capacity := m.Session.Capacity()

	for slot := 0; slot < capacity; slot++ {
		if slot > 0 && slot%Columns == 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderEntrySlot(entries, slot))
	}

	b.WriteString("\n")
	b.WriteString(m.renderControlRow(capacity))

	return b.String()
}

// renderEntrySlot draws one cell of the entry area.
func (m Model) renderEntrySlot(entries []waypoints.Entry, slot int) string {
	selected := m.Cursor == slot

	if slot >= len(entries) {
		glyph := m.Icons.ForRole("filler")
		style := FillerStyle
		if m.Session.Mode == ModeDelete {
			style = DeleteFillerStyle
		}
		if selected {
			style = SelectedSlotStyle
		}
		return style.Render(glyph)
	}

	entry := entries[slot]
	label := m.Icons.ForEntry(entry) + " " + truncate(entry.Name, SlotWidth-3)

	switch {
	case selected && m.Session.Mode == ModeDelete:
		return SelectedDeleteSlotStyle.Render(label)
	case selected:
		return SelectedSlotStyle.Render(label)
	default:
		return SlotStyle.Render(label)
	}
}

// renderControlRow draws the fixed button row.
func (m Model) renderControlRow(capacity int) string {
	cells := make([]string, Columns)

	for col := 0; col < Columns; col++ {
		selected := m.Cursor == capacity+col
		cells[col] = m.renderControlSlot(col, selected)
	}

	return strings.Join(cells, "")
}

func (m Model) renderControlSlot(col int, selected bool) string {
	style := func(active bool) lipgloss.Style {
		if selected {
			return SelectedControlStyle
		}
		if !active {
			return DisabledControlStyle
		}
		return ControlStyle
	}

	switch col {
	case controlPrev:
		return style(m.Session.Page > 0).Render(m.Icons.ForRole("prev_page") + " prev")

	case controlTeleportMode:
		label := m.Icons.ForRole("mode_teleport") + " tp"
		if m.Session.Mode == ModeTeleport {
			label += "*"
		}
		return style(true).Render(label)

	case controlAdd:
		if !m.Session.AllowCreate {
			return FillerStyle.Render("")
		}
		return style(m.Session.CanCreate()).Render(m.Icons.ForRole("add") + " add")

	case controlSort:
		arrow := m.Locales.Get("sort_ascending")
		if m.Session.Sort == SortDescending {
			arrow = m.Locales.Get("sort_descending")
		}
		return style(true).Render(m.Icons.ForRole("sort") + " " + arrow)

	case controlDeleteMode:
		if !m.Session.CanDelete() {
			// Read-only menus (public homes) have no delete control
			return FillerStyle.Render("")
		}
		label := m.Icons.ForRole("mode_delete") + " del"
		if m.Session.Mode == ModeDelete {
			label += "*"
		}
		return style(true).Render(label)

	case controlNext:
		return style(m.Session.Page+1 < m.Session.PageCount()).Render(m.Icons.ForRole("next_page") + " next")

	case controlCount:
		max := "?"
		if m.Session.MaxEntries >= 0 {
			max = fmt.Sprintf("%d", m.Session.MaxEntries)
		}
		return StatusStyle.Width(SlotWidth).Render(
			m.Locales.Get("entry_count", fmt.Sprintf("%d", len(m.Session.Entries)), max))

	default:
		return FillerStyle.Render("")
	}
}

// renderDetail draws the detail pane for the entry under the cursor.
func (m Model) renderDetail() string {
	entries := m.Session.PageEntries()
	if m.Cursor >= len(entries) || m.Cursor >= m.Session.Capacity() {
		return ""
	}
	entry := entries[m.Cursor]

	var lines []string
	lines = append(lines, TitleStyle.Render(entry.Name))

	description := entry.Description
	if description == "" {
		description = m.Locales.Get("item_description_blank")
	}
	for _, wrapped := range m.Locales.Wrap(description) {
		lines = append(lines, m.Locales.Get("item_description", wrapped))
	}

	lines = append(lines,
		m.Locales.Get("item_coordinates", entry.Position.String()),
		m.Locales.Get("item_server", entry.Position.Server),
	)

	hint := m.Locales.Get("item_click_teleport")
	if m.Session.Mode == ModeDelete {
		hint = m.Locales.Get("item_click_delete")
	}
	lines = append(lines, StatusStyle.Render(hint))

	style := DetailStyle
	if m.Width > 0 {
		style = style.MaxWidth(m.Width)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderConfirm draws the 3x9 delete confirmation grid: confirm on the
// left, cancel on the right, filler everywhere else.
func (m Model) renderConfirm() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Locales.Get("delete_home_title", m.ConfirmTarget.Name)))
	b.WriteString("\n\n")

	for row := 0; row < 3; row++ {
		for col := 0; col < Columns; col++ {
			switch {
			case row == 1 && col == 1:
				label := m.Icons.ForRole("confirm_yes") + " " + m.Locales.Get("delete_confirm_button")
				if m.ConfirmCursor == 0 {
					b.WriteString(SelectedControlStyle.Width(2 * SlotWidth).Render("→ " + label))
				} else {
					b.WriteString(ConfirmYesStyle.Width(2 * SlotWidth).Render("  " + label))
				}
				// The label spans the neighboring cell
			case row == 1 && col == 2:
				continue
			case row == 1 && col == 7:
				label := m.Icons.ForRole("confirm_no") + " " + m.Locales.Get("delete_cancel_button")
				if m.ConfirmCursor == 1 {
					b.WriteString(SelectedControlStyle.Width(2 * SlotWidth).Render("→ " + label))
				} else {
					b.WriteString(ConfirmNoStyle.Width(2 * SlotWidth).Render("  " + label))
				}
			case row == 1 && col == 8:
				continue
			default:
				b.WriteString(FillerStyle.Render(m.Icons.ForRole("filler")))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderCreate draws the name prompt for the create workflow.
func (m Model) renderCreate() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.Locales.Get("add_home_title")))
	b.WriteString("\n")
	b.WriteString(m.NameInput.View())
	b.WriteString("\n")

	if m.CreateError != "" {
		b.WriteString(ErrorTextStyle.Render(m.CreateError))
		b.WriteString("\n")
	}

	if m.Refreshing {
		b.WriteString(StatusStyle.Render("Creating..."))
	} else {
		b.WriteString(HelpStyle.Render("enter: create   esc: cancel"))
	}

	return b.String()
}

// truncate shortens a name to fit a slot, rune-safe.
func truncate(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}
