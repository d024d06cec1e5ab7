package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateFilter && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var content string
	switch m.state {
	case StateBrowse:
		content = m.browser.View()
	case StateCalendar:
		content = m.calendar.View()
	}

	sections := []string{m.viewTabs()}
	if banner := m.viewConflict(); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections, content)
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Browse", "Calendar"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConflict() string {
	if m.selection.Conflict == nil {
		return ""
	}
	c := m.selection.Conflict
	return conflictStyle.Render(fmt.Sprintf(
		"Time Conflict Detected: %q conflicts with %q",
		c.Candidate.Title, c.Conflicting.Title))
}
