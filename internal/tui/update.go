package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dishpanda/nicar-scheduler/internal/ics"
	"github.com/dishpanda/nicar-scheduler/internal/models"
	"github.com/dishpanda/nicar-scheduler/internal/schedule"
	"github.com/dishpanda/nicar-scheduler/internal/selection"
	"github.com/dishpanda/nicar-scheduler/internal/tui/components/browser"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 6
		m.browser.SetSize(msg.Width-4, contentHeight)
		m.calendar.SetSize(msg.Width-4, contentHeight)
		return m, nil

	case browser.ToggleMsg:
		return m.toggleSession(msg.Session)

	case browser.ExpandMsg:
		m.selection = selection.ToggleExpanded(m.selection, msg.ID)
		m.refresh()
		return m, nil
	}

	if m.state == StateFilter {
		return m.updateFilterForm(msg)
	}

	typing := m.state == StateBrowse && m.browser.Filtering()
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !typing {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab), key.Matches(keyMsg, m.keys.ShiftTab):
			if m.state == StateBrowse {
				m.state = StateCalendar
			} else {
				m.state = StateBrowse
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(keyMsg, m.keys.Filter):
			m.previousState = m.state
			m.state = StateFilter
			m.newFilterForm()
			return m, m.form.Init()
		case key.Matches(keyMsg, m.keys.Export):
			return m.exportSelection()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateBrowse:
		m.browser, cmd = m.browser.Update(msg)
	case StateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

// toggleSession runs the conflict engine for one selection attempt. The
// TUI refuses canceled sessions before the engine ever sees them.
func (m Model) toggleSession(sess models.Session) (tea.Model, tea.Cmd) {
	if bool(sess.Canceled) {
		m.status = "Canceled sessions cannot be selected"
		return m, nil
	}

	var outcome selection.Outcome
	m.selection, outcome = selection.Toggle(m.selection, sess, m.store)

	switch outcome {
	case selection.OutcomeAdded:
		m.status = fmt.Sprintf("Added %q (%d selected)", sess.Title, len(m.selection.Selected))
	case selection.OutcomeRemoved:
		m.status = fmt.Sprintf("Removed %q (%d selected)", sess.Title, len(m.selection.Selected))
	case selection.OutcomeConflict:
		// The conflict banner carries the detail; keep the status quiet.
		m.status = ""
	}

	m.refresh()
	return m, nil
}

func (m Model) updateFilterForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.filter = schedule.Filter{
			Day:         m.filterForm.Day,
			SkillLevel:  m.filterForm.SkillLevel,
			SessionType: m.filterForm.SessionType,
		}
		m.refresh()
		m.status = m.filter.Summary()
		m.state = m.previousState
		m.form = nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
	}
	return m, cmd
}

func (m Model) exportSelection() (tea.Model, tea.Cmd) {
	sessions := m.selection.SelectedSessions(m.store)
	if len(sessions) == 0 {
		m.status = "Nothing to export: no sessions selected"
		return m, nil
	}

	data := ics.Serialize(sessions, time.Now())
	if err := os.WriteFile(ics.Filename, data, 0644); err != nil {
		m.status = fmt.Sprintf("Export failed: %v", err)
		return m, nil
	}

	m.status = fmt.Sprintf("Exported %d session(s) to %s", len(sessions), ics.Filename)
	return m, nil
}
