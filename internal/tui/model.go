package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/dishpanda/nicar-scheduler/internal/models"
	"github.com/dishpanda/nicar-scheduler/internal/projection"
	"github.com/dishpanda/nicar-scheduler/internal/schedule"
	"github.com/dishpanda/nicar-scheduler/internal/selection"
	"github.com/dishpanda/nicar-scheduler/internal/tui/components/browser"
	"github.com/dishpanda/nicar-scheduler/internal/tui/components/calendar"
)

type SessionState int

const (
	StateBrowse SessionState = iota
	StateCalendar
	StateFilter
)

// FilterFormModel holds the huh form bindings for the three filters.
type FilterFormModel struct {
	Day         string
	SkillLevel  string
	SessionType string
}

type Model struct {
	store         *schedule.Store
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	browser       browser.Model
	calendar      calendar.Model
	selection     selection.State
	filter        schedule.Filter
	form          *huh.Form
	filterForm    *FilterFormModel
	status        string
	width         int
	height        int
	quitting      bool
}

func NewModel(store *schedule.Store) Model {
	sel := selection.NewState()
	filter := schedule.NewFilter()
	visible := visibleSessions(store, filter)

	cal := calendar.New(0, 0)
	cal.SetSchedule(visible, sel.Selected)

	return Model{
		store:     store,
		state:     StateBrowse,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		browser:   browser.New(visible, sel, 0, 0),
		calendar:  cal,
		selection: sel,
		filter:    filter,
	}
}

// visibleSessions is the filtered, time-sorted sequence both tabs draw
// from. Filters never touch the selection.
func visibleSessions(store *schedule.Store, filter schedule.Filter) []models.Session {
	return projection.SortSessions(filter.Apply(store.All()))
}

// refresh re-derives both views after a selection or filter change.
func (m *Model) refresh() {
	visible := visibleSessions(m.store, m.filter)
	m.browser.SetSessions(visible, m.selection)
	m.calendar.SetSchedule(visible, m.selection.Selected)
}

// newFilterForm builds the filter picker from the catalog's distinct
// values, seeded with the active filter.
func (m *Model) newFilterForm() {
	fm := &FilterFormModel{
		Day:         m.filter.Day,
		SkillLevel:  m.filter.SkillLevel,
		SessionType: m.filter.SessionType,
	}

	m.filterForm = fm
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(filterOptions("All Days", m.store.DistinctDays())...).
				Value(&fm.Day),
			huh.NewSelect[string]().
				Title("Skill Level").
				Options(filterOptions("All Skill Levels", m.store.DistinctSkillLevels())...).
				Value(&fm.SkillLevel),
			huh.NewSelect[string]().
				Title("Session Type").
				Options(filterOptions("All Session Types", m.store.DistinctSessionTypes())...).
				Value(&fm.SessionType),
		),
	).WithTheme(huh.ThemeDracula())
}

func filterOptions(allLabel string, values []string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(allLabel, schedule.FilterAll)}
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func (m Model) Init() tea.Cmd {
	return nil
}
