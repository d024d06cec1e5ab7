package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dishpanda/nicar-scheduler/internal/models"
	"github.com/dishpanda/nicar-scheduler/internal/projection"
	"github.com/dishpanda/nicar-scheduler/internal/selection"
)

// descriptionPreviewLength is how much of a description shows before it is
// truncated with an ellipsis.
const descriptionPreviewLength = 100

// ToggleMsg asks the parent model to select or deselect a session.
type ToggleMsg struct {
	Session models.Session
}

// ExpandMsg asks the parent model to flip a session's description between
// truncated and full.
type ExpandMsg struct {
	ID int
}

type Item struct {
	Session  models.Session
	Selected bool
	Expanded bool
}

func (i Item) Title() string {
	day := i.Session.Day
	if len(day) > 3 {
		day = day[:3]
	}
	title := fmt.Sprintf("%s %s · %s", day,
		projection.FormatClock(i.Session.StartTime), i.Session.Title)
	if i.Selected {
		title = "✓ " + title
	}
	if bool(i.Session.Canceled) {
		title += " [CANCELED]"
	}
	return title
}

func (i Item) Description() string {
	desc := i.Session.Description
	if desc == "" {
		desc = "No description available"
	} else if !i.Expanded && len(desc) > descriptionPreviewLength {
		desc = desc[:descriptionPreviewLength] + "..."
	}

	meta := i.Session.Location()
	if i.Session.SkillLevel != "" {
		meta += " | " + i.Session.SkillLevel
	}
	if i.Session.SessionType != "" {
		meta += " | " + i.Session.SessionType
	}
	return meta + " — " + desc
}

func (i Item) FilterValue() string { return i.Session.Title }

type KeyMap struct {
	Toggle key.Binding
	Expand key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/deselect"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand description"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(sessions []models.Session, state selection.State, width, height int) Model {
	l := list.New(buildItems(sessions, state), list.NewDefaultDelegate(), width, height)
	l.Title = "Sessions"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Expand}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Expand}
	}

	return Model{list: l, keys: keys}
}

func buildItems(sessions []models.Session, state selection.State) []list.Item {
	items := make([]list.Item, len(sessions))
	for i, sess := range sessions {
		items[i] = Item{
			Session:  sess,
			Selected: state.Selected[sess.ID],
			Expanded: state.Expanded[sess.ID],
		}
	}
	return items
}

// Filtering reports whether the list's fuzzy filter is capturing input,
// so the parent can keep global key bindings out of the way.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetSessions replaces the listed sessions, keeping the cursor where it is.
func (m *Model) SetSessions(sessions []models.Session, state selection.State) {
	m.list.SetItems(buildItems(sessions, state))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMsg{Session: i.Session} }
			}
		case key.Matches(msg, m.keys.Expand):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ExpandMsg{ID: i.Session.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No sessions match the current filters.\n  Press 'f' to change them."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
