package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dishpanda/nicar-scheduler/internal/models"
	"github.com/dishpanda/nicar-scheduler/internal/projection"
)

const (
	gutterWidth = 10
	columnWidth = 20
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Width(columnWidth).
			Align(lipgloss.Center)

	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(gutterWidth).
			Align(lipgloss.Right)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(columnWidth)

	spanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(columnWidth)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(2, 4)
)

type Model struct {
	viewport viewport.Model
	sessions []models.Session
	selected map[int]bool
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		selected: map[int]bool{},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.selected) == 0 {
		return emptyStyle.Render("No Sessions Selected\n\nUse the browse tab to select sessions\nand build your schedule.")
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetSchedule updates the sessions eligible for the grid (the filtered,
// time-sorted sequence) and the current selection, then re-renders.
func (m *Model) SetSchedule(sessions []models.Session, selected map[int]bool) {
	m.sessions = sessions
	m.selected = selected
	m.render()
}

// render draws the day/time grid: a time gutter on the left and one column
// per conference day. A session occupies the cell holding its start time
// and, when longer than half an hour, continuation marks in the rows below.
func (m *Model) render() {
	days := projection.Days()
	slots := projection.TimeSlots()

	var b strings.Builder

	b.WriteString(gutterStyle.Render(""))
	for _, day := range days {
		b.WriteString(headerStyle.Render(day))
	}
	b.WriteString("\n")

	// Remaining continuation rows per day column.
	carry := make([]int, len(days))

	for _, slot := range slots {
		b.WriteString(gutterStyle.Render(slot.Label() + " "))
		for di, day := range days {
			cell := projection.CellSessions(m.sessions, m.selected, day, slot)
			switch {
			case len(cell) > 0:
				sess := cell[0]
				label := sess.Title
				if len(cell) > 1 {
					label = fmt.Sprintf("%s (+%d)", label, len(cell)-1)
				}
				if runes := []rune(label); len(runes) > columnWidth-2 {
					label = string(runes[:columnWidth-3]) + "…"
				}
				b.WriteString(cellStyle.Render("▌" + label))
				carry[di] = spanRows(sess) - 1
			case carry[di] > 0:
				b.WriteString(spanStyle.Render("▌"))
				carry[di]--
			default:
				b.WriteString(cellStyle.Render(""))
			}
		}
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
}

// spanRows converts a session's layout height into whole grid rows: one
// row per slot height unit.
func spanRows(sess models.Session) int {
	rows := int(projection.HeightRem(sess)/projection.SlotHeightRem + 0.5)
	if rows < 1 {
		rows = 1
	}
	return rows
}
