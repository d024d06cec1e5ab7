package schedule

import (
	"fmt"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

// FilterAll is the wildcard value for every filter field.
const FilterAll = "all"

// Filter is the user's three independent categorical filters. Filtering
// never touches the selection: a filtered-out session stays selected.
type Filter struct {
	Day         string
	SkillLevel  string
	SessionType string
}

func NewFilter() Filter {
	return Filter{Day: FilterAll, SkillLevel: FilterAll, SessionType: FilterAll}
}

func (f Filter) Matches(sess models.Session) bool {
	if f.Day != FilterAll && sess.Day != f.Day {
		return false
	}
	if f.SkillLevel != FilterAll && sess.SkillLevel != f.SkillLevel {
		return false
	}
	if f.SessionType != FilterAll && sess.SessionType != f.SessionType {
		return false
	}
	return true
}

// Apply returns the sessions matching the filter, preserving catalog order.
func (f Filter) Apply(sessions []models.Session) []models.Session {
	if f == NewFilter() {
		return sessions
	}
	var out []models.Session
	for _, sess := range sessions {
		if f.Matches(sess) {
			out = append(out, sess)
		}
	}
	return out
}

// Summary renders the active filters for a status line, or "" when every
// field is set to all.
func (f Filter) Summary() string {
	if f == NewFilter() {
		return ""
	}
	s := ""
	if f.Day != FilterAll {
		s += fmt.Sprintf(" day=%s", f.Day)
	}
	if f.SkillLevel != FilterAll {
		s += fmt.Sprintf(" skill=%s", f.SkillLevel)
	}
	if f.SessionType != FilterAll {
		s += fmt.Sprintf(" type=%s", f.SessionType)
	}
	return "filters:" + s
}
