package selection

import (
	"sort"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

// Catalog is the read-only session lookup the engine needs. Satisfied by
// *schedule.Store.
type Catalog interface {
	ByID(id int) (models.Session, bool)
	All() []models.Session
}

// Outcome reports what a Toggle call did.
type Outcome int

const (
	// OutcomeAdded: no conflict found, the session is now selected.
	OutcomeAdded Outcome = iota
	// OutcomeRemoved: the session was already selected and was toggled off.
	OutcomeRemoved
	// OutcomeConflict: an already-selected session overlaps the candidate;
	// the selection is unchanged.
	OutcomeConflict
)

// Notice pairs a rejected candidate with the selected session it overlaps.
// At most one is active at a time.
type Notice struct {
	Candidate   models.Session
	Conflicting models.Session
}

// State is the whole of the user's mutable application state: the selected
// session ids, the expanded-description ids and the active conflict notice.
// Operations take a State and return a new one; the input is never mutated.
type State struct {
	Selected map[int]bool
	Expanded map[int]bool
	Conflict *Notice
}

func NewState() State {
	return State{
		Selected: map[int]bool{},
		Expanded: map[int]bool{},
	}
}

func (s State) clone() State {
	out := State{
		Selected: make(map[int]bool, len(s.Selected)),
		Expanded: make(map[int]bool, len(s.Expanded)),
		Conflict: s.Conflict,
	}
	for id := range s.Selected {
		out.Selected[id] = true
	}
	for id := range s.Expanded {
		out.Expanded[id] = true
	}
	return out
}

// Overlaps reports whether two sessions properly intersect in time.
// Half-open semantics: sessions that merely touch at an endpoint do not
// overlap. Day labels play no part; the timestamps carry the date.
func Overlaps(a, b models.Session) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}

// Toggle attempts to select the candidate, or deselects it if it is already
// selected. Deselection always succeeds and needs no conflict check. A
// selection attempt scans the currently-selected sessions in ascending id
// order and reports the first overlap found; ids missing from the catalog
// are skipped. Every call is total: there is no error path.
func Toggle(state State, candidate models.Session, catalog Catalog) (State, Outcome) {
	next := state.clone()

	if next.Selected[candidate.ID] {
		delete(next.Selected, candidate.ID)
		next.Conflict = nil
		return next, OutcomeRemoved
	}

	ids := make([]int, 0, len(next.Selected))
	for id := range next.Selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		selected, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		if Overlaps(selected, candidate) {
			next.Conflict = &Notice{Candidate: candidate, Conflicting: selected}
			return next, OutcomeConflict
		}
	}

	next.Selected[candidate.ID] = true
	next.Conflict = nil
	return next, OutcomeAdded
}

// ToggleExpanded flips whether a session's full description is shown.
func ToggleExpanded(state State, id int) State {
	next := state.clone()
	if next.Expanded[id] {
		delete(next.Expanded, id)
	} else {
		next.Expanded[id] = true
	}
	return next
}

// SelectedSessions returns the selected sessions in catalog order. Ids
// missing from the catalog are skipped.
func (s State) SelectedSessions(catalog Catalog) []models.Session {
	var out []models.Session
	for _, sess := range catalog.All() {
		if s.Selected[sess.ID] {
			out = append(out, sess)
		}
	}
	return out
}
