package projection

import (
	"sort"
	"time"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

// TimeGroup is one start-time bucket within a day: sessions sharing the
// same formatted start label. Distinct instants with an identical label
// merge; that coarsening is deliberate.
type TimeGroup struct {
	Label    string
	Sessions []models.Session
}

// DayGroup is one day's worth of time groups, ordered by start time.
type DayGroup struct {
	Day   string
	Times []TimeGroup
}

// FormatClock renders a timestamp as a 12-hour label without a leading
// zero, e.g. "9:00 AM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// SortSessions returns the sessions sorted by start time ascending, ties
// broken by room name ascending (a missing room sorts as the empty
// string). The input is not modified.
func SortSessions(sessions []models.Session) []models.Session {
	out := make([]models.Session, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].RoomName() < out[j].RoomName()
	})
	return out
}

// GroupByDayAndStart sorts the sessions by start time and groups them by
// day label, then by formatted start time. Day order follows the first
// occurrence of each day in the sorted sequence, not a fixed calendar
// order.
func GroupByDayAndStart(sessions []models.Session) []DayGroup {
	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var groups []DayGroup
	dayIndex := map[string]int{}

	for _, sess := range sorted {
		di, ok := dayIndex[sess.Day]
		if !ok {
			di = len(groups)
			dayIndex[sess.Day] = di
			groups = append(groups, DayGroup{Day: sess.Day})
		}

		label := FormatClock(sess.StartTime)
		times := groups[di].Times
		ti := -1
		for i, tg := range times {
			if tg.Label == label {
				ti = i
				break
			}
		}
		if ti == -1 {
			times = append(times, TimeGroup{Label: label})
			ti = len(times) - 1
		}
		times[ti].Sessions = append(times[ti].Sessions, sess)
		groups[di].Times = times
	}

	return groups
}
