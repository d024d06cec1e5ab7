package projection

import (
	"fmt"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

// The calendar grid covers four fixed days and half-hour slots from 08:00
// through 18:00 inclusive. One slot is SlotHeightRem layout units tall.
const (
	gridStartHour = 8
	gridEndHour   = 18

	// SlotHeightRem is the height of one 30-minute slot in layout units.
	SlotHeightRem = 4.0
)

// Days returns the fixed day columns of the calendar grid.
func Days() []string {
	return []string{"Thursday", "Friday", "Saturday", "Sunday"}
}

// Slot is one half-hour grid cell start.
type Slot struct {
	Hour   int
	Minute int
}

// Label renders the slot start as a 12-hour label, e.g. "8:30 AM".
func (s Slot) Label() string {
	period := "AM"
	hour := s.Hour
	if hour >= 12 {
		period = "PM"
	}
	if hour > 12 {
		hour -= 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, s.Minute, period)
}

// TimeSlots returns the 21 half-hour slots from 08:00 to 18:00; the final
// 18:00 slot has no 18:30 follower.
func TimeSlots() []Slot {
	var slots []Slot
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		slots = append(slots, Slot{Hour: hour})
		if hour != gridEndHour {
			slots = append(slots, Slot{Hour: hour, Minute: 30})
		}
	}
	return slots
}

// CellSessions returns the selected sessions placed in the given day/slot
// cell: day label matches and the start time falls in the slot's hour and
// half-hour bucket. A session lands in exactly one cell, the one holding
// its start time.
func CellSessions(sessions []models.Session, selected map[int]bool, day string, slot Slot) []models.Session {
	var out []models.Session
	for _, sess := range sessions {
		if !selected[sess.ID] {
			continue
		}
		if sess.Day != day {
			continue
		}
		start := sess.StartTime
		if start.Hour() == slot.Hour && start.Minute()/30 == slot.Minute/30 {
			out = append(out, sess)
		}
	}
	return out
}

// HeightRem is the session's rendered height: linear in duration, one slot
// height per 30 minutes. Sessions longer than a slot overlap the cells
// below their own.
func HeightRem(sess models.Session) float64 {
	return sess.Duration().Minutes() / 30 * SlotHeightRem
}

// TopOffsetRem pushes a session down within its cell in proportion to its
// minutes past the half-hour boundary; zero for sessions starting exactly
// on one.
func TopOffsetRem(sess models.Session) float64 {
	return float64(sess.StartTime.Minute()%30) / 30 * SlotHeightRem
}
