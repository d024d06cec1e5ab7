// Package ics serializes a session selection into an iCalendar document.
// Output is deterministic: for a frozen "now" the same selection always
// produces byte-identical bytes.
package ics

import (
	"strconv"
	"strings"
	"time"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

const (
	prodID    = "-//NICAR 2025//Workshop Schedule//EN"
	uidSuffix = "@nicar2025"

	noDescription = "No description available"
	noValue       = "N/A"
)

// Filename is the suggested name for the exported document.
const Filename = "nicar-2025-schedule.ics"

// Serialize produces the calendar document for the given sessions, one
// VEVENT per session in the order given (catalog order, not re-sorted).
// Every line, the last included, is terminated with CRLF.
func Serialize(sessions []models.Session, now time.Time) []byte {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)

	stamp := formatUTC(now)
	for _, sess := range sessions {
		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+strconv.Itoa(sess.ID)+uidSuffix)
		writeLine(&b, "DTSTAMP:"+stamp)
		writeLine(&b, "DTSTART:"+formatUTC(sess.StartTime))
		writeLine(&b, "DTEND:"+formatUTC(sess.EndTime))
		writeLine(&b, "SUMMARY:"+EscapeText(sess.Title))
		writeLine(&b, "LOCATION:"+EscapeText(sess.Location()))
		writeLine(&b, "DESCRIPTION:"+description(sess))
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return []byte(b.String())
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// description composes the DESCRIPTION value: the free-text description
// (or a placeholder), a blank line, then type, skill level and, when
// present, the speaker list. The "\n" separators are the literal
// two-character iCalendar escape, not raw newlines.
func description(sess models.Session) string {
	var b strings.Builder

	desc := sess.Description
	if desc == "" {
		desc = noDescription
	}
	b.WriteString(EscapeText(desc))

	b.WriteString(`\n\nType: `)
	b.WriteString(EscapeText(orNA(sess.SessionType)))
	b.WriteString(`\nSkill Level: `)
	b.WriteString(EscapeText(orNA(sess.SkillLevel)))

	if len(sess.Speakers) > 0 {
		b.WriteString(`\nSpeakers: `)
		for i, sp := range sess.Speakers {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(EscapeText(sp.First + " " + sp.Last + " (" + sp.Affiliation + ")"))
		}
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return noValue
	}
	return s
}

// EscapeText escapes free text for insertion into a content line. Commas,
// semicolons and backslashes gain a backslash prefix and newlines become
// the two-character sequence "\n" — in a single pass, so a backslash
// inserted by the escape is never re-escaped.
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ',', ';', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatUTC renders a timestamp in the compact UTC form 20060102T150405Z
// with fractional seconds stripped.
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

