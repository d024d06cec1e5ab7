package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

var frozenNow = time.Date(2025, 3, 1, 12, 30, 45, 987654321, time.UTC)

func sampleSession() models.Session {
	start := time.Date(2025, 3, 6, 9, 0, 0, 0, time.FixedZone("CST", -6*3600))
	return models.Session{
		ID:          1002,
		Title:       "Intro to data cleaning",
		Description: "Messy spreadsheets, begone.",
		SessionType: "Hands-on",
		SkillLevel:  "Beginner",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Day:         "Thursday",
		Room:        &models.Room{RoomName: "Greenway A", Level: "3"},
		Speakers: []models.Speaker{
			{First: "Maria", Last: "Okafor", Affiliation: "The Plainsview Ledger"},
		},
	}
}

func TestSerialize_EnvelopeAndCRLF(t *testing.T) {
	data := Serialize([]models.Session{sampleSession()}, frozenNow)
	text := string(data)

	if !strings.HasPrefix(text, "BEGIN:VCALENDAR\r\n") {
		t.Errorf("document does not start with BEGIN:VCALENDAR")
	}
	if !strings.HasSuffix(text, "END:VCALENDAR\r\n") {
		t.Errorf("document does not end with END:VCALENDAR and CRLF")
	}
	if !strings.Contains(text, "VERSION:2.0\r\n") {
		t.Errorf("missing VERSION line")
	}
	if !strings.Contains(text, "PRODID:-//NICAR 2025//Workshop Schedule//EN\r\n") {
		t.Errorf("missing PRODID line")
	}

	// Every line ends with CRLF: no bare LF may remain after stripping CRLF.
	if strings.Contains(strings.ReplaceAll(text, "\r\n", ""), "\n") {
		t.Errorf("found a line feed not preceded by a carriage return")
	}
}

func TestSerialize_OneEventBlockPerSession(t *testing.T) {
	sessions := []models.Session{sampleSession(), sampleSession(), sampleSession()}
	for i := range sessions {
		sessions[i].ID = 2000 + i
	}

	text := string(Serialize(sessions, frozenNow))
	if got := strings.Count(text, "BEGIN:VEVENT\r\n"); got != 3 {
		t.Errorf("BEGIN:VEVENT count = %d, want 3", got)
	}
	if got := strings.Count(text, "END:VEVENT\r\n"); got != 3 {
		t.Errorf("END:VEVENT count = %d, want 3", got)
	}
}

func TestSerialize_EventFields(t *testing.T) {
	text := string(Serialize([]models.Session{sampleSession()}, frozenNow))

	for _, want := range []string{
		"UID:1002@nicar2025\r\n",
		"DTSTAMP:20250301T123045Z\r\n", // frozen now, fractional seconds stripped
		"DTSTART:20250306T150000Z\r\n", // 09:00 CST = 15:00 UTC
		"DTEND:20250306T160000Z\r\n",
		"SUMMARY:Intro to data cleaning\r\n",
		"LOCATION:Greenway A (Level: 3)\r\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("document missing %q", want)
		}
	}

	wantDesc := `DESCRIPTION:Messy spreadsheets\, begone.\n\nType: Hands-on\nSkill Level: Beginner\nSpeakers: Maria Okafor (The Plainsview Ledger)` + "\r\n"
	if !strings.Contains(text, wantDesc) {
		t.Errorf("description line wrong:\nwant %q\nin\n%s", wantDesc, text)
	}
}

func TestSerialize_Placeholders(t *testing.T) {
	sess := sampleSession()
	sess.Description = ""
	sess.SessionType = ""
	sess.SkillLevel = ""
	sess.Speakers = nil
	sess.Room = nil

	text := string(Serialize([]models.Session{sess}, frozenNow))

	if !strings.Contains(text, "LOCATION:TBA\r\n") {
		t.Errorf("missing TBA location placeholder")
	}
	wantDesc := `DESCRIPTION:No description available\n\nType: N/A\nSkill Level: N/A` + "\r\n"
	if !strings.Contains(text, wantDesc) {
		t.Errorf("placeholder description wrong, document:\n%s", text)
	}
	if strings.Contains(text, "Speakers:") {
		t.Errorf("speaker list should be omitted when there are no speakers")
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	sessions := []models.Session{sampleSession()}
	first := Serialize(sessions, frozenNow)
	second := Serialize(sessions, frozenNow)
	if string(first) != string(second) {
		t.Errorf("output differs across runs with a frozen now")
	}
}

func TestEscapeText_SinglePass(t *testing.T) {
	in := "a,b;c\\d\ne"
	want := `a\,b\;c\\d\ne`
	if got := EscapeText(in); got != want {
		t.Errorf("EscapeText(%q) = %q, want %q", in, got, want)
	}
}

func TestEscapeText_NoDoubleEscaping(t *testing.T) {
	got := EscapeText("one, two")
	if strings.Contains(got, `\\,`) {
		t.Errorf("comma escape was re-escaped: %q", got)
	}
	if got != `one\, two` {
		t.Errorf("EscapeText = %q, want %q", got, `one\, two`)
	}
}

func TestEscapeText_PlainTextUntouched(t *testing.T) {
	in := "nothing special here"
	if got := EscapeText(in); got != in {
		t.Errorf("EscapeText(%q) = %q, want unchanged", in, got)
	}
}
