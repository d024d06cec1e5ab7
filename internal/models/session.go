package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// FlexBool decodes the feed's loosely-typed boolean fields, which arrive
// either as JSON booleans or as strings ("true", "TRUE", ""). Anything that
// is not an affirmative value decodes to false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case bool:
		*b = FlexBool(val)
	case string:
		*b = FlexBool(strings.EqualFold(val, "true") || val == "1")
	default:
		*b = false
	}
	return nil
}

// FlexString decodes fields that arrive either as strings or as JSON
// numbers (the feed's cost field does both).
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		*s = FlexString(val)
	case float64:
		*s = FlexString(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}

type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Room struct {
	Level    string   `json:"level"`
	Recorded FlexBool `json:"recorded"`
	RoomName string   `json:"room_name"`
}

type Speaker struct {
	First       string `json:"first"`
	Last        string `json:"last"`
	Affiliation string `json:"affiliation"`
	Bio         string `json:"bio"`
	Social      []Link `json:"social,omitempty"`
}

// Session is one workshop entry from the conference schedule feed.
// Sessions are immutable once loaded.
type Session struct {
	ID                 int        `json:"session_id"`
	Title              string     `json:"session_title"`
	Canceled           FlexBool   `json:"canceled"`
	Description        string     `json:"description"`
	SessionType        string     `json:"session_type"`
	Track              string     `json:"track"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	DurationMins       int        `json:"duration_mins"`
	DurationFormatted  string     `json:"duration_formatted"`
	Evergreen          FlexBool   `json:"evergreen"`
	Cost               FlexString `json:"cost"`
	PreregLink         string     `json:"prereg_link"`
	Sponsor            string     `json:"sponsor"`
	Recorded           FlexBool   `json:"recorded"`
	AudioRecordingLink string     `json:"audio_recording_link"`
	SkillLevel         string     `json:"skill_level"`
	Speakers           []Speaker  `json:"speakers"`
	Tipsheets          []Link     `json:"tipsheets,omitempty"`
	Room               *Room      `json:"room,omitempty"`
	Day                string     `json:"day"`
}

// Duration is the session length derived from its timestamps.
func (s Session) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// RoomName returns the room name, or "" when no room is set. Used for
// sorting, where a missing room sorts first.
func (s Session) RoomName() string {
	if s.Room == nil {
		return ""
	}
	return s.Room.RoomName
}

// Location renders the room for display: "Name (Level: X)" when a level is
// present, plain name otherwise, "TBA" when no room is set.
func (s Session) Location() string {
	if s.Room == nil || s.Room.RoomName == "" {
		return "TBA"
	}
	if s.Room.Level != "" {
		return s.Room.RoomName + " (Level: " + s.Room.Level + ")"
	}
	return s.Room.RoomName
}

// SpeakerList renders speakers as "First Last (Affiliation)" joined with
// commas. Empty when the session has no speakers.
func (s Session) SpeakerList() string {
	if len(s.Speakers) == 0 {
		return ""
	}
	parts := make([]string, len(s.Speakers))
	for i, sp := range s.Speakers {
		parts[i] = sp.First + " " + sp.Last + " (" + sp.Affiliation + ")"
	}
	return strings.Join(parts, ", ")
}
