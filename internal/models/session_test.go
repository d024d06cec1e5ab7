package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`""`, false},
		{`"false"`, false},
		{`"no"`, false},
		{`null`, false},
	}
	for _, tc := range cases {
		var b FlexBool
		if err := json.Unmarshal([]byte(tc.in), &b); err != nil {
			t.Fatalf("FlexBool unmarshal %s: %v", tc.in, err)
		}
		if bool(b) != tc.want {
			t.Errorf("FlexBool(%s) = %v, want %v", tc.in, bool(b), tc.want)
		}
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"free"`, "free"},
		{`40`, "40"},
		{`39.5`, "39.5"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var s FlexString
		if err := json.Unmarshal([]byte(tc.in), &s); err != nil {
			t.Fatalf("FlexString unmarshal %s: %v", tc.in, err)
		}
		if string(s) != tc.want {
			t.Errorf("FlexString(%s) = %q, want %q", tc.in, string(s), tc.want)
		}
	}
}

func TestSession_Location(t *testing.T) {
	withLevel := Session{Room: &Room{RoomName: "Greenway A", Level: "3"}}
	if got := withLevel.Location(); got != "Greenway A (Level: 3)" {
		t.Errorf("Location() = %q", got)
	}

	noLevel := Session{Room: &Room{RoomName: "Hiawatha"}}
	if got := noLevel.Location(); got != "Hiawatha" {
		t.Errorf("Location() = %q", got)
	}

	noRoom := Session{}
	if got := noRoom.Location(); got != "TBA" {
		t.Errorf("Location() = %q, want TBA", got)
	}
}

func TestSession_SpeakerList(t *testing.T) {
	sess := Session{Speakers: []Speaker{
		{First: "Maria", Last: "Okafor", Affiliation: "The Plainsview Ledger"},
		{First: "Tom", Last: "Reyes", Affiliation: "KWSU"},
	}}
	want := "Maria Okafor (The Plainsview Ledger), Tom Reyes (KWSU)"
	if got := sess.SpeakerList(); got != want {
		t.Errorf("SpeakerList() = %q, want %q", got, want)
	}

	if got := (Session{}).SpeakerList(); got != "" {
		t.Errorf("SpeakerList() on no speakers = %q, want empty", got)
	}
}

func TestSession_Duration(t *testing.T) {
	start := time.Date(2025, 3, 6, 9, 0, 0, 0, time.UTC)
	sess := Session{StartTime: start, EndTime: start.Add(90 * time.Minute)}
	if got := sess.Duration(); got != 90*time.Minute {
		t.Errorf("Duration() = %v, want 90m", got)
	}
}
