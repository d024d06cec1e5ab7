package schedule

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestSQLiteSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	schema := `
	CREATE TABLE sessions (
		session_id INTEGER PRIMARY KEY,
		session_title TEXT NOT NULL,
		canceled INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		session_type TEXT NOT NULL DEFAULT '',
		track TEXT NOT NULL DEFAULT '',
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		duration_mins INTEGER NOT NULL DEFAULT 0,
		skill_level TEXT NOT NULL DEFAULT '',
		day TEXT NOT NULL,
		room_name TEXT,
		room_level TEXT
	);
	CREATE TABLE speakers (
		session_id INTEGER NOT NULL,
		first TEXT NOT NULL,
		last TEXT NOT NULL,
		affiliation TEXT NOT NULL DEFAULT ''
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	_, err = db.Exec(`INSERT INTO sessions
		(session_id, session_title, canceled, description, session_type, track,
		 start_time, end_time, duration_mins, skill_level, day, room_name, room_level)
		VALUES
		(1, 'Alpha', 0, 'First session.', 'Panel', '',
		 '2025-03-06T09:00:00-06:00', '2025-03-06T10:00:00-06:00', 60, 'Beginner', 'Thursday', 'Aspen', '2'),
		(2, 'Beta', 1, '', '', '',
		 '2025-03-07T09:00:00-06:00', '2025-03-07T10:30:00-06:00', 90, '', 'Friday', NULL, NULL)`)
	if err != nil {
		t.Fatalf("inserting sessions: %v", err)
	}
	_, err = db.Exec(`INSERT INTO speakers (session_id, first, last, affiliation)
		VALUES (1, 'Maria', 'Okafor', 'The Plainsview Ledger'),
		       (1, 'Tom', 'Reyes', 'KWSU')`)
	if err != nil {
		t.Fatalf("inserting speakers: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	sessions, err := NewSQLiteSource(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("loaded %d sessions, want 2", len(sessions))
	}

	alpha := sessions[0]
	if alpha.Title != "Alpha" || alpha.Day != "Thursday" {
		t.Errorf("first session = %q on %q", alpha.Title, alpha.Day)
	}
	if alpha.Room == nil || alpha.Room.RoomName != "Aspen" || alpha.Room.Level != "2" {
		t.Errorf("room not loaded: %+v", alpha.Room)
	}
	if len(alpha.Speakers) != 2 || alpha.Speakers[0].First != "Maria" {
		t.Errorf("speakers not loaded in order: %+v", alpha.Speakers)
	}
	if alpha.StartTime.Hour() != 9 {
		t.Errorf("start hour = %d, want 9", alpha.StartTime.Hour())
	}

	beta := sessions[1]
	if !bool(beta.Canceled) {
		t.Errorf("canceled flag not loaded")
	}
	if beta.Room != nil {
		t.Errorf("NULL room should load as no room, got %+v", beta.Room)
	}
	if len(beta.Speakers) != 0 {
		t.Errorf("expected no speakers, got %+v", beta.Speakers)
	}
}

func TestSQLiteSource_MissingFile(t *testing.T) {
	src := NewSQLiteSource(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := src.Load(); err == nil {
		t.Error("expected an error for a missing database file")
	}
}
