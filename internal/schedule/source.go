package schedule

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	_ "embed"

	_ "modernc.org/sqlite"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

//go:embed schedule.json
var bundledFeed []byte

// Source loads the full session catalog. Implementations are read-only:
// the catalog never changes after startup.
type Source interface {
	Load() ([]models.Session, error)
}

// JSONSource reads the catalog from a JSON feed file. An empty path falls
// back to the feed bundled into the binary.
type JSONSource struct {
	path string
}

func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

func (s *JSONSource) Load() ([]models.Session, error) {
	data := bundledFeed
	if s.path != "" {
		var err error
		data, err = os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule feed: %w", err)
		}
	}

	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse schedule feed: %w", err)
	}

	if err := validate(sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// SQLiteSource reads the catalog from a SQLite database with `sessions`
// and `speakers` tables. Read-only; nothing is ever written back.
type SQLiteSource struct {
	path string
}

func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

func (s *SQLiteSource) Load() ([]models.Session, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("failed to open schedule database: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT session_id, session_title, canceled, description,
		session_type, track, start_time, end_time, duration_mins, skill_level,
		day, room_name, room_level FROM sessions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var sess models.Session
		var canceled bool
		var start, end string
		var roomName, roomLevel sql.NullString
		if err := rows.Scan(&sess.ID, &sess.Title, &canceled, &sess.Description,
			&sess.SessionType, &sess.Track, &start, &end, &sess.DurationMins,
			&sess.SkillLevel, &sess.Day, &roomName, &roomLevel); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.Canceled = models.FlexBool(canceled)
		if sess.StartTime, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("session %d: invalid start_time %q: %w", sess.ID, start, err)
		}
		if sess.EndTime, err = time.Parse(time.RFC3339, end); err != nil {
			return nil, fmt.Errorf("session %d: invalid end_time %q: %w", sess.ID, end, err)
		}
		if roomName.Valid && roomName.String != "" {
			sess.Room = &models.Room{RoomName: roomName.String, Level: roomLevel.String}
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	if err := loadSpeakers(db, sessions); err != nil {
		return nil, err
	}

	if err := validate(sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func loadSpeakers(db *sql.DB, sessions []models.Session) error {
	rows, err := db.Query(`SELECT session_id, first, last, affiliation
		FROM speakers ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("failed to query speakers: %w", err)
	}
	defer rows.Close()

	byID := make(map[int]int, len(sessions))
	for i, sess := range sessions {
		byID[sess.ID] = i
	}

	for rows.Next() {
		var id int
		var sp models.Speaker
		if err := rows.Scan(&id, &sp.First, &sp.Last, &sp.Affiliation); err != nil {
			return fmt.Errorf("failed to scan speaker: %w", err)
		}
		if i, ok := byID[id]; ok {
			sessions[i].Speakers = append(sessions[i].Speakers, sp)
		}
	}
	return rows.Err()
}

// validate runs the load-time checks so the rest of the program never has
// to re-check session well-formedness.
func validate(sessions []models.Session) error {
	seen := make(map[int]bool, len(sessions))
	for _, sess := range sessions {
		if seen[sess.ID] {
			return fmt.Errorf("schedule feed contains duplicate session id %d", sess.ID)
		}
		seen[sess.ID] = true
		if !sess.StartTime.Before(sess.EndTime) {
			return fmt.Errorf("session %d (%q): start time is not before end time", sess.ID, sess.Title)
		}
	}
	return nil
}
