package schedule

import (
	"sort"

	"github.com/dishpanda/nicar-scheduler/internal/models"
)

// Store is the immutable session catalog. It is built once at startup and
// only ever read afterwards; reloading means restarting.
type Store struct {
	sessions []models.Session
	byID     map[int]models.Session
}

func NewStore(src Source) (*Store, error) {
	sessions, err := src.Load()
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Session, len(sessions))
	for _, sess := range sessions {
		byID[sess.ID] = sess
	}

	return &Store{sessions: sessions, byID: byID}, nil
}

// All returns every session in catalog order. Callers must not modify the
// returned slice.
func (s *Store) All() []models.Session {
	return s.sessions
}

func (s *Store) ByID(id int) (models.Session, bool) {
	sess, ok := s.byID[id]
	return sess, ok
}

// DistinctDays returns the sorted set of day labels present in the catalog.
func (s *Store) DistinctDays() []string {
	return s.distinct(func(sess models.Session) string { return sess.Day }, false)
}

// DistinctSkillLevels returns the sorted set of non-empty skill levels.
func (s *Store) DistinctSkillLevels() []string {
	return s.distinct(func(sess models.Session) string { return sess.SkillLevel }, true)
}

// DistinctSessionTypes returns the sorted set of non-empty session types.
func (s *Store) DistinctSessionTypes() []string {
	return s.distinct(func(sess models.Session) string { return sess.SessionType }, true)
}

func (s *Store) distinct(field func(models.Session) string, dropEmpty bool) []string {
	seen := make(map[string]bool)
	var values []string
	for _, sess := range s.sessions {
		v := field(sess)
		if dropEmpty && v == "" {
			continue
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
