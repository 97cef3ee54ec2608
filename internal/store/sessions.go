package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sadopc/projtimer/internal/hms"
)

// Record appends a session for a finished run. The name is trimmed;
// a blank name records nothing and returns (nil, nil).
func (s *Store) Record(name string, elapsedSeconds int64) (*Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if elapsedSeconds < 0 {
		return nil, fmt.Errorf("record session: negative elapsed %d", elapsedSeconds)
	}

	now := time.Now().UTC()
	id := ulid.Make().String()
	display := hms.Format(elapsedSeconds)

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, name, elapsed_seconds, elapsed_display, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, elapsedSeconds, display, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	return s.GetSession(id)
}

func (s *Store) GetSession(id string) (*Session, error) {
	sess := &Session{}
	var recordedAt string
	err := s.db.QueryRow(
		`SELECT seq, id, name, elapsed_seconds, elapsed_display, recorded_at
		 FROM sessions WHERE id = ?`, id,
	).Scan(&sess.Seq, &sess.ID, &sess.Name, &sess.ElapsedSeconds, &sess.ElapsedDisplay, &recordedAt)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	sess.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
	return sess, nil
}

// ListSessions returns every session in the order it was recorded.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT seq, id, name, elapsed_seconds, elapsed_display, recorded_at
		 FROM sessions ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var recordedAt string
		if err := rows.Scan(&sess.Seq, &sess.ID, &sess.Name, &sess.ElapsedSeconds, &sess.ElapsedDisplay, &recordedAt); err != nil {
			return nil, err
		}
		sess.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *Store) CountSessions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// TotalSeconds sums the elapsed time of all recorded sessions.
func (s *Store) TotalSeconds() (int64, error) {
	var total int64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(elapsed_seconds), 0) FROM sessions`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total seconds: %w", err)
	}
	return total, nil
}
