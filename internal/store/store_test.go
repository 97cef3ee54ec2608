package store

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewMemoryIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	if _, err := a.Record("Only in A", 3); err != nil {
		t.Fatal(err)
	}
	n, err := b.CountSessions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second store should be empty, has %d sessions", n)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

// ============================================================
// Recording
// ============================================================

func TestRecord(t *testing.T) {
	s := newTestStore(t)

	before := time.Now().UTC().Add(-time.Second)
	sess, err := s.Record("Test Project", 1)
	if err != nil {
		t.Fatal(err)
	}
	if sess == nil {
		t.Fatal("expected a session")
	}
	if sess.Name != "Test Project" {
		t.Fatalf("name = %q", sess.Name)
	}
	if sess.ElapsedSeconds != 1 || sess.ElapsedDisplay != "00:00:01" {
		t.Fatalf("elapsed = %d / %q", sess.ElapsedSeconds, sess.ElapsedDisplay)
	}
	if sess.ID == "" {
		t.Fatal("id should be set")
	}
	if sess.RecordedAt.Before(before) {
		t.Fatalf("recorded_at %v too early", sess.RecordedAt)
	}
}

func TestRecordTrimsName(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.Record("  \tPadded Name \n", 61)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Name != "Padded Name" {
		t.Fatalf("name = %q, want trimmed", sess.Name)
	}
	if sess.ElapsedDisplay != "00:01:01" {
		t.Fatalf("display = %q", sess.ElapsedDisplay)
	}
}

func TestRecordBlankNameIsNoop(t *testing.T) {
	s := newTestStore(t)
	s.Record("Kept", 5)

	for _, name := range []string{"", " ", "\t\n", "   \r  "} {
		sess, err := s.Record(name, 10)
		if err != nil {
			t.Fatalf("Record(%q) error: %v", name, err)
		}
		if sess != nil {
			t.Fatalf("Record(%q) should not create a session", name)
		}
	}

	list, _ := s.ListSessions()
	if len(list) != 1 || list[0].Name != "Kept" {
		t.Fatalf("list changed: %+v", list)
	}
}

func TestRecordNegativeElapsed(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Record("Broken", -1); err == nil {
		t.Fatal("expected error for negative elapsed")
	}
	n, _ := s.CountSessions()
	if n != 0 {
		t.Fatalf("nothing should be stored, got %d", n)
	}
}

func TestRecordZeroElapsed(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.Record("Instant", 0)
	if err != nil {
		t.Fatal(err)
	}
	if sess.ElapsedDisplay != "00:00:00" {
		t.Fatalf("display = %q", sess.ElapsedDisplay)
	}
}

func TestRecordUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		sess, err := s.Record("Same", int64(i))
		if err != nil {
			t.Fatal(err)
		}
		if seen[sess.ID] {
			t.Fatalf("duplicate id %s", sess.ID)
		}
		seen[sess.ID] = true
	}
}

func TestGetSessionMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSession("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
}

// ============================================================
// Listing
// ============================================================

func TestListSessionsEmpty(t *testing.T) {
	s := newTestStore(t)

	list, err := s.ListSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestListSessionsChronological(t *testing.T) {
	s := newTestStore(t)

	const n = 10
	for i := 0; i < n; i++ {
		if _, err := s.Record(fmt.Sprintf("Project %02d", i), int64(i*61)); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.ListSessions()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != n {
		t.Fatalf("expected %d sessions, got %d", n, len(list))
	}
	for i, sess := range list {
		want := fmt.Sprintf("Project %02d", i)
		if sess.Name != want {
			t.Fatalf("list[%d] = %q, want %q", i, sess.Name, want)
		}
		if i > 0 && sess.Seq <= list[i-1].Seq {
			t.Fatalf("seq not increasing at %d", i)
		}
		if i > 0 && strings.Compare(sess.ID, list[i-1].ID) <= 0 {
			t.Fatalf("ids not increasing at %d: %s <= %s", i, sess.ID, list[i-1].ID)
		}
	}
}

func TestCountAndTotal(t *testing.T) {
	s := newTestStore(t)

	total, err := s.TotalSeconds()
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Fatalf("empty total = %d", total)
	}

	s.Record("A", 60)
	s.Record("B", 3600)
	s.Record(" ", 999)

	n, err := s.CountSessions()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("count = %d, want 2", n)
	}
	total, _ = s.TotalSeconds()
	if total != 3660 {
		t.Fatalf("total = %d, want 3660", total)
	}
}

func TestClosedStore(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.Record("Late", 1); err == nil {
		t.Fatal("record on closed store should fail")
	}
	if _, err := s.ListSessions(); err == nil {
		t.Fatal("list on closed store should fail")
	}
}
