package sqlite_test

import (
	"testing"

	"github.com/daykeep/daykeep/internal/infra/sqlite"
)

// testDB creates a temporary SQLite database for testing.
func testDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecords_Roundtrip(t *testing.T) {
	db := testDB(t)

	if _, ok, err := db.Get("engagement", "mei"); err != nil || ok {
		t.Fatalf("expected absent record, got ok=%v err=%v", ok, err)
	}

	if err := db.Set("engagement", "mei", []byte(`{"cumulative_score":3}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, ok, err := db.Get("engagement", "mei")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(raw) != `{"cumulative_score":3}` {
		t.Errorf("roundtrip mismatch: %s", raw)
	}

	// Overwrite wins.
	if err := db.Set("engagement", "mei", []byte(`{"cumulative_score":4}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	raw, _, _ = db.Get("engagement", "mei")
	if string(raw) != `{"cumulative_score":4}` {
		t.Errorf("overwrite lost: %s", raw)
	}
}

func TestRecords_KeyIsolation(t *testing.T) {
	db := testDB(t)

	_ = db.Set("engagement", "mei", []byte(`1`))
	_ = db.Set("transactions", "mei", []byte(`2`))
	_ = db.Set("engagement", "li", []byte(`3`))

	raw, _, _ := db.Get("engagement", "mei")
	if string(raw) != `1` {
		t.Errorf("expected 1, got %s", raw)
	}
	raw, _, _ = db.Get("transactions", "mei")
	if string(raw) != `2` {
		t.Errorf("expected 2, got %s", raw)
	}
	raw, _, _ = db.Get("engagement", "li")
	if string(raw) != `3` {
		t.Errorf("expected 3, got %s", raw)
	}
}

func TestSession(t *testing.T) {
	db := testDB(t)

	username, err := db.CurrentUser()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if username != "" {
		t.Errorf("fresh db should have no session, got %q", username)
	}

	if err := db.SetCurrentUser("mei"); err != nil {
		t.Fatalf("set: %v", err)
	}
	username, _ = db.CurrentUser()
	if username != "mei" {
		t.Errorf("expected mei, got %q", username)
	}

	// Switching users overwrites.
	_ = db.SetCurrentUser("li")
	username, _ = db.CurrentUser()
	if username != "li" {
		t.Errorf("expected li, got %q", username)
	}

	// Empty clears.
	if err := db.SetCurrentUser(""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	username, _ = db.CurrentUser()
	if username != "" {
		t.Errorf("expected cleared session, got %q", username)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = db.Set("engagement", "mei", []byte(`{"total_events":7}`))
	_ = db.SetCurrentUser("mei")
	db.Close()

	db2, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db2.Close()

	raw, ok, _ := db2.Get("engagement", "mei")
	if !ok || string(raw) != `{"total_events":7}` {
		t.Errorf("record lost across reopen: ok=%v raw=%s", ok, raw)
	}
	username, _ := db2.CurrentUser()
	if username != "mei" {
		t.Errorf("session lost across reopen: %q", username)
	}
}
