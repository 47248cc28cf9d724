package symspell

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// openTestPostgresStore skips the test unless SYMSPELL_TEST_DATABASE_URL
// points at a live Postgres instance, so this suite degrades gracefully
// in environments with no database available.
func openTestPostgresStore(t *testing.T) (*PostgresStore, func()) {
	t.Helper()
	dsn := os.Getenv("SYMSPELL_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("SYMSPELL_TEST_DATABASE_URL not set, skipping Postgres-backed test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("db.Ping: %v", err)
	}

	store, err := NewPostgresStore(db)
	if err != nil {
		t.Fatalf("NewPostgresStore: %v", err)
	}
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	cleanup := func() {
		db.Exec(`DROP TABLE IF EXISTS deletes, terms CASCADE`)
		store.Close()
		db.Close()
	}
	return store, cleanup
}

func TestPostgresStoreFrequencyRoundTrip(t *testing.T) {
	store, cleanup := openTestPostgresStore(t)
	defer cleanup()

	if err := store.SetFrequency("hello", 10); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	f, ok, err := store.GetFrequency("hello")
	if err != nil || !ok || f != 10 {
		t.Fatalf("got (%d, %v, %v), want (10, true, nil)", f, ok, err)
	}

	if err := store.SetFrequency("hello", 3); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	f, _, _ = store.GetFrequency("hello")
	if f != 3 {
		t.Fatalf("SetFrequency should overwrite, got %d, want 3", f)
	}
}

func TestPostgresStoreDeletesRequireExistingTerm(t *testing.T) {
	store, cleanup := openTestPostgresStore(t)
	defer cleanup()

	fp := fingerprint("hel")

	// AddDelete against a term never Set should not error; the join
	// against terms simply matches nothing.
	if err := store.AddDelete(fp, "hello"); err != nil {
		t.Fatalf("AddDelete: %v", err)
	}
	terms, err := store.GetTerms(fp)
	if err != nil || len(terms) != 0 {
		t.Fatalf("got %v, %v, want empty, nil", terms, err)
	}

	if err := store.SetFrequency("hello", 5); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := store.AddDelete(fp, "hello"); err != nil {
		t.Fatalf("AddDelete: %v", err)
	}
	terms, err = store.GetTerms(fp)
	if err != nil || len(terms) != 1 || terms[0] != "hello" {
		t.Fatalf("got %v, %v, want [hello], nil", terms, err)
	}
}

func TestPostgresStoreTransactionRollback(t *testing.T) {
	store, cleanup := openTestPostgresStore(t)
	defer cleanup()

	if err := store.BeginTransaction(); err != nil {
		t.Fatalf("BeginTransaction: %v", err)
	}
	if err := store.SetFrequency("rolledback", 99); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := store.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	if exists, _ := store.TermExists("rolledback"); exists {
		t.Fatalf("expected rolled-back insert to be absent")
	}
}

func TestPostgresStoreMaxWordLengthHint(t *testing.T) {
	store, cleanup := openTestPostgresStore(t)
	defer cleanup()

	if err := store.SetFrequency("hi", 1); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	if err := store.SetFrequency("hello", 1); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}

	hint, err := store.MaxWordLengthHint()
	if err != nil {
		t.Fatalf("MaxWordLengthHint: %v", err)
	}
	if hint != 5 {
		t.Fatalf("MaxWordLengthHint = %d, want 5", hint)
	}
}
