package symspell

import "testing"

func TestMemoryStoreFrequencyRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, _ := s.GetFrequency("hello"); ok {
		t.Fatalf("expected no frequency before SetFrequency")
	}

	if err := s.SetFrequency("hello", 10); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}

	f, ok, err := s.GetFrequency("hello")
	if err != nil || !ok || f != 10 {
		t.Fatalf("got (%d, %v, %v), want (10, true, nil)", f, ok, err)
	}

	// SetFrequency overwrites, it does not accumulate.
	if err := s.SetFrequency("hello", 3); err != nil {
		t.Fatalf("SetFrequency: %v", err)
	}
	f, _, _ = s.GetFrequency("hello")
	if f != 3 {
		t.Fatalf("SetFrequency should overwrite, got %d, want 3", f)
	}
}

func TestMemoryStorePostingsTolerateDuplicates(t *testing.T) {
	s := NewMemoryStore()
	fp := fingerprint("hel")

	if err := s.AddDelete(fp, "hello"); err != nil {
		t.Fatalf("AddDelete: %v", err)
	}
	if err := s.AddDelete(fp, "hello"); err != nil {
		t.Fatalf("AddDelete: %v", err)
	}

	terms, err := s.GetTerms(fp)
	if err != nil {
		t.Fatalf("GetTerms: %v", err)
	}
	// Duplicate postings are tolerated on ingest (spec I5); the Index's
	// considered-suggestions set is what prevents duplicate output.
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2 (duplicates tolerated)", len(terms))
	}
}

func TestMemoryStoreGetTermsEmpty(t *testing.T) {
	s := NewMemoryStore()
	terms, err := s.GetTerms(fingerprint("nope"))
	if err != nil {
		t.Fatalf("GetTerms: %v", err)
	}
	if len(terms) != 0 {
		t.Fatalf("expected no terms, got %v", terms)
	}
}

func TestMemoryStoreTermExists(t *testing.T) {
	s := NewMemoryStore()
	if ok, _ := s.TermExists("hello"); ok {
		t.Fatalf("expected term not to exist yet")
	}
	_ = s.SetFrequency("hello", 1)
	if ok, _ := s.TermExists("hello"); !ok {
		t.Fatalf("expected term to exist")
	}
}

func TestMemoryStoreTransactionsAreNoops(t *testing.T) {
	s := NewMemoryStore()
	if err := s.BeginTransaction(); err != nil {
		t.Fatalf("BeginTransaction: %v", err)
	}
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := s.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
}
