package symspell

// MemoryStore is the in-process realization of Store: a term->frequency
// map and a fingerprint->terms posting map, both held in memory with no
// transactional behavior.
type MemoryStore struct {
	frequencies map[string]int64
	postings    map[int32][]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		frequencies: make(map[string]int64),
		postings:    make(map[int32][]string),
	}
}

// AddDelete appends term to the posting list for fp. Duplicates are
// tolerated on ingest (spec I5) — Index filters them out at lookup time
// via its considered-suggestions set, so a benign duplicate here costs a
// little memory and nothing else.
func (m *MemoryStore) AddDelete(fp int32, term string) error {
	m.postings[fp] = append(m.postings[fp], term)
	return nil
}

// GetTerms returns the posting list for fp, or an empty slice if none.
func (m *MemoryStore) GetTerms(fp int32) ([]string, error) {
	terms := m.postings[fp]
	if terms == nil {
		return []string{}, nil
	}
	return terms, nil
}

// SetFrequency overwrites term's stored frequency. This is a SET, not an
// accumulate — see the Store interface doc comment for why that's safe.
func (m *MemoryStore) SetFrequency(term string, f int64) error {
	m.frequencies[term] = f
	return nil
}

// GetFrequency returns term's stored frequency, if any.
func (m *MemoryStore) GetFrequency(term string) (int64, bool, error) {
	f, ok := m.frequencies[term]
	return f, ok, nil
}

// TermExists reports whether term has ever been promoted.
func (m *MemoryStore) TermExists(term string) (bool, error) {
	_, ok := m.frequencies[term]
	return ok, nil
}

// BeginTransaction is a no-op for MemoryStore.
func (m *MemoryStore) BeginTransaction() error { return nil }

// Commit is a no-op for MemoryStore.
func (m *MemoryStore) Commit() error { return nil }

// Rollback is a no-op for MemoryStore.
func (m *MemoryStore) Rollback() error { return nil }
