package symspell

// Store is the storage abstraction an Index runs its algorithm over.
// MemoryStore and PostgresStore implement it with identical externally
// observable semantics; Index is the only caller and never needs to know
// which backend it is talking to.
type Store interface {
	// AddDelete records that term is reachable from fp. Duplicate calls
	// for the same (fp, term) pair are tolerated; a backend MAY store a
	// duplicate posting or MAY collapse it — Index's considered-suggestions
	// set is what prevents a duplicate from ever reaching a caller, so
	// either behavior is correct.
	AddDelete(fp int32, term string) error

	// GetTerms returns every term posted under fp. Order is unspecified
	// but stable within a single call. A fp with no postings returns an
	// empty, non-nil slice and a nil error.
	GetTerms(fp int32) ([]string, error)

	// SetFrequency stores f as term's absolute frequency, overwriting
	// whatever was stored before. Index is the only caller and always
	// passes the already-accumulated total (it reads the current value
	// via GetFrequency first), so accumulation lives entirely in Index,
	// not in the Store implementations.
	SetFrequency(term string, f int64) error

	// GetFrequency returns the stored frequency for term and whether it
	// has ever been promoted (posted).
	GetFrequency(term string) (int64, bool, error)

	// TermExists reports whether term has ever been promoted.
	TermExists(term string) (bool, error)

	// BeginTransaction, Commit, and Rollback provide batched durability
	// for backends that support it. MemoryStore implements all three as
	// no-ops. Nested Begin calls are idempotent.
	BeginTransaction() error
	Commit() error
	Rollback() error
}
