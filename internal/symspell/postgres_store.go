package symspell

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// postgresSchema is the schema PostgresStore expects to already exist (or
// creates on first use via EnsureSchema). delete_hash is a fingerprint
// reinterpreted as signed int32 and widened to int64 for storage, per
// spec §6.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS terms (
	id        BIGSERIAL PRIMARY KEY,
	term      TEXT UNIQUE NOT NULL,
	frequency BIGINT NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_terms_term ON terms (term);

CREATE TABLE IF NOT EXISTS deletes (
	delete_hash BIGINT NOT NULL,
	term_id     BIGINT NOT NULL REFERENCES terms(id) ON DELETE CASCADE,
	PRIMARY KEY (delete_hash, term_id)
);
CREATE INDEX IF NOT EXISTS idx_deletes_hash ON deletes (delete_hash);
`

// PostgresStore is the relational realization of Store. It holds a
// non-owning handle to an already-opened *sql.DB (the caller remains
// responsible for opening and eventually closing it) and compiles its
// prepared statements once, at construction, reusing them for the
// lifetime of the Store.
type PostgresStore struct {
	db *sql.DB
	tx *sql.Tx // non-nil while a transaction is open

	stmtUpsertFrequency *sql.Stmt
	stmtAddDelete       *sql.Stmt
	stmtGetTerms        *sql.Stmt
	stmtGetFrequency    *sql.Stmt
	stmtTermExists      *sql.Stmt
}

// NewPostgresStore prepares statements against db and returns a ready
// Store. db must already be open; PostgresStore never closes it. Failure
// to prepare statements is fatal at construction — per spec §7 this is a
// "storage unavailable" error and is surfaced to the caller rather than
// retried internally.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{db: db}

	var err error
	if s.stmtUpsertFrequency, err = db.Prepare(
		`INSERT INTO terms (term, frequency) VALUES ($1, $2)
		 ON CONFLICT (term) DO UPDATE SET frequency = excluded.frequency`,
	); err != nil {
		return nil, fmt.Errorf("preparing upsert-frequency statement: %w", err)
	}

	if s.stmtAddDelete, err = db.Prepare(
		`INSERT INTO deletes (delete_hash, term_id)
		 SELECT $1, t.id FROM terms t WHERE t.term = $2
		 ON CONFLICT DO NOTHING`,
	); err != nil {
		return nil, fmt.Errorf("preparing add-delete statement: %w", err)
	}

	if s.stmtGetTerms, err = db.Prepare(
		`SELECT t.term FROM deletes d JOIN terms t ON t.id = d.term_id WHERE d.delete_hash = $1`,
	); err != nil {
		return nil, fmt.Errorf("preparing get-terms statement: %w", err)
	}

	if s.stmtGetFrequency, err = db.Prepare(
		`SELECT frequency FROM terms WHERE term = $1`,
	); err != nil {
		return nil, fmt.Errorf("preparing get-frequency statement: %w", err)
	}

	if s.stmtTermExists, err = db.Prepare(
		`SELECT EXISTS(SELECT 1 FROM terms WHERE term = $1)`,
	); err != nil {
		return nil, fmt.Errorf("preparing term-exists statement: %w", err)
	}

	return s, nil
}

// EnsureSchema creates the terms/deletes tables and their indexes if they
// do not already exist. The core does not call this implicitly; callers
// run it once at setup time, exactly as the spec's schema is declared
// ahead of use rather than managed transactionally by the Store.
func (s *PostgresStore) EnsureSchema() error {
	_, err := s.db.Exec(postgresSchema)
	if err != nil {
		return fmt.Errorf("creating symspell schema: %w", err)
	}
	return nil
}

// Close finalizes every prepared statement. It does not close the
// underlying *sql.DB, which PostgresStore never owned.
func (s *PostgresStore) Close() error {
	stmts := []*sql.Stmt{
		s.stmtUpsertFrequency,
		s.stmtAddDelete,
		s.stmtGetTerms,
		s.stmtGetFrequency,
		s.stmtTermExists,
	}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}

// MaxWordLengthHint runs a single aggregate query over existing rows,
// resolving the Open Question in spec §9 about maxDictionaryWordLength
// being lost on reopen: callers should seed Index with this value after
// wrapping a pre-populated PostgresStore instead of leaving it at 0.
func (s *PostgresStore) MaxWordLengthHint() (int, error) {
	var length sql.NullInt64
	err := s.db.QueryRow(`SELECT max(length(term)) FROM terms`).Scan(&length)
	if err != nil {
		return 0, fmt.Errorf("querying max term length: %w", err)
	}
	if !length.Valid {
		return 0, nil
	}
	return int(length.Int64), nil
}

// AddDelete records that term is reachable from fp. A storage-level
// failure is returned as a wrapped error; Index ignores that error, so
// the term simply ends up with one fewer posting for this variant.
func (s *PostgresStore) AddDelete(fp int32, term string) error {
	_, err := s.stmt(s.stmtAddDelete).Exec(int64(fp), term)
	if err != nil {
		return fmt.Errorf("adding delete posting: %w", err)
	}
	return nil
}

// GetTerms returns every term posted under fp.
func (s *PostgresStore) GetTerms(fp int32) ([]string, error) {
	rows, err := s.stmt(s.stmtGetTerms).Query(int64(fp))
	if err != nil {
		// Degrade: lookup treats a Store read failure as "nothing found"
		// for this fingerprint rather than failing the whole lookup.
		return []string{}, nil
	}
	defer rows.Close()

	terms := make([]string, 0)
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			continue
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// SetFrequency upserts term with the absolute frequency f, overwriting any
// existing row. Index always passes the already-accumulated total.
func (s *PostgresStore) SetFrequency(term string, f int64) error {
	_, err := s.stmt(s.stmtUpsertFrequency).Exec(term, f)
	if err != nil {
		return fmt.Errorf("upserting frequency for %q: %w", term, err)
	}
	return nil
}

// GetFrequency returns term's stored frequency, if any.
func (s *PostgresStore) GetFrequency(term string) (int64, bool, error) {
	var freq int64
	err := s.stmt(s.stmtGetFrequency).QueryRow(term).Scan(&freq)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, nil
	}
	return freq, true, nil
}

// TermExists reports whether term has ever been promoted.
func (s *PostgresStore) TermExists(term string) (bool, error) {
	var exists bool
	err := s.stmt(s.stmtTermExists).QueryRow(term).Scan(&exists)
	if err != nil {
		return false, nil
	}
	return exists, nil
}

// BeginTransaction opens a transaction. Nested calls while one is already
// open are idempotent no-ops, tracked by the s.tx flag.
func (s *PostgresStore) BeginTransaction() error {
	if s.tx != nil {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	s.tx = tx
	return nil
}

// Commit commits the open transaction, if any. A failed commit triggers
// an automatic rollback, per spec §4.7.
func (s *PostgresStore) Commit() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Rollback aborts the open transaction, if any.
func (s *PostgresStore) Rollback() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	return nil
}

// stmt returns a transaction-bound version of base when a transaction is
// open, or base itself otherwise.
func (s *PostgresStore) stmt(base *sql.Stmt) *sql.Stmt {
	if s.tx == nil {
		return base
	}
	return s.tx.Stmt(base)
}
