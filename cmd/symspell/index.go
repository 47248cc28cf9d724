package main

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/az-symspell/symspellidx/internal/config"
	"github.com/az-symspell/symspellidx/internal/symspell"
)

// openIndex builds an Index over a PostgresStore when dsn is non-empty,
// ensuring the schema exists and seeding the max-word-length hint from
// existing rows; otherwise it builds an ephemeral MemoryStore-backed
// Index, which only persists for the lifetime of the process.
func openIndex(dsn string) (*symspell.Index, func(), error) {
	cfg := config.IndexConfigFromEnv()

	if dsn == "" {
		return symspell.NewIndex(symspell.NewMemoryStore(), cfg), func() {}, nil
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	store, err := symspell.NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("preparing statements: %w", err)
	}
	if err := store.EnsureSchema(); err != nil {
		store.Close()
		db.Close()
		return nil, nil, fmt.Errorf("ensuring schema: %w", err)
	}

	ix := symspell.NewIndex(store, cfg)
	if hint, err := store.MaxWordLengthHint(); err == nil {
		ix.SetMaxWordLengthHint(hint)
	}

	cleanup := func() {
		store.Close()
		db.Close()
	}
	return ix, cleanup, nil
}
