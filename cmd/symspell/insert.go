package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/az-symspell/symspellidx/internal/config"
)

var (
	insertDSN   string
	insertCount int64
)

var insertCmd = &cobra.Command{
	Use:   "insert [term]",
	Short: "Insert a single term into the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsert,
}

func init() {
	insertCmd.Flags().StringVar(&insertDSN, "db", "", "Postgres connection string (default: SYMSPELL_DATABASE_URL)")
	insertCmd.Flags().Int64Var(&insertCount, "count", 1, "occurrence count to add")
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	dsn := insertDSN
	if dsn == "" {
		dsn = config.PostgresDSN()
	}
	if dsn == "" {
		fatalf("insert requires --db (or SYMSPELL_DATABASE_URL): an in-memory insert would be discarded on exit")
	}

	ix, cleanup, err := openIndex(dsn)
	if err != nil {
		return err
	}
	defer cleanup()

	promoted := ix.Insert(args[0], insertCount)
	log.Printf("insert: %q count=%d promoted=%v", args[0], insertCount, promoted)
	return nil
}
