package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-symspell/symspellidx/internal/config"
)

var (
	loadDSN string
	loadSep string
)

var loadCmd = &cobra.Command{
	Use:   "load [dictionary-file]",
	Short: "Bulk load a term/count dictionary into the index",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadDSN, "db", "", "Postgres connection string (default: SYMSPELL_DATABASE_URL)")
	loadCmd.Flags().StringVar(&loadSep, "sep", ",", "field separator between term and count")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	dsn := loadDSN
	if dsn == "" {
		dsn = config.PostgresDSN()
	}
	if dsn == "" {
		fatalf("load requires --db (or SYMSPELL_DATABASE_URL): an in-memory dictionary would be discarded on exit")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ix, cleanup, err := openIndex(dsn)
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := ix.LoadDictionary(f, loadSep)
	if err != nil {
		log.Printf("load: stopped after %d terms: %v", n, err)
		return err
	}
	log.Printf("load: inserted %d terms from %s", n, args[0])
	return nil
}
