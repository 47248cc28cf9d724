package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-symspell/symspellidx/internal/config"
	"github.com/az-symspell/symspellidx/internal/symspell"
)

var (
	lookupDSN           string
	lookupDict          string
	lookupSep           string
	lookupVerbosityFlag string
	lookupMaxDist       int
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [term]",
	Short: "Look up fuzzy matches for a term",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupDSN, "db", "", "Postgres connection string (default: SYMSPELL_DATABASE_URL)")
	lookupCmd.Flags().StringVar(&lookupDict, "dict", "", "dictionary file to load into an in-memory index before lookup")
	lookupCmd.Flags().StringVar(&lookupSep, "sep", ",", "field separator between term and count in --dict")
	lookupCmd.Flags().StringVar(&lookupVerbosityFlag, "verbosity", "closest", "one of top, closest, all")
	lookupCmd.Flags().IntVar(&lookupMaxDist, "max-distance", -1, "maximum edit distance; negative uses the index default")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	dsn := lookupDSN
	if dsn == "" {
		dsn = config.PostgresDSN()
	}

	ix, cleanup, err := openIndex(dsn)
	if err != nil {
		return err
	}
	defer cleanup()

	if lookupDict != "" {
		f, err := os.Open(lookupDict)
		if err != nil {
			return err
		}
		_, err = ix.LoadDictionary(f, lookupSep)
		f.Close()
		if err != nil {
			return err
		}
	}

	verbosity, err := parseVerbosity(lookupVerbosityFlag)
	if err != nil {
		return err
	}

	for _, s := range ix.Lookup(args[0], verbosity, lookupMaxDist) {
		fmt.Printf("%s\tdistance=%d\tfrequency=%d\n", s.Term, s.Distance, s.Frequency)
	}
	return nil
}

func parseVerbosity(s string) (symspell.Verbosity, error) {
	switch s {
	case "top":
		return symspell.Top, nil
	case "closest":
		return symspell.Closest, nil
	case "all":
		return symspell.All, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q: want top, closest, or all", s)
	}
}
