package main

import (
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/az-symspell/symspellidx/internal/symspell"
)

var (
	benchSep           string
	benchVerbosityFlag string
	benchQueries       []string
)

var benchCmd = &cobra.Command{
	Use:   "bench [dictionary-file]",
	Short: "Load a dictionary into memory and time a batch of lookups",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchSep, "sep", ",", "field separator between term and count")
	benchCmd.Flags().StringVar(&benchVerbosityFlag, "verbosity", "closest", "one of top, closest, all")
	benchCmd.Flags().StringArrayVar(&benchQueries, "query", nil, "query term to time; may be repeated")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	ix := symspell.NewIndex(symspell.NewMemoryStore(), symspell.DefaultConfig())

	loadStart := time.Now()
	n, err := ix.LoadDictionary(f, benchSep)
	if err != nil {
		return err
	}
	log.Printf("bench: loaded %d terms in %s", n, time.Since(loadStart))

	if len(benchQueries) == 0 {
		log.Printf("bench: no --query given, nothing to time")
		return nil
	}

	verbosity, err := parseVerbosity(benchVerbosityFlag)
	if err != nil {
		return err
	}

	lookupStart := time.Now()
	total := 0
	for _, q := range benchQueries {
		total += len(ix.Lookup(q, verbosity, -1))
	}
	elapsed := time.Since(lookupStart)
	log.Printf("bench: %d lookups in %s (%s/lookup), %d total suggestions",
		len(benchQueries), elapsed, elapsed/time.Duration(len(benchQueries)), total)
	return nil
}
