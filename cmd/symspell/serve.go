package main

import (
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/az-symspell/symspellidx/internal/config"
	"github.com/az-symspell/symspellidx/internal/httpapi"
)

var (
	serveDSN  string
	serveDict string
	serveSep  string
	serveAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve GET /lookup and GET /stats over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDSN, "db", "", "Postgres connection string (default: SYMSPELL_DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveDict, "dict", "", "dictionary file to preload before serving")
	serveCmd.Flags().StringVar(&serveSep, "sep", ",", "field separator between term and count in --dict")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: SYMSPELL_LISTEN_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	dsn := serveDSN
	if dsn == "" {
		dsn = config.PostgresDSN()
	}
	addr := serveAddr
	if addr == "" {
		addr = config.ListenAddr()
	}

	ix, cleanup, err := openIndex(dsn)
	if err != nil {
		return err
	}
	defer cleanup()

	if serveDict != "" {
		f, err := os.Open(serveDict)
		if err != nil {
			return err
		}
		n, err := ix.LoadDictionary(f, serveSep)
		f.Close()
		if err != nil {
			return err
		}
		log.Printf("serve: loaded %d terms from %s", n, serveDict)
	}

	log.Printf("serve: listening on %s", addr)
	return http.ListenAndServe(addr, httpapi.NewServer(ix))
}
