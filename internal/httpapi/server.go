// Package httpapi exposes a read-only view of a symspell.Index over HTTP:
// GET /lookup for fuzzy suggestions and GET /stats for index configuration.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/az-symspell/symspellidx/internal/symspell"
)

// Server wraps an Index with the HTTP handlers that serve it.
type Server struct {
	index *symspell.Index
	mux   *mux.Router
}

// NewServer builds a Server routing GET /lookup and GET /stats against
// index. The returned Server's ServeHTTP satisfies http.Handler.
func NewServer(index *symspell.Index) *Server {
	s := &Server{index: index, mux: mux.NewRouter()}

	s.mux.HandleFunc("/lookup", s.handleLookup).Methods(http.MethodGet)
	s.mux.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type lookupResponse struct {
	Query       string                `json:"query"`
	Verbosity   string                `json:"verbosity"`
	Suggestions []symspell.Suggestion `json:"suggestions"`
}

// handleLookup serves GET /lookup?term=...&verbosity=top|closest|all&max=N.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if term == "" {
		http.Error(w, "missing required query parameter \"term\"", http.StatusBadRequest)
		return
	}

	verbosity := symspell.Closest
	verbosityName := "closest"
	switch r.URL.Query().Get("verbosity") {
	case "top":
		verbosity = symspell.Top
		verbosityName = "top"
	case "all":
		verbosity = symspell.All
		verbosityName = "all"
	case "", "closest":
		// defaults already set
	default:
		http.Error(w, "verbosity must be one of top, closest, all", http.StatusBadRequest)
		return
	}

	maxDist := -1
	if raw := r.URL.Query().Get("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "max must be an integer", http.StatusBadRequest)
			return
		}
		maxDist = n
	}

	suggestions := s.index.Lookup(term, verbosity, maxDist)
	writeJSON(w, http.StatusOK, lookupResponse{
		Query:       term,
		Verbosity:   verbosityName,
		Suggestions: suggestions,
	})
}

type statsResponse struct {
	MaxEditDistance int `json:"max_edit_distance"`
	PrefixLength    int `json:"prefix_length"`
	MaxWordLength   int `json:"max_word_length"`
}

// handleStats serves GET /stats, a snapshot of the Index's configuration.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		MaxEditDistance: s.index.MaxEditDistance(),
		PrefixLength:    s.index.PrefixLength(),
		MaxWordLength:   s.index.MaxWordLength(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("httpapi: failed to encode response: %v", err)
	}
}
