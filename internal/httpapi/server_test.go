package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/az-symspell/symspellidx/internal/symspell"
)

func newTestServer() *Server {
	ix := symspell.NewIndex(symspell.NewMemoryStore(), symspell.DefaultConfig())
	ix.Insert("hello", 1000)
	ix.Insert("world", 500)
	return NewServer(ix)
}

func TestHandleLookupReturnsSuggestions(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/lookup?term=hellp", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body lookupResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Suggestions) == 0 || body.Suggestions[0].Term != "hello" {
		t.Fatalf("got %+v, want hello as top suggestion", body)
	}
}

func TestHandleLookupMissingTerm(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/lookup", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLookupBadVerbosity(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/lookup?term=hello&verbosity=bogus", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleStats(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body statsResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.MaxWordLength != 5 {
		t.Fatalf("MaxWordLength = %d, want 5", body.MaxWordLength)
	}
}
