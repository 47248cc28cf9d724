package symspell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Index owns a Store exclusively and implements the Symmetric Delete
// insert/lookup algorithm over it. An Index is not safe for concurrent
// use from multiple goroutines while a write (Insert) may be in flight;
// concurrent Lookups against a quiescent MemoryStore are safe, but a
// PostgresStore-backed Index must be serialized by the caller because its
// prepared statements carry shared transaction state (spec §5).
type Index struct {
	store Store

	maxEditDistance int
	prefixLength    int
	countThreshold  int64

	// pending holds terms whose accumulated frequency has not yet
	// crossed countThreshold. It is in-process only and is discarded on
	// process exit unless the caller flushes it some other way.
	pending map[string]int64

	maxDictionaryWordLength int
}

// NewIndex creates an Index over store with the given configuration. The
// Index takes exclusive ownership of store.
func NewIndex(store Store, cfg Config) *Index {
	return &Index{
		store:           store,
		maxEditDistance: cfg.MaxEditDistance,
		prefixLength:    cfg.PrefixLength,
		countThreshold:  cfg.CountThreshold,
		pending:         make(map[string]int64),
	}
}

// SetCountThreshold changes the promotion threshold for future inserts.
// Terms already posted below the new threshold are not retracted — the
// core never deletes terms (spec §4 Lifecycle).
func (ix *Index) SetCountThreshold(t int64) {
	ix.countThreshold = t
}

// MaxEditDistance returns the configured maximum edit distance (M).
func (ix *Index) MaxEditDistance() int { return ix.maxEditDistance }

// PrefixLength returns the configured indexed prefix length (P).
func (ix *Index) PrefixLength() int { return ix.prefixLength }

// MaxWordLength returns the longest posted term's length observed so far,
// or the value seeded via SetMaxWordLengthHint, whichever is larger. A
// value of 0 means the hint is unknown and Lookup's length-based early
// exit never fires.
func (ix *Index) MaxWordLength() int { return ix.maxDictionaryWordLength }

// SetMaxWordLengthHint seeds the length-based early-exit threshold, e.g.
// from PostgresStore.MaxWordLengthHint() after wrapping a pre-populated
// Store (spec §9's reopen Open Question).
func (ix *Index) SetMaxWordLengthHint(n int) {
	if n > ix.maxDictionaryWordLength {
		ix.maxDictionaryWordLength = n
	}
}

// Insert adds count occurrences of key to the dictionary. It returns true
// iff this call promoted key into the posted set (i.e. caused
// delete-variants to be written); count <= 0 is rejected and returns
// false without side effects.
func (ix *Index) Insert(key string, count int64) bool {
	if count <= 0 {
		return false
	}

	if pendingCount, ok := ix.pending[key]; ok {
		count = saturatingAdd(pendingCount, count)
		if count >= ix.countThreshold {
			delete(ix.pending, key)
		} else {
			ix.pending[key] = count
			return false
		}
	} else {
		f, exists, err := ix.store.GetFrequency(key)
		if err == nil && exists {
			count = saturatingAdd(f, count)
			_ = ix.store.SetFrequency(key, count)
			return false
		}
		if count < ix.countThreshold {
			ix.pending[key] = count
			return false
		}
	}

	return ix.promote(key, count)
}

// promote posts key with absolute frequency count: it persists the
// frequency, updates the word-length hint, and writes a posting for
// every delete-variant of key's prefix.
func (ix *Index) promote(key string, count int64) bool {
	if err := ix.store.SetFrequency(key, count); err != nil {
		return false
	}

	if len(key) > ix.maxDictionaryWordLength {
		ix.maxDictionaryWordLength = len(key)
	}

	variants := deletesOfPrefix(key, ix.maxEditDistance, ix.prefixLength)
	for variant := range variants {
		_ = ix.store.AddDelete(fingerprint(variant), key)
	}
	return true
}

// LoadDictionary reads term/count pairs from r, one per line, separated by
// sep, and Inserts each. Blank lines are skipped; a line with a
// non-integer count or a missing separator is reported by position in the
// returned error but does not stop earlier lines from having been
// inserted. Returns the number of lines successfully inserted.
func (ix *Index) LoadDictionary(r io.Reader, sep string) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			return loaded, fmt.Errorf("line %d: expected \"term%scount\", got %q", lineNo, sep, line)
		}
		count, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return loaded, fmt.Errorf("line %d: invalid count: %w", lineNo, err)
		}
		ix.Insert(strings.TrimSpace(parts[0]), count)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("reading dictionary: %w", err)
	}
	return loaded, nil
}

// Lookup returns the dictionary terms reachable from input within the
// bounded edit distance, ranked by (distance ascending, frequency
// descending) for Top and Closest. maxDist < 0 or > M is clamped to M.
func (ix *Index) Lookup(input string, verbosity Verbosity, maxDist int) []Suggestion {
	if len(input) == 0 {
		return nil
	}

	d := maxDist
	if d < 0 || d > ix.maxEditDistance {
		d = ix.maxEditDistance
	}

	inputLen := len(input)
	if ix.maxDictionaryWordLength > 0 && inputLen-d > ix.maxDictionaryWordLength {
		return nil
	}

	var results []Suggestion

	if f, exists, err := ix.store.GetFrequency(input); err == nil && exists {
		results = append(results, Suggestion{Term: input, Distance: 0, Frequency: f})
		if verbosity != All {
			return results
		}
	}

	if d == 0 {
		return results
	}

	consideredDeletes := make(map[string]struct{})
	consideredSuggestions := map[string]struct{}{input: {}}

	bestDist := d
	inputPrefixLen := minInt(inputLen, ix.prefixLength)

	candidates := []string{input[:inputPrefixLen]}

	for p := 0; p < len(candidates); p++ {
		candidate := candidates[p]
		candidateLen := len(candidate)
		lenDiff := inputPrefixLen - candidateLen

		if lenDiff > bestDist {
			if verbosity == All {
				continue
			}
			break
		}

		terms, _ := ix.store.GetTerms(fingerprint(candidate))
		for _, term := range terms {
			if term == input {
				continue
			}
			termLen := len(term)
			if abs(termLen-inputLen) > bestDist {
				continue
			}
			if termLen < candidateLen {
				continue
			}
			if termLen == candidateLen && term != candidate {
				continue
			}

			termPrefixLen := minInt(termLen, ix.prefixLength)
			if termPrefixLen > inputPrefixLen && (termPrefixLen-candidateLen) > bestDist {
				continue
			}

			if !isOrderedSubsequence(candidate, term) {
				continue
			}

			if _, seen := consideredSuggestions[term]; seen {
				continue
			}
			consideredSuggestions[term] = struct{}{}

			dist := distance(input, term, bestDist)
			if dist < 0 || dist > bestDist {
				continue
			}

			freq, _, _ := ix.store.GetFrequency(term)
			results = ix.applyVerbosity(results, verbosity, Suggestion{
				Term: term, Distance: dist, Frequency: freq,
			}, &bestDist)
		}

		if lenDiff < ix.maxEditDistance && candidateLen <= ix.prefixLength {
			if verbosity != All && lenDiff >= bestDist {
				continue
			}
			for i := 0; i < candidateLen; i++ {
				next := candidate[:i] + candidate[i+1:]
				if _, ok := consideredDeletes[next]; ok {
					continue
				}
				consideredDeletes[next] = struct{}{}
				candidates = append(candidates, next)
			}
		}
	}

	return ix.finalize(results, verbosity)
}

// isOrderedSubsequence reports whether every byte of candidate appears,
// in order, within the leading subsequencePrefixLen bytes of term. The
// literal 7-byte window is intentional and independent of PrefixLength.
func isOrderedSubsequence(candidate, term string) bool {
	window := term
	if len(window) > subsequencePrefixLen {
		window = window[:subsequencePrefixLen]
	}

	i := 0
	for j := 0; j < len(window) && i < len(candidate); j++ {
		if candidate[i] == window[j] {
			i++
		}
	}
	return i == len(candidate)
}

// applyVerbosity folds one surviving candidate suggestion into results
// according to the verbosity rule, shrinking *bestDist for Top/Closest as
// better matches are found.
func (ix *Index) applyVerbosity(results []Suggestion, verbosity Verbosity, s Suggestion, bestDist *int) []Suggestion {
	switch verbosity {
	case Top:
		if len(results) == 0 {
			*bestDist = s.Distance
			return []Suggestion{s}
		}
		if s.Distance < results[0].Distance ||
			(s.Distance == results[0].Distance && s.Frequency > results[0].Frequency) {
			*bestDist = s.Distance
			return []Suggestion{s}
		}
		return results
	case Closest:
		if len(results) > 0 && s.Distance < *bestDist {
			results = results[:0]
		}
		if len(results) == 0 {
			*bestDist = s.Distance
		}
		return append(results, s)
	default: // All
		return append(results, s)
	}
}

// finalize applies the final ordering rule: sort by (distance asc,
// frequency desc) for Top/Closest, and for Closest additionally drop any
// entry whose distance exceeds the first entry's distance post-sort. All
// is returned unsorted and unfiltered, per spec §4.5.2.
func (ix *Index) finalize(results []Suggestion, verbosity Verbosity) []Suggestion {
	if verbosity == All {
		return results
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Frequency > results[j].Frequency
	})

	if verbosity == Closest && len(results) > 0 {
		best := results[0].Distance
		trimmed := results[:0:0]
		for _, s := range results {
			if s.Distance > best {
				break
			}
			trimmed = append(trimmed, s)
		}
		return trimmed
	}

	return results
}
