package symspell

import "hash/fnv"

// fingerprint computes a deterministic 32-bit fingerprint for s, used as
// the posting key in Store. It hashes s with the standard library's
// FNV-1a (hash/fnv), then folds in a 2-bit length mask so that short
// strings of the same byte content class still land in distinguishable
// buckets. The result is reinterpreted as a signed int32 because that is
// how the persistent backend stores it.
//
// This must stay a pure function of s's bytes: it is required to be
// stable across processes (spec invariant I4) so that a PersistentStore
// populated by one process can be read by another.
func fingerprint(s string) int32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s)) // cannot fail per hash.Hash contract

	lenMask := uint32(len(s))
	if lenMask > 3 {
		lenMask = 3
	}

	return int32(h.Sum32() | lenMask)
}
