// Package blooms provides a lightweight Bloom filter backed by a fixed-size
// buffer of byte cells.
//
// A Bloom filter is a space-efficient probabilistic data structure for set
// membership: [Filter.Contains] answers "possibly present" or "definitely
// absent". False positives are possible; false negatives are not. Both space
// and query cost are independent of how many members were inserted, which
// makes the filter useful as a prefilter in front of expensive exact lookups
// such as storage-engine reads.
//
// # Index derivation
//
// Members are not hashed by the core. Each non-overlapping 4-byte chunk of a
// member's bytes, read as a little-endian unsigned integer, selects one bit:
// the cell index/8 (wrapped modulo the filter length) and the bit index%8
// within it. A member of length L thus touches ceil(L/4) bit positions — the
// filter's effective number of hash functions is fixed by member length
// rather than configured separately. The wrap-around addressing is what lets
// a fixed-size buffer absorb arbitrarily large derived indices.
//
// # Construction and serialization
//
// [New] creates a zero-filled filter of an explicit cell count, and [From]
// reconstructs one from raw cells. [Filter.ToBase64] and [FromBase64] give a
// lossless printable round trip; the same codec backs the
// encoding.TextMarshaler and encoding.TextUnmarshaler implementations.
//
// # Combining filters
//
// [Filter.Union] and [Filter.Merge] combine two filters of equal length into
// the filter that would result from inserting both member sets.
// [Filter.IsSubsetOf] compares the full accepted sets of two filters,
// false positives included. Combining filters of unequal length fails with
// [ErrLengthMismatch] before anything is modified.
//
// # Specialization
//
// A [Kind], built with [Specialize], attaches an [EncodeFunc] that is
// applied to every member on both the write and read paths — typically a
// digest that compresses arbitrary-length members down to a few bytes so
// every member touches the same small number of bits. [DigestXXH3],
// [DigestXXHash64] and [DigestMurmur3] cover the common cases:
//
//	weekly := blooms.Specialize(blooms.DigestXXH3(8))
//	f := weekly.New(32 * 1024)
//	f.Insert([]byte("user:12345"))
//	f.Contains([]byte("user:12345")) // true
//
// # Estimating saturation and capacity
//
// [Filter.Saturation] estimates, from the buffer's exact contents, the
// fraction of random members of a given length the filter accepts — including
// the narrower cell range a short trailing chunk can address. [Filter.Capacity]
// inverts that estimate into an approximate insertion count. Capacity
// estimates are reliable within a small factor while the fill ratio stays
// below roughly 0.75.
//
// # Thread safety
//
// A Filter is not safe for concurrent use. Insertions require exclusive
// access; callers must serialize mutation against concurrent reads.
package blooms
