package blooms

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// EncodeFunc is a pure transform applied to every member before index
// derivation, typically compressing arbitrary-length members to a small
// fixed-length digest so each member touches a predictable number of bits.
type EncodeFunc func(member []byte) []byte

// Kind is a family of filters sharing one encoding transform. The transform
// is applied on both the insertion and query paths of every instance the
// Kind constructs; mixing filters of different kinds silently breaks the
// no-false-negatives guarantee, which is why the transform is attached to
// the constructors rather than toggled per call.
type Kind struct {
	encode EncodeFunc
}

// Specialize returns a Kind whose filters apply the supplied encoding to
// every member.
func Specialize(encode EncodeFunc) *Kind {
	return &Kind{encode: encode}
}

// New creates a zero-filled filter of n byte cells belonging to this Kind.
func (k *Kind) New(n int) *Filter {
	f := New(n)
	f.encode = k.encode
	return f
}

// From creates a filter of this Kind whose cells are a copy of the given
// byte sequence.
func (k *Kind) From(cells []byte) *Filter {
	f := From(cells)
	f.encode = k.encode
	return f
}

// FromBase64 reconstructs a filter of this Kind from its base64
// representation, reattaching the Kind's encoding transform.
func (k *Kind) FromBase64(s string) (*Filter, error) {
	f, err := FromBase64(s)
	if err != nil {
		return nil, err
	}
	f.encode = k.encode
	return f, nil
}

// DigestXXH3 returns an encoding that compresses members to the first n
// bytes of their 128-bit xxh3 digest. n is clamped to 1..16.
func DigestXXH3(n int) EncodeFunc {
	n = clampDigestLen(n, 16)
	return func(member []byte) []byte {
		sum := xxh3.Hash128(member).Bytes()
		return sum[:n]
	}
}

// DigestXXHash64 returns an encoding that compresses members to the first n
// bytes of their little-endian xxhash64 digest. n is clamped to 1..8.
func DigestXXHash64(n int) EncodeFunc {
	n = clampDigestLen(n, 8)
	return func(member []byte) []byte {
		var sum [8]byte
		binary.LittleEndian.PutUint64(sum[:], xxhash.Sum64(member))
		return sum[:n]
	}
}

// DigestMurmur3 returns an encoding that compresses members to the first n
// bytes of their little-endian 128-bit murmur3 digest. n is clamped to 1..16.
func DigestMurmur3(n int) EncodeFunc {
	n = clampDigestLen(n, 16)
	return func(member []byte) []byte {
		h1, h2 := murmur3.Sum128(member)
		var sum [16]byte
		binary.LittleEndian.PutUint64(sum[:8], h1)
		binary.LittleEndian.PutUint64(sum[8:], h2)
		return sum[:n]
	}
}

func clampDigestLen(n, limit int) int {
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}
