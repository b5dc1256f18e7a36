package blooms

import (
	"bytes"
	"errors"
	"iter"
)

var (
	// ErrInvalidArgument is returned when an insertion argument is neither a
	// byte slice nor a sequence of byte slices.
	ErrInvalidArgument = errors.New("blooms: argument is not a byte slice and not a sequence of byte slices")

	// ErrLengthMismatch is returned when two filters of unequal length are combined.
	ErrLengthMismatch = errors.New("blooms: filters do not have equivalent lengths")
)

// Filter is a Bloom filter backed by a fixed-length sequence of byte cells.
//
// The length is established at construction and never changes. Members are
// not stored; each member contributes one bit position per 4-byte chunk of
// its (possibly encoded) bytes, and cell addressing wraps modulo the filter
// length so arbitrarily large derived indices land inside the buffer.
//
// A Filter is not safe for concurrent use. Callers must serialize insertions
// against any other operation on the same instance.
type Filter struct {
	cells  []byte
	encode EncodeFunc // nil unless the filter belongs to a specialized Kind
}

// New creates a zero-filled filter of n byte cells. A length below one is
// clamped to a single cell.
func New(n int) *Filter {
	if n < 1 {
		n = 1
	}
	return &Filter{cells: make([]byte, n)}
}

// From creates a filter whose cells are a copy of the given byte sequence.
// It is the reconstruction half of the serialization boundary: the cells of
// a previously serialized filter produce an observably identical filter.
func From(cells []byte) *Filter {
	f := New(len(cells))
	copy(f.cells, cells)
	return f
}

// Insert adds a single member to the filter in place. For every 4-byte chunk
// of the (encoded) member the derived bit is set; bits that are already set
// are unaffected, so insertion is idempotent per member.
func (f *Filter) Insert(member []byte) {
	f.insert(member)
}

// InsertFrom adds every member produced by seq. The sequence is consumed
// lazily and must be finite.
func (f *Filter) InsertFrom(seq iter.Seq[[]byte]) {
	for member := range seq {
		f.insert(member)
	}
}

// Update inserts an argument of dynamic type: a single member ([]byte or
// string) or a sequence of members ([][]byte, []string, or iter.Seq[[]byte]).
// Any other type fails with ErrInvalidArgument before any cell is touched.
func (f *Filter) Update(arg any) error {
	switch v := arg.(type) {
	case []byte:
		f.insert(v)
	case string:
		f.insert([]byte(v))
	case [][]byte:
		for _, member := range v {
			f.insert(member)
		}
	case []string:
		for _, member := range v {
			f.insert([]byte(member))
		}
	case iter.Seq[[]byte]:
		f.InsertFrom(v)
	case func(func([]byte) bool):
		f.InsertFrom(v)
	default:
		return ErrInvalidArgument
	}
	return nil
}

func (f *Filter) insert(member []byte) {
	if f.encode != nil {
		member = f.encode(member)
	}
	for i := 0; i < len(member); i += 4 {
		chunk := member[i:min(i+4, len(member))]
		cell, bit := cellBit(chunkIndex(chunk), len(f.cells))
		f.cells[cell] |= 1 << bit
	}
}

// Contains reports whether the member may have been inserted. It returns
// false as soon as any derived bit is unset. False positives are possible;
// false negatives are not.
func (f *Filter) Contains(member []byte) bool {
	if f.encode != nil {
		member = f.encode(member)
	}
	for i := 0; i < len(member); i += 4 {
		chunk := member[i:min(i+4, len(member))]
		cell, bit := cellBit(chunkIndex(chunk), len(f.cells))
		if f.cells[cell]&(1<<bit) == 0 {
			return false
		}
	}
	return true
}

// Union returns a new filter whose cells are the bitwise OR of both filters'
// cells. It accepts every member either operand accepts (plus, possibly,
// additional false positives). The result keeps the receiver's encoding.
// Filters of unequal length fail with ErrLengthMismatch; neither operand is
// modified.
func (f *Filter) Union(other *Filter) (*Filter, error) {
	if len(f.cells) != len(other.cells) {
		return nil, ErrLengthMismatch
	}
	u := &Filter{cells: make([]byte, len(f.cells)), encode: f.encode}
	for i, c := range f.cells {
		u.cells[i] = c | other.cells[i]
	}
	return u, nil
}

// Merge is the in-place variant of Union: it ORs the other filter's cells
// into the receiver. Filters of unequal length fail with ErrLengthMismatch
// and the receiver is left unmodified.
func (f *Filter) Merge(other *Filter) error {
	if len(f.cells) != len(other.cells) {
		return ErrLengthMismatch
	}
	for i, c := range other.cells {
		f.cells[i] |= c
	}
	return nil
}

// IsSubsetOf reports whether every member accepted by this filter (including
// false positives) is also accepted by the other. This holds exactly when
// every bit set in the receiver is also set in the other filter. Filters of
// unequal length fail with ErrLengthMismatch.
func (f *Filter) IsSubsetOf(other *Filter) (bool, error) {
	if len(f.cells) != len(other.cells) {
		return false, ErrLengthMismatch
	}
	for i, c := range f.cells {
		if c&^other.cells[i] != 0 {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether both filters have identical length and cell contents.
func (f *Filter) Equal(other *Filter) bool {
	return bytes.Equal(f.cells, other.cells)
}

// Len returns the number of byte cells.
func (f *Filter) Len() int {
	return len(f.cells)
}

// BitCap returns the total bit capacity, Len()*8.
func (f *Filter) BitCap() int {
	return len(f.cells) * 8
}

// Bytes returns a copy of the filter's cells.
func (f *Filter) Bytes() []byte {
	return bytes.Clone(f.cells)
}

// Clone returns an independent copy of the filter, same cells and encoding.
func (f *Filter) Clone() *Filter {
	return &Filter{cells: bytes.Clone(f.cells), encode: f.encode}
}

// Clear zeroes every cell, emptying the filter without reallocating.
func (f *Filter) Clear() {
	clear(f.cells)
}
