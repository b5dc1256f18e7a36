package blooms

import (
	"iter"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	return b
}

func TestInsertAndContains(t *testing.T) {
	f := New(100)

	// An empty filter rejects everything.
	require.False(t, f.Contains([]byte{1, 2, 3}))
	require.False(t, f.Contains([]byte{4, 5, 6}))

	f.Insert([]byte{1, 2, 3})
	require.True(t, f.Contains([]byte{1, 2, 3}))
	require.False(t, f.Contains([]byte{4, 5, 6}))
}

func TestNoFalseNegatives(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	f := New(1 << 12)

	members := make([][]byte, 256)
	for i := range members {
		members[i] = randBytes(rng, 13)
		f.Insert(members[i])
	}
	for i, m := range members {
		require.True(t, f.Contains(m), "member %d missing after insertion", i)
	}
}

func TestInsertIdempotent(t *testing.T) {
	once := New(100)
	once.Insert([]byte{1, 2, 3, 4, 5, 6, 7})

	twice := New(100)
	twice.Insert([]byte{1, 2, 3, 4, 5, 6, 7})
	twice.Insert([]byte{1, 2, 3, 4, 5, 6, 7})

	require.Equal(t, once.Bytes(), twice.Bytes())
	require.True(t, once.Equal(twice))
}

func TestShortFinalChunk(t *testing.T) {
	// Lengths that are not multiples of four exercise the partial-chunk
	// little-endian read.
	for _, n := range []int{1, 2, 3, 5, 6, 7, 9, 13} {
		f := New(100)
		member := make([]byte, n)
		for i := range member {
			member[i] = byte(i + 1)
		}
		f.Insert(member)
		require.True(t, f.Contains(member), "length %d", n)
	}
}

func TestEmptyMember(t *testing.T) {
	f := New(100)

	// A zero-length member derives no positions: insertion is a no-op and
	// membership is vacuously true.
	f.Insert(nil)
	require.Zero(t, f.SetBits())
	require.True(t, f.Contains(nil))
}

func TestInsertFrom(t *testing.T) {
	f := New(100)

	seq := func(yield func([]byte) bool) {
		for i := byte(0); i < 10; i++ {
			if !yield([]byte{i, i + 1, i + 2}) {
				return
			}
		}
	}
	f.InsertFrom(seq)

	for i := byte(0); i < 10; i++ {
		require.True(t, f.Contains([]byte{i, i + 1, i + 2}))
	}
}

func TestUpdate(t *testing.T) {
	f := New(100)

	require.NoError(t, f.Update([]byte{1, 2, 3}))
	require.NoError(t, f.Update("hello"))
	require.NoError(t, f.Update([][]byte{{4, 5, 6}, {7, 8, 9}}))
	require.NoError(t, f.Update([]string{"foo", "bar"}))

	var seq iter.Seq[[]byte] = func(yield func([]byte) bool) {
		yield([]byte{10, 11, 12})
	}
	require.NoError(t, f.Update(seq))

	for _, member := range [][]byte{
		{1, 2, 3}, []byte("hello"), {4, 5, 6}, {7, 8, 9},
		[]byte("foo"), []byte("bar"), {10, 11, 12},
	} {
		require.True(t, f.Contains(member))
	}
}

func TestUpdateInvalidArgument(t *testing.T) {
	f := New(100)

	require.ErrorIs(t, f.Update(123), ErrInvalidArgument)
	require.ErrorIs(t, f.Update(nil), ErrInvalidArgument)
	require.ErrorIs(t, f.Update(3.14), ErrInvalidArgument)

	// A failed call leaves the filter untouched.
	require.Zero(t, f.SetBits())
}

func TestUnion(t *testing.T) {
	a := New(100)
	a.Insert([]byte{1, 2, 3})
	b := New(100)
	b.Insert([]byte{4, 5, 6})

	u, err := a.Union(b)
	require.NoError(t, err)
	require.True(t, u.Contains([]byte{1, 2, 3}))
	require.True(t, u.Contains([]byte{4, 5, 6}))

	// The operands are unmodified.
	require.False(t, a.Contains([]byte{4, 5, 6}))
	require.False(t, b.Contains([]byte{1, 2, 3}))
}

func TestUnionNeverDropsMembers(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	a := New(512)
	b := New(512)

	var members [][]byte
	for i := 0; i < 64; i++ {
		m := randBytes(rng, 13)
		members = append(members, m)
		if i%2 == 0 {
			a.Insert(m)
		} else {
			b.Insert(m)
		}
	}

	u, err := a.Union(b)
	require.NoError(t, err)
	for _, m := range members {
		// Everything accepted by either operand is accepted by the union.
		require.True(t, u.Contains(m))
	}
}

func TestMerge(t *testing.T) {
	a := New(100)
	a.Insert([]byte{1, 2, 3})
	b := New(100)
	b.Insert([]byte{4, 5, 6})

	require.NoError(t, a.Merge(b))
	require.True(t, a.Contains([]byte{1, 2, 3}))
	require.True(t, a.Contains([]byte{4, 5, 6}))
	require.False(t, b.Contains([]byte{1, 2, 3}))
}

func TestLengthMismatch(t *testing.T) {
	a := New(100)
	b := New(200)

	_, err := a.Union(b)
	require.ErrorIs(t, err, ErrLengthMismatch)

	require.ErrorIs(t, a.Merge(b), ErrLengthMismatch)

	_, err = a.IsSubsetOf(b)
	require.ErrorIs(t, err, ErrLengthMismatch)

	// Failed combinations modify neither operand.
	require.Zero(t, a.SetBits())
	require.Zero(t, b.SetBits())
}

func TestIsSubsetOf(t *testing.T) {
	a := From([]byte{0, 0, 1})
	b := From([]byte{0, 0, 3})

	ok, err := a.IsSubsetOf(b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = b.IsSubsetOf(a)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsSubsetOfReflexiveAndAntisymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	a := New(64)
	for range 16 {
		a.Insert(randBytes(rng, 8))
	}

	ok, err := a.IsSubsetOf(a)
	require.NoError(t, err)
	require.True(t, ok)

	b := From(a.Bytes())
	ab, err := a.IsSubsetOf(b)
	require.NoError(t, err)
	ba, err := b.IsSubsetOf(a)
	require.NoError(t, err)
	require.True(t, ab && ba)
	require.True(t, a.Equal(b))
}

func TestFrom(t *testing.T) {
	cells := []byte{0xFF, 0x00, 0xA5}
	f := From(cells)
	require.Equal(t, cells, f.Bytes())

	// The filter owns a copy, not the caller's slice.
	cells[0] = 0
	require.Equal(t, byte(0xFF), f.Bytes()[0])
}

func TestNewClampsLength(t *testing.T) {
	require.Equal(t, 1, New(0).Len())
	require.Equal(t, 1, New(-5).Len())
	require.Equal(t, 100, New(100).Len())
	require.Equal(t, 800, New(100).BitCap())
}

func TestClear(t *testing.T) {
	f := New(100)
	f.Insert([]byte{1, 2, 3})
	require.True(t, f.Contains([]byte{1, 2, 3}))

	f.Clear()
	require.False(t, f.Contains([]byte{1, 2, 3}))
	require.Zero(t, f.SetBits())
	require.Equal(t, 100, f.Len())
}

func TestClone(t *testing.T) {
	f := New(100)
	f.Insert([]byte{1, 2, 3})

	g := f.Clone()
	require.True(t, f.Equal(g))

	g.Insert([]byte{4, 5, 6})
	require.True(t, g.Contains([]byte{4, 5, 6}))
	require.False(t, f.Contains([]byte{4, 5, 6}))
}
