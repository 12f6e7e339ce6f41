package roaringview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/roaringview/container"
	"github.com/hupe1980/roaringview/testutil"
)

func TestCursor_Walk(t *testing.T) {
	data := testutil.NewFixture(true).
		Array(1, 1, 2).
		Runs(3, testutil.Run{Start: 0, Length: 99}).
		Array(9, 7).
		Bytes()
	d := mustNew(t, data)

	var keys []uint16
	for c := d.Cursor(); c.HasPartition(); c.Advance() {
		keys = append(keys, c.Key())
		assert.Equal(t, d.CardinalityAt(c.Index()), c.Cardinality())
	}
	assert.Equal(t, []uint16{1, 3, 9}, keys)

	keys = keys[:0]
	for c := d.CursorAt(d.Count() - 1); c.HasPartition(); c.StepBack() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []uint16{9, 3, 1}, keys)
}

func TestCursor_Exhausted(t *testing.T) {
	d := mustNew(t, testutil.NewFixture(false).Array(4, 1).Bytes())

	c := d.Cursor()
	c.Advance()
	assert.False(t, c.HasPartition())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, container.KindNone, c.Decode().Kind())
	assert.Equal(t, 0, c.Decode().Cardinality())

	c = d.CursorAt(-1)
	assert.False(t, c.HasPartition())
	assert.Equal(t, container.KindNone, c.Decode().Kind())

	empty := mustNew(t, testutil.NewFixture(false).Bytes())
	assert.False(t, empty.Cursor().HasPartition())
}

func TestCursor_AdvanceUntil(t *testing.T) {
	f := testutil.NewFixture(false)
	for k := uint16(0); k < 1000; k += 10 {
		f.Array(k, 1)
	}
	d := mustNew(t, f.Bytes())

	c := d.Cursor()
	c.AdvanceUntil(0)
	// Only later partitions are considered.
	assert.Equal(t, 1, c.Index())

	c.AdvanceUntil(455)
	require.True(t, c.HasPartition())
	assert.Equal(t, uint16(460), c.Key())

	c.AdvanceUntil(460)
	assert.Equal(t, uint16(470), c.Key())

	c.AdvanceUntil(5000)
	assert.False(t, c.HasPartition())
	assert.Equal(t, d.Count(), c.Index())

	c.AdvanceUntil(0)
	assert.Equal(t, d.Count(), c.Index())
}

func TestCursor_Compare(t *testing.T) {
	a := mustNew(t, testutil.NewFixture(false).Array(2, 1, 2, 3).Array(5, 1).Bytes())
	b := mustNew(t, testutil.NewFixture(false).Array(2, 1).Array(4, 1).Bytes())

	ca, cb := a.Cursor(), b.Cursor()
	// Same key: the larger partition sorts first.
	assert.Equal(t, -1, ca.Compare(cb))
	assert.Equal(t, 1, cb.Compare(ca))
	assert.Equal(t, 0, ca.Compare(ca.Clone()))

	ca.Advance()
	cb.Advance()
	assert.Equal(t, 1, ca.Compare(cb))
	assert.Equal(t, -1, cb.Compare(ca))
}

func TestCursor_CompareUnsignedKeys(t *testing.T) {
	a := mustNew(t, testutil.NewFixture(false).Array(0x7fff, 1).Bytes())
	b := mustNew(t, testutil.NewFixture(false).Array(0x8000, 1).Bytes())

	assert.Equal(t, -1, a.Cursor().Compare(b.Cursor()))
}

func TestCursor_Clone(t *testing.T) {
	d := mustNew(t, testutil.NewFixture(false).Array(1, 1).Array(2, 1).Bytes())

	c := d.Cursor()
	n := c.Clone()
	n.Advance()

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, n.Index())
	assert.Equal(t, uint16(2), n.Key())
}

// intersectKeys returns the keys present in every directory by walking the
// cursors in lockstep.
func intersectKeys(dirs ...*Directory) []uint16 {
	cursors := make([]*Cursor, len(dirs))
	for i, d := range dirs {
		cursors[i] = d.Cursor()
	}

	var out []uint16
	for {
		for _, c := range cursors {
			if !c.HasPartition() {
				return out
			}
		}
		var hi uint16
		for _, c := range cursors {
			hi = max(hi, c.Key())
		}
		match := true
		for _, c := range cursors {
			if c.Key() < hi {
				c.AdvanceUntil(hi)
				match = false
			}
		}
		if match {
			out = append(out, hi)
			for _, c := range cursors {
				c.Advance()
			}
		}
	}
}

func TestCursor_MergeWalk(t *testing.T) {
	rng := testutil.NewRNG(21)
	sets := make([]map[uint16]bool, 3)
	dirs := make([]*Directory, 3)
	for i := range dirs {
		keys := rng.Keys(20000 + 5000*i)
		sets[i] = make(map[uint16]bool, len(keys))
		f := testutil.NewFixture(i%2 == 1)
		for _, k := range keys {
			sets[i][k] = true
			f.Array(k, 1)
		}
		dirs[i] = mustNew(t, f.Bytes())
	}

	var want []uint16
	for k := 0; k < 1<<16; k++ {
		if sets[0][uint16(k)] && sets[1][uint16(k)] && sets[2][uint16(k)] {
			want = append(want, uint16(k))
		}
	}

	assert.Equal(t, want, intersectKeys(dirs...))
}
