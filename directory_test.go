package roaringview

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/roaringview/container"
	"github.com/hupe1980/roaringview/testutil"
)

func seq(from, to int) []uint16 {
	values := make([]uint16, 0, to-from)
	for v := from; v < to; v++ {
		values = append(values, uint16(v))
	}
	return values
}

func mustNew(t *testing.T, data []byte, opts ...Option) *Directory {
	t.Helper()
	d, err := New(data, opts...)
	require.NoError(t, err)
	return d
}

func TestDirectory_LegacyScenario(t *testing.T) {
	data := testutil.NewFixture(false).
		Array(0, 1, 2, 3).
		Bitmap(1, seq(0, 5000)...).
		Bytes()
	d := mustNew(t, data)

	assert.Equal(t, 2, d.Count())
	assert.False(t, d.HasRunPartitions())

	i, ok := d.FindByKey(1)
	require.True(t, ok)
	assert.Equal(t, 1, i)

	c := d.Decode(1)
	assert.Equal(t, container.KindBitmap, c.Kind())
	assert.Equal(t, 5000, c.Cardinality())

	assert.Equal(t, 1, d.AdvanceUntil(1, -1))
	assert.Equal(t, 2, d.AdvanceUntil(2, -1))

	assert.Equal(t, container.KindArray, d.Decode(0).Kind())
	assert.Equal(t, 3, d.Decode(0).Cardinality())
}

func TestDirectory_RunScenario(t *testing.T) {
	data := testutil.NewFixture(true).
		Runs(0, testutil.Run{Start: 0, Length: 9}, testutil.Run{Start: 100, Length: 0}, testutil.Run{Start: 200, Length: 55}).
		Bytes()
	d := mustNew(t, data)

	require.Equal(t, 1, d.Count())
	assert.True(t, d.HasRunPartitions())
	assert.True(t, d.IsRunEncoded(0))
	assert.Equal(t, 14, PayloadSize(0, 3, true))

	c := d.Decode(0)
	assert.Equal(t, container.KindRun, c.Kind())
	assert.Equal(t, 3, c.NumRuns())
	assert.Equal(t, 14, c.SizeInBytes())
	assert.Equal(t, 10+1+56, c.Cardinality())
	assert.Equal(t, d.CardinalityAt(0), c.Cardinality())
	assert.Equal(t, container.Interval{Start: 200, Length: 55}, c.Run(2))
}

func TestDirectory_OffsetLayouts(t *testing.T) {
	build := func(runFormat bool) *testutil.Fixture {
		f := testutil.NewFixture(runFormat)
		for k := range 40 {
			f.Array(uint16(k), uint16(k))
		}
		return f
	}

	t.Run("legacy", func(t *testing.T) {
		f := build(false)
		d := mustNew(t, f.Bytes())
		assert.Equal(t, 8+8*40, f.HeaderSize())
		assert.Equal(t, f.HeaderSize(), d.OffsetOf(0))
		assert.Equal(t, f.HeaderSize()+2*39, d.OffsetOf(39))
	})

	t.Run("run layout shifts tables by the presence words", func(t *testing.T) {
		f := build(true)
		d := mustNew(t, f.Bytes())
		// 40 partitions need two presence words.
		assert.Equal(t, 8+8+8*40, f.HeaderSize())
		assert.Equal(t, f.HeaderSize(), d.OffsetOf(0))
		assert.Equal(t, f.HeaderSize()+2*39, d.OffsetOf(39))
		for i := range 40 {
			assert.Equal(t, uint16(i), d.KeyAt(i))
			assert.False(t, d.IsRunEncoded(i))
			assert.True(t, d.Decode(i).Contains(uint16(i)))
		}
	})
}

func TestDirectory_MixedEncodings(t *testing.T) {
	data := testutil.NewFixture(true).
		Array(2, 5, 6).
		Runs(3, testutil.Run{Start: 0, Length: 0xffff}).
		Bitmap(0x8000, seq(1000, 6000)...).
		Array(0xffff, 0xffff).
		Bytes()
	d := mustNew(t, data, WithStrictValidation())

	kinds := []container.Kind{container.KindArray, container.KindRun, container.KindBitmap, container.KindArray}
	for i, want := range kinds {
		assert.Equal(t, want, d.Decode(i).Kind(), "partition %d", i)
		assert.Equal(t, d.CardinalityAt(i), d.Decode(i).Cardinality(), "partition %d", i)
	}
	assert.Equal(t, 65536, d.CardinalityAt(1))
	assert.False(t, d.IsRunEncoded(0))
	assert.True(t, d.IsRunEncoded(1))

	info := d.Partition(2)
	assert.Equal(t, PartitionInfo{Key: 0x8000, Cardinality: 5000, Offset: d.OffsetOf(2), RunEncoded: false}, info)

	// Keys at and above 0x8000 must sort after the low ones.
	i, ok := d.FindByKey(0x8000)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	i, ok = d.FindByKey(0xffff)
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, 2, d.AdvanceUntil(0x7fff, 0))
}

func TestDirectory_FindByKey(t *testing.T) {
	rng := testutil.NewRNG(4711)
	keys := rng.Keys(300)
	f := testutil.NewFixture(false)
	for j, k := range keys {
		f.Array(k, rng.LowValues(1+j%20)...)
	}
	d := mustNew(t, f.Bytes(), WithStrictValidation())

	present := make(map[uint16]int, len(keys))
	for i, k := range keys {
		present[k] = i
	}

	for k := 0; k < 1<<16; k++ {
		i, ok := d.FindByKey(uint16(k))
		want, found := present[uint16(k)]
		require.Equal(t, found, ok, "key %d", k)
		if !found {
			idx := d.Index(uint16(k))
			require.Negative(t, idx)
			ins := -idx - 1
			// Insertion point: first partition with a greater key.
			require.Equal(t, d.AdvanceUntil(uint16(k), -1), ins)
			continue
		}
		require.Equal(t, want, i)
		require.Equal(t, uint16(k), d.KeyAt(i))
		require.Equal(t, d.CardinalityAt(i), d.Decode(i).Cardinality())
	}
}

func TestDirectory_KeysStrictlyIncreasing(t *testing.T) {
	rng := testutil.NewRNG(7)
	d := mustNew(t, testutil.FromValues(rng.Values(20000, 500), false))

	for i := 1; i < d.Count(); i++ {
		require.Less(t, d.KeyAt(i-1), d.KeyAt(i))
	}
}

func TestDirectory_AdvanceUntilMatchesLinearScan(t *testing.T) {
	rng := testutil.NewRNG(99)
	f := testutil.NewFixture(true)
	for _, k := range rng.Keys(45) {
		f.Array(k, 1)
	}
	d := mustNew(t, f.Bytes())

	linear := func(target uint16, from int) int {
		for i := max(from+1, 0); i < d.Count(); i++ {
			if d.KeyAt(i) >= target {
				return i
			}
		}
		return d.Count()
	}

	for from := -1; from <= d.Count(); from++ {
		for target := 0; target < 1<<16; target++ {
			if got, want := d.AdvanceUntil(uint16(target), from), linear(uint16(target), from); got != want {
				t.Fatalf("AdvanceUntil(%d, %d) = %d, want %d", target, from, got, want)
			}
		}
	}
}

func TestDirectory_Empty(t *testing.T) {
	for _, runFormat := range []bool{false, true} {
		d := mustNew(t, testutil.NewFixture(runFormat).Bytes())

		assert.Equal(t, 0, d.Count())
		assert.True(t, d.IsEmpty())
		assert.Equal(t, 8, d.SerializedExtent())
		assert.Equal(t, -1, d.Index(0))
		assert.Equal(t, -1, d.Index(0xffff))
		_, ok := d.FindByKey(12)
		assert.False(t, ok)
		assert.Equal(t, 0, d.AdvanceUntil(0, -1))
		assert.Equal(t, uint64(0), d.ContentHash())
		_, ok = d.Container(0)
		assert.False(t, ok)
	}
}

func TestDirectory_RoaringEncodedRegion(t *testing.T) {
	rng := testutil.NewRNG(1234)
	rb := roaring.New()
	rb.AddMany(rng.Values(3000, 50))
	// A dense partition forces a bitset container.
	for v := uint32(60 << 16); v < 60<<16+20000; v++ {
		rb.Add(v)
	}

	data, err := rb.ToBytes()
	require.NoError(t, err)

	d := mustNew(t, data, WithStrictValidation())
	assert.False(t, d.HasRunPartitions())
	assert.Equal(t, len(data), d.SerializedExtent())
	assert.Equal(t, rb.GetCardinality(), d.Cardinality())

	i, ok := d.FindByKey(60)
	require.True(t, ok)
	assert.Equal(t, container.KindBitmap, d.Decode(i).Kind())

	assert.Equal(t, rb.ToArray(), slices.Collect(d.Values()))
}

func TestDirectory_EmbeddedRegion(t *testing.T) {
	data := testutil.NewFixture(false).Array(3, 1, 2).Bytes()
	extent := len(data)
	buf := append(slices.Clone(data), 0xde, 0xad, 0xbe, 0xef)

	d := mustNew(t, buf)
	assert.Equal(t, extent, d.SerializedExtent())
	assert.Equal(t, data, d.Bytes())
	assert.Equal(t, extent, cap(d.Bytes()))
}

func TestDirectory_ZeroCopy(t *testing.T) {
	data := testutil.NewFixture(false).Array(0, 10, 20).Bytes()
	d := mustNew(t, data)

	off := d.OffsetOf(0)
	// Overwrite 20 with 30 in place; the next decode sees it.
	data[off+2] = 30
	assert.True(t, d.Decode(0).Contains(30))
	assert.False(t, d.Contains(20))
}

func TestDirectory_Clone(t *testing.T) {
	data := testutil.NewFixture(false).Array(0, 1).Array(9, 2).Bytes()
	d := mustNew(t, data)
	c := d.Clone()

	assert.NotSame(t, d, c)
	assert.Equal(t, d.Count(), c.Count())
	assert.Same(t, &d.Bytes()[0], &c.Bytes()[0])

	cur := c.Cursor()
	cur.Advance()
	assert.Equal(t, uint16(9), cur.Key())
	assert.Equal(t, 0, d.Cursor().Index())
}

func TestDirectory_Partitions(t *testing.T) {
	data := testutil.NewFixture(true).
		Array(1, 1).
		Runs(4, testutil.Run{Start: 0, Length: 3}).
		Array(8, 1, 2).
		Bytes()
	d := mustNew(t, data)

	var got []PartitionInfo
	for i, p := range d.Partitions() {
		assert.Equal(t, d.Partition(i), p)
		got = append(got, p)
	}
	require.Len(t, got, 3)
	assert.Equal(t, []uint16{1, 4, 8}, []uint16{got[0].Key, got[1].Key, got[2].Key})
	assert.Equal(t, []int{1, 4, 2}, []int{got[0].Cardinality, got[1].Cardinality, got[2].Cardinality})
	assert.True(t, got[1].RunEncoded)

	n := 0
	for range d.Partitions() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestDirectory_Container(t *testing.T) {
	data := testutil.NewFixture(false).Array(5, 7, 8).Bytes()
	d := mustNew(t, data)

	c, ok := d.Container(5)
	require.True(t, ok)
	assert.True(t, c.Contains(8))

	_, ok = d.Container(6)
	assert.False(t, ok)
}

func TestDirectory_IndexOutOfRangePanics(t *testing.T) {
	d := mustNew(t, testutil.NewFixture(false).Array(0, 1).Bytes())
	assert.Panics(t, func() { d.Decode(5) })
	assert.Panics(t, func() { d.KeyAt(-1) })
}
