package roaringview

import (
	"cmp"

	"github.com/hupe1980/roaringview/container"
)

// Cursor walks the partitions of a Directory in either direction.
//
// A Cursor holds only a position; Decode re-derives the payload view on each
// call. Cursors over different directories can be ordered with Compare, which
// is what k-way merges over several bitmaps need.
type Cursor struct {
	d     *Directory
	index int
}

// Cursor returns a cursor positioned at the first partition.
func (d *Directory) Cursor() *Cursor {
	return d.CursorAt(0)
}

// CursorAt returns a cursor positioned at partition i.
func (d *Directory) CursorAt(i int) *Cursor {
	return &Cursor{d: d, index: i}
}

// Advance moves to the next partition.
func (c *Cursor) Advance() {
	c.index++
}

// StepBack moves to the previous partition.
func (c *Cursor) StepBack() {
	c.index--
}

// AdvanceUntil moves to the first later partition whose key is at least key.
func (c *Cursor) AdvanceUntil(key uint16) {
	c.index = c.d.AdvanceUntil(key, c.index)
}

// HasPartition reports whether the cursor points at a partition.
func (c *Cursor) HasPartition() bool {
	return 0 <= c.index && c.index < c.d.count
}

// Index returns the current partition index.
func (c *Cursor) Index() int {
	return c.index
}

// Key returns the key of the current partition.
func (c *Cursor) Key() uint16 {
	return c.d.KeyAt(c.index)
}

// Cardinality returns the cardinality of the current partition.
func (c *Cursor) Cardinality() int {
	return c.d.CardinalityAt(c.index)
}

// Decode returns the payload of the current partition, or the zero Container
// when the cursor is exhausted.
func (c *Cursor) Decode() container.Container {
	if !c.HasPartition() {
		return container.Container{}
	}
	return c.d.Decode(c.index)
}

// Compare orders cursors by ascending key, then by descending cardinality.
// Both cursors must point at a partition.
func (c *Cursor) Compare(o *Cursor) int {
	if r := cmp.Compare(c.Key(), o.Key()); r != 0 {
		return r
	}
	return cmp.Compare(o.Cardinality(), c.Cardinality())
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	n := *c
	return &n
}
