package roaringview

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/roaringview/container"
	"github.com/hupe1980/roaringview/internal/format"
)

// Contains reports whether x is in the set.
func (d *Directory) Contains(x uint32) bool {
	c, ok := d.Container(uint16(x >> 16))
	if !ok {
		return false
	}
	return c.Contains(uint16(x))
}

// Cardinality returns the number of values in the set.
func (d *Directory) Cardinality() uint64 {
	var n uint64
	for i := range d.count {
		n += uint64(d.CardinalityAt(i))
	}
	return n
}

// IsEmpty reports whether the set has no values.
func (d *Directory) IsEmpty() bool {
	return d.count == 0
}

// Minimum returns the smallest value in the set.
func (d *Directory) Minimum() (uint32, bool) {
	if d.count == 0 {
		return 0, false
	}
	low, ok := d.Decode(0).Min()
	return uint32(d.KeyAt(0))<<16 | uint32(low), ok
}

// Maximum returns the largest value in the set.
func (d *Directory) Maximum() (uint32, bool) {
	if d.count == 0 {
		return 0, false
	}
	last := d.count - 1
	high, ok := d.Decode(last).Max()
	return uint32(d.KeyAt(last))<<16 | uint32(high), ok
}

// Values returns an iterator over the set in ascending order.
func (d *Directory) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := range d.count {
			base := uint32(d.KeyAt(i)) << 16
			for v := range d.Decode(i).Values() {
				if !yield(base | uint32(v)) {
					return
				}
			}
		}
	}
}

// ToRoaring copies the set into a mutable roaring bitmap.
func (d *Directory) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	buf := make([]uint32, 0, format.ArrayMaxSize)
	for i := range d.count {
		key := d.KeyAt(i)
		c := d.Decode(i)
		if c.Kind() == container.KindRun {
			base := uint64(key) << 16
			for r := range c.NumRuns() {
				iv := c.Run(r)
				rb.AddRange(base+uint64(iv.Start), base+uint64(iv.Last())+1)
			}
			continue
		}
		buf = c.AppendValues(buf[:0], key)
		rb.AddMany(buf)
	}
	return rb
}
