package container

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math/bits"
	"sort"

	"github.com/hupe1980/roaringview/internal/format"
	"github.com/hupe1980/roaringview/internal/hash"
)

// Kind identifies the payload encoding of a Container.
type Kind uint8

const (
	// KindNone is the zero Container: no partition.
	KindNone Kind = iota
	// KindArray is a sorted list of 16-bit values.
	KindArray
	// KindBitmap is a fixed 65536-bit set.
	KindBitmap
	// KindRun is a list of runs of consecutive values.
	KindRun
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindArray:
		return "array"
	case KindBitmap:
		return "bitmap"
	case KindRun:
		return "run"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Interval is one run: the values Start through Start+Length inclusive.
type Interval struct {
	Start  uint16
	Length uint16 // run length minus one
}

// Last returns the final value of the run.
func (iv Interval) Last() uint16 {
	return iv.Start + iv.Length
}

// Cardinality returns the number of values in the run.
func (iv Interval) Cardinality() int {
	return int(iv.Length) + 1
}

// Container is a read-only view of one decoded partition payload.
type Container struct {
	kind Kind
	data []byte
	// n is the cardinality for arrays and bitmaps and the run count for runs.
	n int
}

// DecodeArray returns an array view over the first 2*cardinality bytes of view.
func DecodeArray(view []byte, cardinality int) Container {
	size := 2 * cardinality
	return Container{kind: KindArray, data: view[:size:size], n: cardinality}
}

// DecodeBitmap returns a bitmap view over the first 8192 bytes of view.
// cardinality is trusted; it is not recomputed from the words.
func DecodeBitmap(view []byte, cardinality int) Container {
	return Container{kind: KindBitmap, data: view[:format.BitmapBytes:format.BitmapBytes], n: cardinality}
}

// DecodeRun returns a run view over nbrRuns run pairs. view starts at the
// first pair, after the run count.
func DecodeRun(view []byte, nbrRuns int) Container {
	size := format.RunBytes * nbrRuns
	return Container{kind: KindRun, data: view[:size:size], n: nbrRuns}
}

// Kind returns the payload encoding.
func (c Container) Kind() Kind {
	return c.kind
}

// Bytes returns the payload view. It aliases the decoded region.
func (c Container) Bytes() []byte {
	return c.data
}

// SizeInBytes returns the serialized payload size, including the run count
// of run containers.
func (c Container) SizeInBytes() int {
	switch c.kind {
	case KindArray:
		return format.PayloadSize(c.n, 0, false)
	case KindBitmap:
		return format.BitmapBytes
	case KindRun:
		return format.PayloadSize(0, c.n, true)
	default:
		return 0
	}
}

// Cardinality returns the number of values in the container. For run
// containers this sums the run lengths.
func (c Container) Cardinality() int {
	if c.kind != KindRun {
		return c.n
	}
	card := 0
	for i := range c.n {
		card += int(binary.LittleEndian.Uint16(c.data[4*i+2:])) + 1
	}
	return card
}

// NumRuns returns the number of runs of a run container and 0 otherwise.
func (c Container) NumRuns() int {
	if c.kind != KindRun {
		return 0
	}
	return c.n
}

// Run returns run i of a run container.
func (c Container) Run(i int) Interval {
	return Interval{
		Start:  binary.LittleEndian.Uint16(c.data[4*i:]),
		Length: binary.LittleEndian.Uint16(c.data[4*i+2:]),
	}
}

func (c Container) arrayAt(i int) uint16 {
	return binary.LittleEndian.Uint16(c.data[2*i:])
}

func (c Container) word(i int) uint64 {
	return binary.LittleEndian.Uint64(c.data[8*i:])
}

// Contains reports whether the low value v is present.
func (c Container) Contains(v uint16) bool {
	switch c.kind {
	case KindArray:
		idx := sort.Search(c.n, func(i int) bool {
			return c.arrayAt(i) >= v
		})
		return idx < c.n && c.arrayAt(idx) == v
	case KindBitmap:
		return c.word(int(v>>6))&(1<<(v&63)) != 0
	case KindRun:
		idx := sort.Search(c.n, func(i int) bool {
			return c.Run(i).Last() >= v
		})
		return idx < c.n && c.Run(idx).Start <= v
	default:
		return false
	}
}

// Min returns the smallest value. ok is false for an empty container.
func (c Container) Min() (v uint16, ok bool) {
	switch c.kind {
	case KindArray:
		if c.n > 0 {
			return c.arrayAt(0), true
		}
	case KindBitmap:
		for i := range format.BitmapWords {
			if w := c.word(i); w != 0 {
				return uint16(i*64 + bits.TrailingZeros64(w)), true
			}
		}
	case KindRun:
		if c.n > 0 {
			return c.Run(0).Start, true
		}
	}
	return 0, false
}

// Max returns the largest value. ok is false for an empty container.
func (c Container) Max() (v uint16, ok bool) {
	switch c.kind {
	case KindArray:
		if c.n > 0 {
			return c.arrayAt(c.n - 1), true
		}
	case KindBitmap:
		for i := format.BitmapWords - 1; i >= 0; i-- {
			if w := c.word(i); w != 0 {
				return uint16(i*64 + 63 - bits.LeadingZeros64(w)), true
			}
		}
	case KindRun:
		if c.n > 0 {
			return c.Run(c.n - 1).Last(), true
		}
	}
	return 0, false
}

// Values returns an iterator over the values in ascending order.
func (c Container) Values() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		switch c.kind {
		case KindArray:
			for i := range c.n {
				if !yield(c.arrayAt(i)) {
					return
				}
			}
		case KindBitmap:
			for i := range format.BitmapWords {
				w := c.word(i)
				for w != 0 {
					if !yield(uint16(i*64 + bits.TrailingZeros64(w))) {
						return
					}
					w &= w - 1
				}
			}
		case KindRun:
			for i := range c.n {
				iv := c.Run(i)
				for v := int(iv.Start); v <= int(iv.Last()); v++ {
					if !yield(uint16(v)) {
						return
					}
				}
			}
		}
	}
}

// AppendValues appends every value, combined with the high 16 bits of high,
// to dst and returns the extended slice.
func (c Container) AppendValues(dst []uint32, high uint16) []uint32 {
	base := uint32(high) << 16
	for v := range c.Values() {
		dst = append(dst, base|uint32(v))
	}
	return dst
}

// Hash returns a non-cryptographic hash of the kind and payload.
func (c Container) Hash() uint64 {
	if c.kind == KindNone {
		return 0
	}
	return hash.Payload(byte(c.kind), c.data)
}
