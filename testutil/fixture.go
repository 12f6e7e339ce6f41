package testutil

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/roaringview/internal/conv"
	"github.com/hupe1980/roaringview/internal/format"
)

// Run is one run of consecutive values: Start through Start+Length.
type Run struct {
	Start  uint16
	Length uint16 // run length minus one
}

type partKind uint8

const (
	partArray partKind = iota
	partBitmap
	partRun
)

type part struct {
	key    uint16
	kind   partKind
	values []uint16
	runs   []Run
}

func (p part) cardinality() int {
	if p.kind != partRun {
		return len(p.values)
	}
	n := 0
	for _, r := range p.runs {
		n += int(r.Length) + 1
	}
	return n
}

func (p part) size() int {
	switch p.kind {
	case partRun:
		return format.RunHeaderBytes + format.RunBytes*len(p.runs)
	case partBitmap:
		return format.BitmapBytes
	default:
		return 2 * len(p.values)
	}
}

// Fixture encodes test regions. Partitions are written in the order they are
// added; the fixture does not sort or validate them, so it can also produce
// malformed regions.
type Fixture struct {
	runFormat bool
	parts     []part
}

// NewFixture returns an empty fixture. runFormat selects the layout with a run
// presence bitmap (CookieRuns) instead of the legacy layout.
func NewFixture(runFormat bool) *Fixture {
	return &Fixture{runFormat: runFormat}
}

// Array adds a sorted-list partition.
func (f *Fixture) Array(key uint16, values ...uint16) *Fixture {
	f.parts = append(f.parts, part{key: key, kind: partArray, values: values})
	return f
}

// Bitmap adds a bitset partition. Readers only treat it as a bitset when it
// holds more than 4096 values.
func (f *Fixture) Bitmap(key uint16, values ...uint16) *Fixture {
	f.parts = append(f.parts, part{key: key, kind: partBitmap, values: values})
	return f
}

// Values adds a partition encoded as an array or a bitset, whichever the
// cardinality calls for.
func (f *Fixture) Values(key uint16, values ...uint16) *Fixture {
	if len(values) > format.ArrayMaxSize {
		return f.Bitmap(key, values...)
	}
	return f.Array(key, values...)
}

// Runs adds a run partition. It panics on a legacy-layout fixture.
func (f *Fixture) Runs(key uint16, runs ...Run) *Fixture {
	if !f.runFormat {
		panic("testutil: run partitions need the run layout")
	}
	f.parts = append(f.parts, part{key: key, kind: partRun, runs: runs})
	return f
}

// HeaderSize returns the offset of the first payload.
func (f *Fixture) HeaderSize() int {
	n := len(f.parts)
	size := format.HeaderBytes + 2*format.EntryBytes*n
	if f.runFormat {
		size += format.EntryBytes * format.PresenceWords(n)
	}
	return size
}

// Bytes encodes the fixture.
func (f *Fixture) Bytes() []byte {
	n := len(f.parts)
	total := f.HeaderSize()
	for _, p := range f.parts {
		total += p.size()
	}
	buf := make([]byte, total)

	cookie := format.CookieNoRuns
	if f.runFormat {
		cookie = format.CookieRuns
	}
	binary.LittleEndian.PutUint32(buf[0:], cookie)
	binary.LittleEndian.PutUint32(buf[4:], mustUint32(n))

	metadataBase := format.HeaderBytes
	if f.runFormat {
		for i, p := range f.parts {
			if p.kind != partRun {
				continue
			}
			at := format.HeaderBytes + format.EntryBytes*(i/32)
			w := binary.LittleEndian.Uint32(buf[at:])
			binary.LittleEndian.PutUint32(buf[at:], w|1<<(i%32))
		}
		metadataBase += format.EntryBytes * format.PresenceWords(n)
	}
	offsetsBase := metadataBase + format.EntryBytes*n

	off := f.HeaderSize()
	for i, p := range f.parts {
		binary.LittleEndian.PutUint16(buf[metadataBase+format.EntryBytes*i:], p.key)
		binary.LittleEndian.PutUint16(buf[metadataBase+format.EntryBytes*i+2:], uint16(p.cardinality()-1))
		binary.LittleEndian.PutUint32(buf[offsetsBase+format.EntryBytes*i:], mustUint32(off))
		writePayload(buf[off:off+p.size()], p)
		off += p.size()
	}
	return buf
}

func writePayload(dst []byte, p part) {
	switch p.kind {
	case partRun:
		binary.LittleEndian.PutUint16(dst, uint16(len(p.runs)))
		for i, r := range p.runs {
			binary.LittleEndian.PutUint16(dst[format.RunHeaderBytes+format.RunBytes*i:], r.Start)
			binary.LittleEndian.PutUint16(dst[format.RunHeaderBytes+format.RunBytes*i+2:], r.Length)
		}
	case partBitmap:
		for _, v := range p.values {
			at := 8 * int(v/64)
			w := binary.LittleEndian.Uint64(dst[at:])
			binary.LittleEndian.PutUint64(dst[at:], w|1<<(v%64))
		}
	default:
		for i, v := range p.values {
			binary.LittleEndian.PutUint16(dst[2*i:], v)
		}
	}
}

func mustUint32(v int) uint32 {
	u, err := conv.IntToUint32(v)
	if err != nil {
		panic(fmt.Sprintf("testutil: %v", err))
	}
	return u
}

// FromValues encodes sorted, distinct values as arrays and bitsets.
func FromValues(values []uint32, runFormat bool) []byte {
	f := NewFixture(runFormat)
	for i := 0; i < len(values); {
		key := uint16(values[i] >> 16)
		j := i
		low := make([]uint16, 0)
		for j < len(values) && uint16(values[j]>>16) == key {
			low = append(low, uint16(values[j]))
			j++
		}
		f.Values(key, low...)
		i = j
	}
	return f.Bytes()
}
