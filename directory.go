package roaringview

import (
	"encoding/binary"
	"iter"
	"time"

	"github.com/hupe1980/roaringview/container"
	"github.com/hupe1980/roaringview/internal/format"
	"github.com/hupe1980/roaringview/internal/keys"
	"github.com/hupe1980/roaringview/internal/region"
)

const (
	// CookieRuns is the magic of regions that may contain run partitions.
	CookieRuns = format.CookieRuns
	// CookieNoRuns is the magic of the legacy layout without run partitions.
	CookieNoRuns = format.CookieNoRuns
	// ArrayMaxSize is the largest cardinality stored as a sorted list.
	ArrayMaxSize = format.ArrayMaxSize
)

// PayloadSize returns the serialized size of a partition payload: 2+4*nbrRuns
// for run partitions, 8192 for bitsets (cardinality above ArrayMaxSize) and
// 2*cardinality for sorted lists.
func PayloadSize(cardinality, nbrRuns int, runEncoded bool) int {
	return format.PayloadSize(cardinality, nbrRuns, runEncoded)
}

// PartitionInfo is the metadata of one partition.
type PartitionInfo struct {
	Key         uint16
	Cardinality int
	Offset      int
	RunEncoded  bool
}

// Directory is a read-only view of a serialized roaring bitmap.
//
// A Directory never copies or modifies its region. Partition payloads are
// decoded on every access and alias the region, so the region must outlive
// the Directory and everything decoded from it.
//
// All methods are safe for concurrent use.
type Directory struct {
	data        []byte
	count       int
	runs        bool
	keys        keys.Table
	offsetsBase int

	logger  *Logger
	metrics MetricsCollector
}

// New parses the region in data.
//
// Only the serialized extent is retained: bytes past the last payload are
// ignored, so data may be a prefix of a larger buffer. The region is retained
// by the Directory; callers must not modify it afterwards.
func New(data []byte, optFns ...Option) (*Directory, error) {
	opts := applyOptions(optFns)

	start := time.Now()
	r := region.New(data)
	l, err := parseHeader(r, opts.strict)
	elapsed := time.Since(start)

	if err != nil {
		opts.metricsCollector.RecordLoad(0, 0, elapsed, err)
		opts.logger.LogLoad(len(data), 0, false, 0, err)
		return nil, err
	}
	opts.metricsCollector.RecordLoad(l.count, l.extent, elapsed, nil)
	opts.logger.LogLoad(len(data), l.count, l.runs, l.extent, nil)

	// parseHeader guarantees the extent fits.
	view, _ := r.Truncate(l.extent)
	clipped := view.Bytes()
	return &Directory{
		data:        clipped,
		count:       l.count,
		runs:        l.runs,
		keys:        keys.NewTable(clipped[l.metadataBase:], l.count),
		offsetsBase: l.offsetsBase,
		logger:      opts.logger.WithPartitions(l.count),
		metrics:     opts.metricsCollector,
	}, nil
}

// Clone returns a Directory over the same region. No bytes are copied.
func (d *Directory) Clone() *Directory {
	c := *d
	return &c
}

// Count returns the number of partitions.
func (d *Directory) Count() int {
	return d.count
}

// HasRunPartitions reports whether the region uses the layout with a run
// presence bitmap.
func (d *Directory) HasRunPartitions() bool {
	return d.runs
}

// KeyAt returns the key of partition i. i must be in [0, Count()).
func (d *Directory) KeyAt(i int) uint16 {
	return d.keys.KeyAt(i)
}

// CardinalityAt returns the number of values in partition i.
// i must be in [0, Count()).
func (d *Directory) CardinalityAt(i int) int {
	return d.keys.CardinalityAt(i)
}

// IsRunEncoded reports whether partition i is stored as runs.
// i must be in [0, Count()).
func (d *Directory) IsRunEncoded(i int) bool {
	if !d.runs {
		return false
	}
	return isRunBit(d.data, i)
}

// OffsetOf returns the byte offset of the payload of partition i.
// i must be in [0, Count()).
func (d *Directory) OffsetOf(i int) int {
	return int(binary.LittleEndian.Uint32(d.data[d.offsetsBase+format.EntryBytes*i:]))
}

// Partition returns the metadata of partition i.
func (d *Directory) Partition(i int) PartitionInfo {
	return PartitionInfo{
		Key:         d.KeyAt(i),
		Cardinality: d.CardinalityAt(i),
		Offset:      d.OffsetOf(i),
		RunEncoded:  d.IsRunEncoded(i),
	}
}

// Partitions returns an iterator over the metadata of every partition in
// key order.
func (d *Directory) Partitions() iter.Seq2[int, PartitionInfo] {
	return func(yield func(int, PartitionInfo) bool) {
		for i := range d.count {
			if !yield(i, d.Partition(i)) {
				return
			}
		}
	}
}

// Index returns the index of the partition holding key, or -(p+1) where p is
// the index the key would be inserted at.
func (d *Directory) Index(key uint16) int {
	return d.keys.Search(key)
}

// FindByKey returns the index of the partition holding key.
func (d *Directory) FindByKey(key uint16) (int, bool) {
	i := d.keys.Search(key)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// AdvanceUntil returns the smallest partition index greater than from whose
// key is at least target, or Count() if there is none. from may be -1.
//
// The search gallops from from+1, so skipping a few partitions costs a few
// probes regardless of Count().
func (d *Directory) AdvanceUntil(target uint16, from int) int {
	return d.keys.AdvanceUntil(target, from)
}

// Decode returns a view of the payload of partition i.
// i must be in [0, Count()).
func (d *Directory) Decode(i int) container.Container {
	off := d.OffsetOf(i)
	card := d.CardinalityAt(i)
	run := d.IsRunEncoded(i)

	switch partitionKind(run, card) {
	case container.KindRun:
		n := int(binary.LittleEndian.Uint16(d.data[off:]))
		return container.DecodeRun(d.data[off+format.RunHeaderBytes:], n)
	case container.KindBitmap:
		return container.DecodeBitmap(d.data[off:], card)
	default:
		return container.DecodeArray(d.data[off:], card)
	}
}

// Container returns the payload of the partition holding key.
func (d *Directory) Container(key uint16) (container.Container, bool) {
	i, ok := d.FindByKey(key)
	if !ok {
		return container.Container{}, false
	}
	return d.Decode(i), true
}

// partitionKind picks the payload encoding. The run flag wins over the
// cardinality threshold.
func partitionKind(run bool, cardinality int) container.Kind {
	switch {
	case run:
		return container.KindRun
	case cardinality > format.ArrayMaxSize:
		return container.KindBitmap
	default:
		return container.KindArray
	}
}
