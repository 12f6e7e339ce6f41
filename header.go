package roaringview

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/roaringview/internal/conv"
	"github.com/hupe1980/roaringview/internal/format"
	"github.com/hupe1980/roaringview/internal/keys"
	"github.com/hupe1980/roaringview/internal/region"
)

// layout is everything the header parser derives from a region.
type layout struct {
	count        int
	runs         bool
	metadataBase int
	offsetsBase  int
	extent       int
}

// parseHeader validates r and computes the layout of the directory it holds.
//
// After a successful parse every key, cardinality, offset, run count and
// payload of the region lies inside [0, extent).
func parseHeader(r region.Region, strict bool) (layout, error) {
	cookie, err := r.Uint32(0)
	if err != nil {
		return layout{}, headerError(ErrTruncated, 0, err)
	}

	var l layout
	switch cookie {
	case format.CookieRuns:
		l.runs = true
	case format.CookieNoRuns:
	default:
		return layout{}, headerError(ErrBadMagic, 0, fmt.Errorf("cookie %d", cookie))
	}

	rawCount, err := r.Uint32(4)
	if err != nil {
		return layout{}, headerError(ErrTruncated, 4, err)
	}
	// At most one partition per 16-bit key.
	if rawCount > format.MaxCardinality {
		return layout{}, headerError(ErrBadCount, 4, fmt.Errorf("count %d", rawCount))
	}
	count, err := conv.Uint32ToInt(rawCount)
	if err != nil {
		return layout{}, headerError(ErrBadCount, 4, err)
	}
	l.count = count

	l.metadataBase = format.HeaderBytes
	if l.runs {
		l.metadataBase += format.EntryBytes * format.PresenceWords(count)
	}
	l.offsetsBase = l.metadataBase + format.EntryBytes*count
	tablesEnd := l.offsetsBase + format.EntryBytes*count
	if !r.Contains(0, tablesEnd) {
		return layout{}, headerError(ErrTruncated, r.Len(), fmt.Errorf("metadata needs %d bytes", tablesEnd))
	}

	if count == 0 {
		l.extent = l.metadataBase
		return l, nil
	}

	data := r.Bytes()
	tbl := keys.NewTable(data[l.metadataBase:], count)
	end := tablesEnd
	for i := range count {
		off, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[l.offsetsBase+format.EntryBytes*i:]))
		if err != nil {
			return layout{}, partitionError(ErrBadOffset, i, end, err)
		}
		if off < end {
			return layout{}, partitionError(ErrBadOffset, i, off, fmt.Errorf("payloads must start at or after %d", end))
		}

		card := tbl.CardinalityAt(i)
		run := l.runs && isRunBit(data, i)
		nbrRuns := 0
		if run {
			n, err := r.Uint16(off)
			if err != nil {
				return layout{}, partitionError(ErrTruncated, i, off, err)
			}
			nbrRuns = int(n)
		}

		size := format.PayloadSize(card, nbrRuns, run)
		if !r.Contains(off, size) {
			return layout{}, partitionError(ErrTruncated, i, off, fmt.Errorf("payload needs %d bytes", size))
		}

		if strict {
			if i > 0 && tbl.KeyAt(i) <= tbl.KeyAt(i-1) {
				return layout{}, partitionError(ErrUnsortedKeys, i, l.metadataBase+format.EntryBytes*i,
					fmt.Errorf("key %d follows %d", tbl.KeyAt(i), tbl.KeyAt(i-1)))
			}
			if run {
				if got := runCardinality(data[off+format.RunHeaderBytes:], nbrRuns); got != card {
					return layout{}, partitionError(ErrCardinalityMismatch, i, off, fmt.Errorf("runs hold %d, header says %d", got, card))
				}
			}
		}

		end = off + size
	}

	l.extent = end
	return l, nil
}

// isRunBit tests bit i of the run presence bitmap that starts after the count.
func isRunBit(data []byte, i int) bool {
	word := binary.LittleEndian.Uint32(data[format.HeaderBytes+format.EntryBytes*(i/32):])
	return word&(1<<(i&31)) != 0
}

func runCardinality(runs []byte, nbrRuns int) int {
	card := 0
	for i := range nbrRuns {
		card += int(binary.LittleEndian.Uint16(runs[format.RunBytes*i+2:])) + 1
	}
	return card
}
