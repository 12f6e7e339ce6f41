package keys

import "encoding/binary"

// Table is a view of n key/cardinality entries.
//
// Table performs no bounds checks of its own; the caller validates that the
// backing slice holds all n entries.
type Table struct {
	data []byte
	n    int
}

// NewTable returns a table over the first n entries of data.
func NewTable(data []byte, n int) Table {
	return Table{data: data, n: n}
}

// Len returns the number of entries.
func (t Table) Len() int {
	return t.n
}

// KeyAt returns the key of entry i.
func (t Table) KeyAt(i int) uint16 {
	return binary.LittleEndian.Uint16(t.data[4*i:])
}

// CardinalityAt returns the cardinality of entry i (the stored value plus one).
func (t Table) CardinalityAt(i int) int {
	return int(binary.LittleEndian.Uint16(t.data[4*i+2:])) + 1
}

// Search returns the index of key, or -(insertion point + 1) if the key is
// absent.
func (t Table) Search(key uint16) int {
	low, high := 0, t.n-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch k := t.KeyAt(mid); {
		case k < key:
			low = mid + 1
		case k > key:
			high = mid - 1
		default:
			return mid
		}
	}
	return -(low + 1)
}

// AdvanceUntil returns the smallest index greater than from whose key is at
// least target, or Len() if there is none.
func (t Table) AdvanceUntil(target uint16, from int) int {
	lower := max(from+1, 0)
	if lower >= t.n {
		return t.n
	}
	// Sequential scans usually land here.
	if t.KeyAt(lower) >= target {
		return lower
	}

	span := 1
	for lower+span < t.n && t.KeyAt(lower+span) < target {
		span *= 2
	}
	upper := lower + span
	if upper >= t.n {
		upper = t.n - 1
	}

	k := t.KeyAt(upper)
	if k == target {
		return upper
	}
	if k < target {
		return t.n
	}

	// The previous span was still short of target.
	lower += span / 2

	// key(lower) < target < key(upper)
	for lower+1 != upper {
		mid := int(uint(lower+upper) >> 1)
		switch k := t.KeyAt(mid); {
		case k == target:
			return mid
		case k < target:
			lower = mid
		default:
			upper = mid
		}
	}
	return upper
}
