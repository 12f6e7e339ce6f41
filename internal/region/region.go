package region

import (
	"encoding/binary"
	"errors"
)

// ErrOutOfBounds is returned when a read or sub-view leaves the region.
var ErrOutOfBounds = errors.New("region: out of bounds")

// Region is a read-only view of a byte slice.
type Region struct {
	data []byte
}

// New wraps data without copying it.
func New(data []byte) Region {
	return Region{data: data}
}

// Len returns the size of the region in bytes.
func (r Region) Len() int {
	return len(r.data)
}

// Bytes returns the underlying slice. The slice aliases the region.
func (r Region) Bytes() []byte {
	return r.data
}

// Contains reports whether [offset, offset+size) lies inside the region.
func (r Region) Contains(offset, size int) bool {
	return offset >= 0 && size >= 0 && offset <= len(r.data) && size <= len(r.data)-offset
}

// Slice returns a zero-copy view of [offset, offset+size).
func (r Region) Slice(offset, size int) ([]byte, error) {
	if !r.Contains(offset, size) {
		return nil, ErrOutOfBounds
	}
	return r.data[offset : offset+size : offset+size], nil
}

// Sub returns the region [offset, offset+size) as a new Region.
func (r Region) Sub(offset, size int) (Region, error) {
	b, err := r.Slice(offset, size)
	if err != nil {
		return Region{}, err
	}
	return Region{data: b}, nil
}

// Truncate returns the first size bytes of the region. The capacity of the
// result is clipped so the hidden tail cannot be reached by re-slicing.
func (r Region) Truncate(size int) (Region, error) {
	return r.Sub(0, size)
}

// Uint16 reads a little-endian uint16 at offset.
func (r Region) Uint16(offset int) (uint16, error) {
	if !r.Contains(offset, 2) {
		return 0, ErrOutOfBounds
	}
	return binary.LittleEndian.Uint16(r.data[offset:]), nil
}

// Uint32 reads a little-endian uint32 at offset.
func (r Region) Uint32(offset int) (uint32, error) {
	if !r.Contains(offset, 4) {
		return 0, ErrOutOfBounds
	}
	return binary.LittleEndian.Uint32(r.data[offset:]), nil
}
