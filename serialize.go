package roaringview

import (
	"io"
	"time"

	"github.com/hupe1980/roaringview/internal/hash"
)

// SerializedExtent returns the number of bytes the region occupies. It can be
// smaller than the slice passed to New.
func (d *Directory) SerializedExtent() int {
	return len(d.data)
}

// Bytes returns the serialized region. The slice aliases the region and must
// not be modified.
func (d *Directory) Bytes() []byte {
	return d.data
}

// WriteTo writes the serialized region to w unchanged, in a single Write.
// Errors from w are returned as is.
func (d *Directory) WriteTo(w io.Writer) (int64, error) {
	start := time.Now()
	n, err := w.Write(d.data)
	if err == nil && n < len(d.data) {
		err = io.ErrShortWrite
	}
	d.metrics.RecordWrite(int64(n), time.Since(start), err)
	d.logger.LogWrite(int64(n), err)
	return int64(n), err
}

// ContentHash returns an order-dependent hash of every partition's key and
// payload. It is not cryptographic; two regions holding the same values in
// different encodings hash differently.
func (d *Directory) ContentHash() uint64 {
	var h uint64
	for i := range d.count {
		h = hash.Combine(h, d.KeyAt(i), d.Decode(i).Hash())
	}
	return h
}

// Checksum returns the CRC32-Castagnoli checksum of the serialized region.
func (d *Directory) Checksum() uint32 {
	return hash.CRC32C(d.data)
}
