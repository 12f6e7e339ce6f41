// Package container decodes the three partition payload encodings of a
// serialized roaring region into zero-copy views.
//
// A partition ("container") holds the low 16 bits of every value that shares
// one 16-bit key. It is stored in one of three shapes:
//
//   - Array:  sorted little-endian uint16 values, 2 bytes each, used up to
//     4096 values.
//   - Bitmap: a 65536-bit set of 1024 little-endian uint64 words (8192 bytes),
//     used above 4096 values.
//   - Run:    little-endian (start, length-1) uint16 pairs. The 2-byte run
//     count that precedes them on disk is consumed by the caller.
//
// Container is a tagged union over these shapes. Every method dispatches with
// a single switch on the kind; there is no interface per encoding. Decoding
// never copies: the returned Container aliases the view it was built from and
// must not outlive it.
package container
