// Package roaringview provides read-only, zero-copy access to serialized
// roaring bitmaps.
//
// A roaring bitmap splits a set of 32-bit integers into partitions keyed by
// the high 16 bits. Each partition stores the low 16 bits of its values as a
// sorted list, a bitset or a list of runs. The serialized form starts with a
// directory (cookie, partition count, optional run presence bitmap, a
// key/cardinality table and an offset table) followed by the payloads.
//
// Directory parses that header once and then answers every query straight
// from the bytes. Nothing is materialized: payloads are decoded into views
// that alias the region on every access.
//
// # Quick Start
//
//	d, err := roaringview.New(data)
//	if err != nil {
//	    return err
//	}
//
//	if d.Contains(42) {
//	    // ...
//	}
//
//	i, ok := d.FindByKey(3)     // partition holding values 3<<16 .. 3<<16|0xffff
//	c := d.Decode(i)            // container.Container view
//	n := c.Cardinality()
//
// # Merging
//
// Set-algebra routines walk several directories in key order. Cursor keeps a
// position and skips ahead with a galloping search:
//
//	a, b := da.Cursor(), db.Cursor()
//	for a.HasPartition() && b.HasPartition() {
//	    switch {
//	    case a.Key() < b.Key():
//	        a.AdvanceUntil(b.Key())
//	    case a.Key() > b.Key():
//	        b.AdvanceUntil(a.Key())
//	    default:
//	        // same key, combine a.Decode() and b.Decode()
//	        a.Advance()
//	        b.Advance()
//	    }
//	}
//
// Cursor.Compare orders cursors by key and then by descending cardinality,
// which is the order a heap over many cursors wants.
//
// # Layout Variants
//
// Regions starting with CookieNoRuns have no run partitions and no presence
// bitmap; this is also what github.com/RoaringBitmap/roaring/v2 writes for
// bitmaps without run containers. Regions starting with CookieRuns carry a
// presence bitmap of ceil(count/32) words right after the count, which shifts
// the key and offset tables.
//
// # Embedding
//
// New computes the serialized extent from the last payload and ignores
// anything after it, so a region can be read straight out of a larger buffer.
// WriteTo and Bytes return exactly that extent.
//
// # Errors
//
// Construction is the only step that validates. It fails with a *FormatError
// wrapping ErrBadMagic, ErrTruncated, ErrBadCount or ErrBadOffset (and, with
// WithStrictValidation, ErrUnsortedKeys or ErrCardinalityMismatch). After New
// succeeds no read can leave the region, and all lookups are total. Partition
// indexes outside [0, Count()) are programming errors and panic.
//
// # Concurrency
//
// A Directory is immutable. Any number of goroutines may share one, or share
// clones of it, without synchronization. Cursors are cheap, independent
// positions and should not be shared.
package roaringview
