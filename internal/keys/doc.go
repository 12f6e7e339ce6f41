// Package keys implements the searches over the key/cardinality table of a
// serialized roaring region.
//
// The table is a run of 4-byte entries: a little-endian uint16 key followed by
// a little-endian uint16 holding cardinality minus one. Keys are compared as
// unsigned values; a key of 0x8000 sorts after 0x7fff.
//
// Two searches are provided:
//
//   - Search: classic binary search, O(log n). On a miss it returns the
//     insertion point encoded as -(low+1).
//   - AdvanceUntil: galloping search from a known position. The probe span
//     doubles until it overshoots the target, then a binary search runs inside
//     the last span. The cost is O(log gap), which is what merge loops that
//     repeatedly skip a few partitions ahead want.
package keys
