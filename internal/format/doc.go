// Package format holds the constants of the serialized roaring layout and the
// payload size rule shared by the header parser, the container decoders and
// the test fixture encoder.
//
// # Layout
//
// All integers are little-endian. Offsets are from the start of the region.
//
//	+--------------------+  0
//	| cookie       u32   |
//	+--------------------+  4
//	| count        u32   |
//	+--------------------+  8
//	| run presence words |  4*ceil(count/32), only with CookieRuns
//	+--------------------+  metadataBase
//	| key u16, card-1 u16|  4*count
//	+--------------------+  metadataBase + 4*count
//	| payload offset u32 |  4*count
//	+--------------------+
//	| payloads ...       |
//	+--------------------+
package format
