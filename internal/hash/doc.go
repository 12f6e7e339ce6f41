// Package hash provides the hashing primitives used by the directory.
//
// # CRC32-Castagnoli (CRC32C)
//
// CRC32C checksums the serialized extent of a region. It is hardware
// accelerated on x86 (SSE4.2) and ARM (CRC extension):
//
//	checksum := hash.CRC32C(data)
//
// # Payload hashing
//
// Payload hashes partition contents with xxHash64. The encoding kind is mixed
// in first, so a sorted list and a run list holding the same bytes do not
// collide by construction:
//
//	h := hash.Payload(kind, payload)
//
// Neither hash is cryptographic.
package hash
