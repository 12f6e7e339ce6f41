// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Validating untrusted data from a serialized region (counts, offsets)
//   - Converting Go's platform-dependent int into the 32-bit fields of the format
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, 16-bit keys), use direct type casts instead to avoid overhead.
package conv
