// Package region provides a bounds-checked, read-only view over a byte slice.
//
// A Region never owns or copies its bytes; sub-views alias the parent. Every
// read takes an explicit offset, so a Region carries no position state and can
// be copied and shared freely between goroutines.
//
// Reads outside the view return ErrOutOfBounds instead of panicking, which is
// what the header parser needs while it is still validating untrusted input.
// Once a layout has been validated, hot paths read the slice directly.
package region
