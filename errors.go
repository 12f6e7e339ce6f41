package roaringview

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the region does not start with a known cookie.
	ErrBadMagic = errors.New("bad magic")

	// ErrTruncated is returned when the header, the metadata tables or a
	// payload extend past the end of the region.
	ErrTruncated = errors.New("truncated region")

	// ErrBadOffset is returned when a payload offset points into the metadata
	// tables or does not increase with the partition index.
	ErrBadOffset = errors.New("bad payload offset")

	// ErrBadCount is returned when the partition count cannot be valid.
	ErrBadCount = errors.New("partition count out of range")

	// ErrUnsortedKeys is returned by strict validation when partition keys are
	// not strictly increasing.
	ErrUnsortedKeys = errors.New("partition keys not strictly increasing")

	// ErrCardinalityMismatch is returned by strict validation when the runs of
	// a run partition do not add up to its stored cardinality.
	ErrCardinalityMismatch = errors.New("run lengths do not match cardinality")
)

// FormatError describes why a region could not be decoded.
//
// Err is one of the sentinel errors of this package, so callers can match
// with errors.Is. The lower-level cause (if any) is kept for the message.
type FormatError struct {
	Err       error
	Offset    int
	Partition int // -1 for the header
	cause     error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("roaringview: %v at offset %d", e.Err, e.Offset)
	if e.Partition >= 0 {
		msg = fmt.Sprintf("roaringview: %v in partition %d at offset %d", e.Err, e.Partition, e.Offset)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func headerError(err error, offset int, cause error) *FormatError {
	return &FormatError{Err: err, Offset: offset, Partition: -1, cause: cause}
}

func partitionError(err error, partition, offset int, cause error) *FormatError {
	return &FormatError{Err: err, Offset: offset, Partition: partition, cause: cause}
}
