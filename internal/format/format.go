package format

const (
	// CookieRuns marks a region whose header carries a run presence bitmap.
	CookieRuns uint32 = 12347
	// CookieNoRuns marks the legacy region layout without run partitions.
	CookieNoRuns uint32 = 12346

	// HeaderBytes is the size of the cookie and count fields.
	HeaderBytes = 8
	// EntryBytes is the size of one key/cardinality entry and of one offset.
	EntryBytes = 4

	// ArrayMaxSize is the largest cardinality stored as a sorted list.
	ArrayMaxSize = 4096
	// BitmapBytes is the fixed payload size of a bitset partition.
	BitmapBytes = 8192
	// BitmapWords is BitmapBytes in 64-bit words.
	BitmapWords = BitmapBytes / 8

	// RunHeaderBytes is the size of the run count that prefixes a run payload.
	RunHeaderBytes = 2
	// RunBytes is the size of one (start, length-1) run pair.
	RunBytes = 4

	// MaxCardinality is the number of low values a single key can hold.
	MaxCardinality = 1 << 16
)

// PresenceWords returns the number of 32-bit words of the run presence bitmap
// for count partitions.
func PresenceWords(count int) int {
	return (count + 31) / 32
}

// PayloadSize returns the byte size of a partition payload.
//
// nbrRuns is only consulted for run partitions and cardinality only for the
// others.
func PayloadSize(cardinality, nbrRuns int, runEncoded bool) int {
	if runEncoded {
		return RunHeaderBytes + RunBytes*nbrRuns
	}
	if cardinality > ArrayMaxSize {
		return BitmapBytes
	}
	return 2 * cardinality
}
