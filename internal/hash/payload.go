package hash

import "github.com/cespare/xxhash/v2"

// Payload hashes a partition payload tagged with its encoding kind.
func Payload(kind byte, data []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{kind})
	_, _ = d.Write(data)
	return d.Sum64()
}

// Combine folds a partition into an order-dependent running hash.
func Combine(acc uint64, key uint16, partition uint64) uint64 {
	return 31*acc + uint64(key)*0xF0F0F0 + partition
}
