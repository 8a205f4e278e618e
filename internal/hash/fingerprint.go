// Package hash computes blob fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of a serialized blob.
// Two builds of the same input must produce the same fingerprint.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
