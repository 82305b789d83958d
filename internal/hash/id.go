// Package hash computes the type identifiers used to index filters by name.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a filter type tag.
func ID(name []byte) uint64 {
	return xxhash.Sum64(name)
}

// IDString computes the xxHash64 of a filter type tag given as a string.
// It returns the same value as ID([]byte(name)) without allocating.
func IDString(name string) uint64 {
	return xxhash.Sum64String(name)
}
