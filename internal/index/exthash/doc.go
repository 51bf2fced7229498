// Package exthash implements a generic extendible hash map: a
// directory of power-of-two size addressing a pool of fixed-capacity
// buckets, each carrying its own local depth (§3.3, §4.C).
//
// The directory grows by doubling only when the overfull bucket is
// already at the directory's global depth; otherwise the bucket alone
// splits and the directory slots that pointed to it are redistributed
// between the two new buckets. entries() walks the bucket pool rather
// than the directory, since many directory slots typically alias the
// same bucket.
//
// Two spots in the split algorithm as phrased in the design material
// this package follows don't parse literally and are implemented in
// their standard, self-consistent form instead (documented inline in
// split.go): a split bucket's new local depth is the old depth plus
// one, not doubled, and directory slots sharing a bucket are spaced
// 2^depth apart, not depth apart.
//
// Keys need only be comparable, not ordered: hashKey renders a key
// with fmt.Sprintf and hashes the result with xxhash, so any
// comparable key type works, matching how this package is actually
// used (table primary keys arrive as the packed byte string re-cast
// to a Go string).
package exthash
