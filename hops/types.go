// Package hops defines options and sentinel errors for N-hop
// exclusion-set resolution.
package hops

import "errors"

// Sentinel errors for hop-set resolution.
var (
	// ErrNilAdjacency is returned when a nil adjacency is passed.
	ErrNilAdjacency = errors.New("hops: adjacency is nil")

	// ErrNegativeHops is returned for a negative hop count.
	ErrNegativeHops = errors.New("hops: hop count cannot be negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hops: invalid option supplied")

	// ErrVertexRange is returned when a triangle references a vertex
	// outside the resolved sets.
	ErrVertexRange = errors.New("hops: triangle vertex out of range")
)

// Options tunes hop-set resolution.
//
// Fields:
//   - Workers — number of concurrent BFS workers. 0 or 1 resolves
//     sequentially; higher values split the vertex range across a
//     fixed-size pool. Results are identical either way.
type Options struct {
	Workers int
}

// DefaultOptions returns Options resolving sequentially.
func DefaultOptions() Options {
	return Options{Workers: 1}
}
