// Package hops resolves N-hop exclusion sets: for every vertex of a
// triangulation adjacency graph, the set of vertices reachable within N
// edges, including the vertex itself.
//
// What:
//
//   - Resolve: level-limited breadth-first search from every vertex of a
//     mesh.Adjacency, sequentially or on a fixed-size worker pool.
//   - CentroidSets: composes per-centroid exclusion lists by uniting the
//     hop sets of each triangle's three vertices — the form the
//     potential engine consumes when sampling at triangle centroids.
//
// Why:
//
//	Census points stand in for extended areas, so a sample next to a
//	point should not see that point's full weight at near-zero
//	distance. Excluding topological neighbors (N hops in the
//	triangulation) adapts to local density automatically, where any
//	fixed geometric radius would be wrong somewhere.
//
// Guarantees:
//
//   - Reflexive: every set contains its own vertex, even for n=0.
//   - Monotone: the hop-N set is a subset of the hop-(N+1) set.
//   - Deterministic: sets are sorted ascending; worker count never
//     changes results.
//
// Complexity:
//
//   - Resolve: O(V · d̄ⁿ) worst case for average degree d̄; n is 1 or 2
//     in practice, which keeps this linear-ish in V for planar graphs
//     (d̄ < 6).
//   - CentroidSets: O(t · s) for average set size s.
//
// Errors:
//
//   - ErrNilAdjacency, ErrNegativeHops, ErrOptionViolation,
//     ErrVertexRange.
package hops
