// Package mesh builds a planar Delaunay triangulation of a point set
// and derives the two artifacts the adaptive-sampling workflow needs:
// triangle centroids and a vertex-adjacency structure.
//
// What:
//
//   - Triangulate: Delaunay triangulation of a pointset.Set, producing
//     triangles as ordered index triples satisfying the empty-
//     circumcircle property.
//   - Triangulation.Centroids: the mean of each triangle's three vertex
//     coordinates — adaptively spaced sample locations, denser where
//     the input points are denser.
//   - Triangulation.Adjacency: the undirected graph over point indices
//     in which u and v are adjacent iff they co-occur in a triangle.
//     Stored arena-style (flat CSR: index ranges into one shared edge
//     array) for cache locality at 10⁴–10⁵ vertices.
//
// Why:
//
//   - Sampling at centroids instead of a fixed grid concentrates samples
//     where the data lives, and the triangulation topology replaces
//     arbitrary geometric exclusion radii (see package hops).
//
// Preconditions:
//
//   - Inputs must be deduplicated (pointset.Set.Dedupe): triangulation
//     behavior on exactly-coincident points is unspecified by the
//     underlying algorithm. Fully collinear sets are degenerate too.
//     Both surface as ErrDegenerate; the package never dedupes silently.
//
// Complexity:
//
//   - Triangulate: O(n log n) expected.
//   - Centroids: O(t). Adjacency: O(t + V + E).
//
// Errors:
//
//   - ErrNilSet, ErrTooFewPoints, ErrDegenerate.
package mesh
