// Package mesh defines the triangulation and adjacency types plus
// sentinel errors.
package mesh

import "errors"

// Sentinel errors for triangulation construction.
var (
	// ErrNilSet is returned when a nil point set is passed.
	ErrNilSet = errors.New("mesh: point set is nil")

	// ErrTooFewPoints is returned for inputs with fewer than three points.
	ErrTooFewPoints = errors.New("mesh: triangulation needs at least three points")

	// ErrDegenerate is returned when the input admits no valid planar
	// triangulation (coincident duplicates or a fully collinear set).
	ErrDegenerate = errors.New("mesh: degenerate input geometry")
)

// Triangle is an ordered triple of point indices into the triangulated
// set.
type Triangle [3]int

// Triangulation is a planar Delaunay triangulation of a point set. It
// retains a copy of the vertex coordinates so centroids can be derived
// without the original set.
type Triangulation struct {
	// Triangles lists every triangle as indices into the input set.
	Triangles []Triangle

	lon []float64
	lat []float64
}

// NumPoints returns the number of triangulated input points.
func (t *Triangulation) NumPoints() int { return len(t.lon) }

// NumTriangles returns the number of triangles.
func (t *Triangulation) NumTriangles() int { return len(t.Triangles) }

// Adjacency is the undirected vertex-adjacency graph of a
// triangulation in flat CSR form: the neighbors of vertex v occupy
// edges[offsets[v]:offsets[v+1]], sorted ascending and deduplicated.
// It is immutable once built; its lifetime is tied to the
// triangulation it came from.
type Adjacency struct {
	offsets []int
	edges   []int
}

// Order returns the number of vertices.
func (a *Adjacency) Order() int { return len(a.offsets) - 1 }

// Degree returns the number of distinct neighbors of vertex v.
func (a *Adjacency) Degree(v int) int { return a.offsets[v+1] - a.offsets[v] }

// Neighbors returns the sorted neighbor list of vertex v. The returned
// slice aliases internal storage and must not be modified.
func (a *Adjacency) Neighbors(v int) []int {
	return a.edges[a.offsets[v]:a.offsets[v+1]]
}

// NumEdges returns the number of undirected edges.
func (a *Adjacency) NumEdges() int { return len(a.edges) / 2 }
