package mesh

import (
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/karuvel/demograv/pointset"
)

// Triangulate builds the Delaunay triangulation of ps. Coordinates are
// treated as planar (lon, lat) pairs, matching the regional scale the
// sampling workflow operates at.
// Returns ErrNilSet, ErrTooFewPoints, or ErrDegenerate (duplicate or
// collinear input; callers must dedupe beforehand, see
// pointset.Set.Dedupe).
// Complexity: O(n log n) expected time, O(n) memory beyond the result.
func Triangulate(ps *pointset.Set) (*Triangulation, error) {
	if ps == nil {
		return nil, ErrNilSet
	}
	n := ps.Len()
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	points := make([]delaunay.Point, n)
	for i := 0; i < n; i++ {
		points[i] = delaunay.Point{X: ps.Lon[i], Y: ps.Lat[i]}
	}
	dt, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	if len(dt.Triangles) == 0 {
		return nil, fmt.Errorf("%w: no triangles produced (collinear input?)", ErrDegenerate)
	}

	t := &Triangulation{
		Triangles: make([]Triangle, len(dt.Triangles)/3),
		lon:       make([]float64, n),
		lat:       make([]float64, n),
	}
	copy(t.lon, ps.Lon)
	copy(t.lat, ps.Lat)
	for i := range t.Triangles {
		t.Triangles[i] = Triangle{dt.Triangles[3*i], dt.Triangles[3*i+1], dt.Triangles[3*i+2]}
	}

	return t, nil
}

// Centroids returns one weightless point per triangle: the mean of its
// three vertex coordinates, aligned 1:1 with t.Triangles. Centroids are
// not triangulation-invariant for degenerate inputs; see the package
// preconditions.
// Complexity: O(t).
func (t *Triangulation) Centroids() *pointset.Set {
	lon := make([]float64, len(t.Triangles))
	lat := make([]float64, len(t.Triangles))
	for i, tri := range t.Triangles {
		lon[i] = (t.lon[tri[0]] + t.lon[tri[1]] + t.lon[tri[2]]) / 3
		lat[i] = (t.lat[tri[0]] + t.lat[tri[1]] + t.lat[tri[2]]) / 3
	}
	// Coordinates come straight from a valid Set; reconstruction cannot fail.
	s, _ := pointset.FromSlices(lon, lat, nil)

	return s
}
