package pointset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for point-set construction and statistics.
var (
	// ErrLengthMismatch indicates parallel coordinate/weight slices of
	// differing lengths.
	ErrLengthMismatch = errors.New("pointset: coordinate and weight slices must have equal lengths")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("pointset: weights must be non-negative")

	// ErrEmptySet indicates an operation that requires at least one point.
	ErrEmptySet = errors.New("pointset: set is empty")
)

// Point is a single weighted geographic point. Lon and Lat are
// decimal-degree WGS84 coordinates; Weight is a non-negative scalar
// (typically a population count).
type Point struct {
	Lon    float64
	Lat    float64
	Weight float64
}

// Set is an ordered collection of Points indexed 0..Len()-1, stored as
// parallel slices. The exported slices are owned by the Set and must be
// treated as read-only; constructors deep-copy their inputs.
type Set struct {
	Lon    []float64
	Lat    []float64
	Weight []float64
}

// FromSlices builds a Set from parallel slices. weight may be nil, in
// which case every point gets weight 0 (e.g. sample-only sets such as
// triangle centroids). All inputs are copied.
// Returns ErrLengthMismatch or ErrNegativeWeight on invalid input.
// Complexity: O(n) time and memory.
func FromSlices(lon, lat, weight []float64) (*Set, error) {
	if len(lon) != len(lat) {
		return nil, fmt.Errorf("%w: %d longitudes vs %d latitudes", ErrLengthMismatch, len(lon), len(lat))
	}
	if weight != nil && len(weight) != len(lon) {
		return nil, fmt.Errorf("%w: %d points vs %d weights", ErrLengthMismatch, len(lon), len(weight))
	}
	n := len(lon)
	s := &Set{
		Lon:    make([]float64, n),
		Lat:    make([]float64, n),
		Weight: make([]float64, n),
	}
	copy(s.Lon, lon)
	copy(s.Lat, lat)
	if weight != nil {
		for i, w := range weight {
			if w < 0 {
				return nil, fmt.Errorf("%w: weight %g at index %d", ErrNegativeWeight, w, i)
			}
			s.Weight[i] = w
		}
	}

	return s, nil
}

// FromPoints builds a Set from a slice of Points.
// Returns ErrNegativeWeight if any weight is below zero.
// Complexity: O(n) time and memory.
func FromPoints(points []Point) (*Set, error) {
	n := len(points)
	s := &Set{
		Lon:    make([]float64, n),
		Lat:    make([]float64, n),
		Weight: make([]float64, n),
	}
	for i, p := range points {
		if p.Weight < 0 {
			return nil, fmt.Errorf("%w: weight %g at index %d", ErrNegativeWeight, p.Weight, i)
		}
		s.Lon[i], s.Lat[i], s.Weight[i] = p.Lon, p.Lat, p.Weight
	}

	return s, nil
}

// Len returns the number of points in the set.
func (s *Set) Len() int { return len(s.Lon) }

// Point returns the point at index i.
func (s *Set) Point(i int) Point {
	return Point{Lon: s.Lon[i], Lat: s.Lat[i], Weight: s.Weight[i]}
}

// TotalWeight returns the sum of all weights.
// Complexity: O(n).
func (s *Set) TotalWeight() float64 {
	return floats.Sum(s.Weight)
}

// MeanLatitude returns the unweighted mean latitude over the union of
// the given sets, the value the planar metric should be built from.
// Passing the same set twice counts its points twice, matching a
// self-sampling run where sample and source sets coincide.
// Returns ErrEmptySet if the union holds no points.
// Complexity: O(Σn).
func MeanLatitude(sets ...*Set) (float64, error) {
	total := 0
	for _, s := range sets {
		if s != nil {
			total += s.Len()
		}
	}
	if total == 0 {
		return 0, ErrEmptySet
	}
	all := make([]float64, 0, total)
	for _, s := range sets {
		if s != nil {
			all = append(all, s.Lat...)
		}
	}

	return stat.Mean(all, nil), nil
}

// Dedupe returns a new Set with exactly-coincident coordinates merged:
// the first occurrence keeps its position in the order and accumulates
// the weights of all later duplicates. Triangulation requires deduped
// input; the potential engine does not.
// Complexity: O(n) expected time, O(n) memory.
func (s *Set) Dedupe() *Set {
	type coord struct{ lon, lat float64 }
	seen := make(map[coord]int, s.Len())
	out := &Set{
		Lon:    make([]float64, 0, s.Len()),
		Lat:    make([]float64, 0, s.Len()),
		Weight: make([]float64, 0, s.Len()),
	}
	for i := 0; i < s.Len(); i++ {
		c := coord{s.Lon[i], s.Lat[i]}
		if at, ok := seen[c]; ok {
			out.Weight[at] += s.Weight[i]

			continue
		}
		seen[c] = len(out.Lon)
		out.Lon = append(out.Lon, s.Lon[i])
		out.Lat = append(out.Lat, s.Lat[i])
		out.Weight = append(out.Weight, s.Weight[i])
	}

	return out
}
