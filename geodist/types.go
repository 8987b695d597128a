// Package geodist defines the Metric contract and the physical
// constants shared by its implementations.
package geodist

import "math"

// Earth constants. Coordinates are decimal-degree WGS84; distances are
// statute miles throughout the module.
const (
	// EarthRadiusMiles is the WGS84 mean radius in statute miles.
	EarthRadiusMiles = 3958.8

	// MilesPerDegree converts one degree of latitude (or one degree of
	// longitude at the equator) to miles: 2πR/360 ≈ 69.09.
	MilesPerDegree = 2 * math.Pi * EarthRadiusMiles / 360
)

// Metric converts paired coordinate slices into a distance matrix.
// Implementations must be pure and deterministic: no retained state
// between calls, no error paths, and a result that depends only on the
// coordinates supplied (never on how the caller batches them).
type Metric interface {
	// Distances returns an N×M matrix of miles, where N = len(sampleLon)
	// and M = len(sourceLon). Entry [i][j] is the distance from sample i
	// to source j. Latitude slices must be index-aligned with their
	// longitude slices.
	Distances(sampleLon, sampleLat, sourceLon, sourceLat []float64) [][]float64
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
