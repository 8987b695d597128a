package geodist

import "math"

// Planar approximates geographic distance as Euclidean distance in
// degree space, with longitude differences shrunk by cos(refLat) before
// conversion to miles. It is the workhorse metric for regional data:
// cheap, and within ~1% of Haversine for pairs under a few tens of miles.
//
// The reference latitude is fixed when the metric is built. Callers that
// process sample points in chunks MUST build one Planar from a mean
// latitude precomputed over the full dataset (see pointset.MeanLatitude)
// so that every chunk sees identical distances.
type Planar struct {
	refLat float64
	cosRef float64
}

// NewPlanar builds a Planar metric whose longitude correction is
// cos(refLat). refLat is in decimal degrees.
// Complexity: O(1).
func NewPlanar(refLat float64) *Planar {
	return &Planar{
		refLat: refLat,
		cosRef: math.Cos(radians(refLat)),
	}
}

// RefLat returns the reference latitude the metric was built with.
func (p *Planar) RefLat() float64 { return p.refLat }

// Distances returns the N×M cos-corrected distance matrix in miles.
// Complexity: O(N×M) time and memory.
func (p *Planar) Distances(sampleLon, sampleLat, sourceLon, sourceLat []float64) [][]float64 {
	n, m := len(sampleLon), len(sourceLon)
	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, m)
		lon, lat := sampleLon[i], sampleLat[i]
		for j := 0; j < m; j++ {
			dlon := (lon - sourceLon[j]) * p.cosRef
			dlat := lat - sourceLat[j]
			row[j] = math.Sqrt(dlon*dlon+dlat*dlat) * MilesPerDegree
		}
		matrix[i] = row
	}

	return matrix
}

// PlanarMiles returns the cos-corrected planar distance in miles between
// a single pair of points, using refLat for the longitude correction.
// Complexity: O(1).
func PlanarMiles(lon1, lat1, lon2, lat2, refLat float64) float64 {
	dlon := (lon1 - lon2) * math.Cos(radians(refLat))
	dlat := lat1 - lat2

	return math.Sqrt(dlon*dlon+dlat*dlat) * MilesPerDegree
}
