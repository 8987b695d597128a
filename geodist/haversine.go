package geodist

import "math"

// Haversine computes exact great-circle distances on a sphere of radius
// EarthRadiusMiles. It needs no reference latitude and is accurate at
// any separation, at roughly 3× the cost of Planar.
type Haversine struct{}

// NewHaversine returns the great-circle metric.
// Complexity: O(1).
func NewHaversine() *Haversine { return &Haversine{} }

// Distances returns the N×M great-circle distance matrix in miles.
// Complexity: O(N×M) time and memory.
func (h *Haversine) Distances(sampleLon, sampleLat, sourceLon, sourceLat []float64) [][]float64 {
	n, m := len(sampleLon), len(sourceLon)
	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, m)
		lon, lat := sampleLon[i], sampleLat[i]
		for j := 0; j < m; j++ {
			row[j] = HaversineMiles(lon, lat, sourceLon[j], sourceLat[j])
		}
		matrix[i] = row
	}

	return matrix
}

// HaversineMiles returns the great-circle distance in miles between a
// single pair of points.
// Complexity: O(1).
func HaversineMiles(lon1, lat1, lon2, lat2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}
