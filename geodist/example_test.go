package geodist_test

import (
	"fmt"

	"github.com/karuvel/demograv/geodist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleHaversineMiles
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Measure one degree of longitude along the equator, where the planar
//	approximation and the great circle coincide exactly.
//
// Complexity: O(1)
func ExampleHaversineMiles() {
	d := geodist.HaversineMiles(0, 0, 1, 0)
	fmt.Printf("%.2f miles\n", d)
	// Output:
	// 69.09 miles
}

// //////////////////////////////////////////////////////////////////////////////
// ExamplePlanar_Distances
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a 2×2 distance matrix with the cos-corrected planar metric.
//	The reference latitude 0 makes the correction factor cos(0)=1, so
//	pure longitude offsets map directly to MilesPerDegree multiples.
//
// Complexity: O(N×M)
func ExamplePlanar_Distances() {
	planar := geodist.NewPlanar(0)
	m := planar.Distances(
		[]float64{0, 1}, []float64{0, 0}, // samples
		[]float64{0, 2}, []float64{0, 0}, // sources
	)
	fmt.Printf("[%.2f %.2f]\n[%.2f %.2f]\n", m[0][0], m[0][1], m[1][0], m[1][1])
	// Output:
	// [0.00 138.19]
	// [69.09 69.09]
}
