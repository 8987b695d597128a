package potential_test

import (
	"fmt"

	"github.com/karuvel/demograv/geodist"
	"github.com/karuvel/demograv/pointset"
	"github.com/karuvel/demograv/potential"
)

// ExampleCompute — one sample point against three weighted sources.
//
// Scenario:
//
//	Sources sit 10, 20 and 30 miles east of the sample with weights
//	1000, 2000 and 3000. Under the default 1/d³ law the potential is
//	1000/10³ + 2000/20³ + 3000/30³ ≈ 1.361.
//
// Complexity: O(N×M).
func ExampleCompute() {
	sample, _ := pointset.FromSlices([]float64{0}, []float64{0}, nil)
	source, _ := pointset.FromSlices(
		[]float64{10, 20, 30}, []float64{0, 0, 0},
		[]float64{1000, 2000, 3000},
	)

	values, err := potential.Compute(sample, source, lineMetric{}, nil)
	if err != nil {
		fmt.Println("unexpected:", err)

		return
	}
	fmt.Printf("%.3f\n", values[0])
	// Output:
	// 1.361
}

// ExampleCompute_contributionCap — blunting a near-coincident spike.
//
// Scenario:
//
//	A source 0.01 miles away would contribute 10⁹ under 1/d³; the cap
//	holds it at 5000, and the 10-mile source adds its usual 1.
func ExampleCompute_contributionCap() {
	sample, _ := pointset.FromSlices([]float64{0}, []float64{0}, nil)
	source, _ := pointset.FromSlices(
		[]float64{0.01, 10}, []float64{0, 0},
		[]float64{1000, 1000},
	)

	opts := potential.DefaultOptions()
	opts.ContributionCap = 5000
	values, err := potential.Compute(sample, source, lineMetric{}, &opts)
	if err != nil {
		fmt.Println("unexpected:", err)

		return
	}
	fmt.Printf("%.0f\n", values[0])
	// Output:
	// 5001
}

// ExampleCompute_selfSampling — a field evaluated over its own points.
//
// Scenario:
//
//	Three tracts on one line, 10 miles apart, equal weight, 1/d¹ law.
//	Each point sums only the other two; the middle point sees both
//	neighbors at 10 miles, the ends see 10 and 20.
func ExampleCompute_selfSampling() {
	tracts, _ := pointset.FromSlices(
		[]float64{0, 10, 20}, []float64{0, 0, 0},
		[]float64{1000, 1000, 1000},
	)

	opts := potential.DefaultOptions()
	opts.ForceExponent = 1
	opts.SelfSampling = true
	values, err := potential.Compute(tracts, tracts, lineMetric{}, &opts)
	if err != nil {
		fmt.Println("unexpected:", err)

		return
	}
	fmt.Printf("%.0f %.0f %.0f\n", values[0], values[1], values[2])
	// Output:
	// 150 200 150
}

// ExampleCompute_planarMetric — real coordinates through the fast
// regional metric, reference latitude fixed up front.
func ExampleCompute_planarMetric() {
	sample, _ := pointset.FromSlices([]float64{-122.42}, []float64{37.77}, nil)
	source, _ := pointset.FromSlices(
		[]float64{-122.27, -121.89}, []float64{37.80, 37.34},
		[]float64{433000, 1030000},
	)

	refLat, _ := pointset.MeanLatitude(sample, source)
	metric := geodist.NewPlanar(refLat)

	opts := potential.DefaultOptions()
	opts.MinDistanceMiles = 1.0
	values, err := potential.Compute(sample, source, metric, &opts)
	if err != nil {
		fmt.Println("unexpected:", err)

		return
	}
	fmt.Printf("positive=%t\n", values[0] > 0)
	// Output:
	// positive=true
}
