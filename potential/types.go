// Package potential defines the engine's options and sentinel errors.
package potential

import "errors"

// Sentinel errors for potential computation.
var (
	// ErrNilMetric is returned when no distance metric is supplied.
	ErrNilMetric = errors.New("potential: distance metric is nil")

	// ErrNilSample is returned when a nil sample set is passed.
	ErrNilSample = errors.New("potential: sample set is nil")

	// ErrEmptySource is returned when the source set is nil or empty.
	ErrEmptySource = errors.New("potential: source set is empty")

	// ErrOptionViolation is returned when an Options field is invalid.
	ErrOptionViolation = errors.New("potential: invalid option supplied")

	// ErrExcludeLength is returned when Exclude is non-nil but not
	// aligned 1:1 with the sample set.
	ErrExcludeLength = errors.New("potential: Exclude must have one entry per sample point")

	// ErrSingularity is returned when a non-self pair sits at exactly
	// zero distance while MinDistanceMiles is 0. The engine fails loudly
	// instead of dividing by zero.
	ErrSingularity = errors.New("potential: zero distance with no minimum-distance clamp")
)

// Engine defaults.
const (
	// DefaultForceExponent is the exponent n in weight/distanceⁿ: the
	// "1/d³ potential" whose force law falls off as 1/d⁴.
	DefaultForceExponent = 3

	// DefaultChunkSize bounds the transient distance matrix to
	// 1000×M entries.
	DefaultChunkSize = 1000
)

// Options configures a potential computation.
//
// Fields:
//   - ForceExponent    — n in weight/distanceⁿ; integer ≥ 1 (the force
//     law exponent is n+1). Default 3.
//   - ChunkSize        — sample points per chunk; > 0. 0 selects
//     DefaultChunkSize. Never affects results, only peak memory.
//   - MinDistanceMiles — clamp floor: surviving distances below this
//     are raised to it, modeling sources as extended areas. 0 disables
//     clamping, making any non-self zero distance ErrSingularity.
//   - MaxDistanceMiles — cutoff: sources beyond this true distance
//     contribute zero. ≤ 0 disables the cutoff.
//   - ContributionCap  — ceiling applied to each surviving term
//     weight/distanceⁿ, blunting spikes from near-coincident points.
//     ≤ 0 disables the cap.
//   - ExcludeClosestN  — rank-based exclusion: for each sample, its K
//     nearest sources (by true distance, ties at the threshold kept)
//     contribute zero. Under SelfSampling the self pair's zero distance
//     occupies one of the K slots. 0 disables.
//   - SelfSampling     — declares that sample i IS source i (same set
//     in the same order). Only then is the diagonal zeroed
//     unconditionally; identity is by index, never by coordinates.
//   - Exclude          — per-sample source index sets to zero out,
//     typically hops.Resolve output (self-sampling at the sources) or
//     hops.CentroidSets output (sampling at triangle centroids). nil
//     disables; a nil entry excludes nothing for that sample.
//   - Workers          — concurrent chunk workers. 0 or 1 is
//     sequential; chunks are independent and land in disjoint output
//     slices, so results are identical at any worker count.
//
// Example:
//
//	opts := potential.DefaultOptions()
//	opts.MinDistanceMiles = 1.0 // census-centroid smoothing
//	opts.MaxDistanceMiles = 50  // local influences only
//	values, err := potential.Compute(tracts, tracts, metric, &opts)
type Options struct {
	ForceExponent    int
	ChunkSize        int
	MinDistanceMiles float64
	MaxDistanceMiles float64
	ContributionCap  float64
	ExcludeClosestN  int
	SelfSampling     bool
	Exclude          [][]int
	Workers          int
}

// DefaultOptions returns the canonical configuration: 1/d³ potential,
// 1000-point chunks, sequential, no clamps, cutoffs, caps, or
// exclusions.
func DefaultOptions() Options {
	return Options{
		ForceExponent: DefaultForceExponent,
		ChunkSize:     DefaultChunkSize,
		Workers:       1,
	}
}
