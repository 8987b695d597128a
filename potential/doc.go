// Package potential implements the chunked inverse-power summation
// engine at the heart of demograv: the potential at a sample point is
// the sum over source points of weight/distanceⁿ.
//
// What:
//
//   - Compute: potential values for a sample set against a weighted
//     source set, using any geodist.Metric, processed in fixed-size
//     chunks so peak memory is O(ChunkSize × M) instead of O(N × M).
//   - Exclusion policies that compose by union: self-exclusion
//     (SelfSampling), per-sample exclusion sets (typically N-hop sets
//     from package hops), rank-based K-closest exclusion, and the
//     max-distance cutoff.
//   - Smoothing policies applied to the survivors: min-distance
//     clamping (sources as extended areas, not point masses) and a
//     per-contribution cap.
//
// Why:
//
//   - Dense N×M distance matrices at census scale (10⁴–10⁵ points) do
//     not fit in memory; chunking bounds the transient matrix while
//     leaving results bit-identical for every chunk size and worker
//     count.
//   - Near-coincident points make 1/dⁿ explode; the engine refuses to
//     produce infinities. A true zero distance with no clamp is
//     ErrSingularity, never +Inf.
//
// Ordering guarantee:
//
//	Exclusions are decided on true (unclamped) distances; clamping and
//	capping only ever apply to contributions that survived exclusion.
//
// Complexity:
//
//   - O(N×M) time (plus O(N·M log M) when ExcludeClosestN > 0),
//     O(ChunkSize×M) transient memory per worker.
//
// Errors:
//
//   - ErrNilMetric, ErrNilSample, ErrEmptySource, ErrOptionViolation,
//     ErrExcludeLength, ErrSingularity.
package potential
