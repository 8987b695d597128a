// Package geodist provides interchangeable distance metrics mapping two
// geographic point sets onto a dense N×M matrix of distances in miles.
//
// What:
//
//   - Metric: the capability interface consumed by the potential engine.
//   - Planar: fast cos-corrected Euclidean approximation. The reference
//     latitude is fixed at construction, so one Planar instance produces
//     identical distances no matter how the caller chunks its inputs.
//   - Haversine: exact great-circle distances on a sphere of radius
//     EarthRadiusMiles. Roughly 3× slower than Planar; use it when
//     accuracy at continental distances or near the poles matters.
//   - PlanarMiles / HaversineMiles: single-pair convenience helpers.
//
// Why:
//
//   - Potential fields sum millions of pairwise distances; the planar
//     approximation keeps that affordable while staying within ~1% of
//     the great-circle result for pairs up to a few tens of miles.
//   - A fixed-latitude Planar removes the classic chunking bug where a
//     per-chunk mean latitude makes results depend on chunk size.
//
// Complexity:
//
//   - Distances: O(N×M) time, O(N×M) memory for the returned matrix.
//   - PlanarMiles / HaversineMiles: O(1).
//
// Errors:
//
//   - None. Metrics are pure functions of their inputs; every real
//     coordinate pair yields a finite, non-negative distance.
package geodist
