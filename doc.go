// Package demograv computes scalar "population potential" fields over
// geographic space from weighted point datasets — census tracts, block
// groups, or any (longitude, latitude, weight) collection.
//
// 🌍 What is demograv?
//
//	A library implementing the gravitational/electrostatic analogy for
//	demographic data: every source point contributes weight/distanceⁿ to
//	the potential at every sample location. On top of the raw summation
//	it layers the machinery that makes the field usable in practice:
//		• Distance metrics: fast cos-corrected planar approximation and
//		  exact great-circle (haversine), interchangeable plug-ins
//		• Chunked engine: bounded-memory summation with min-distance
//		  smoothing, max-distance cutoff, contribution capping, and
//		  rank-based nearest-neighbor exclusion
//		• Adaptive sampling: Delaunay triangulation of the sources,
//		  triangle centroids as sample locations
//		• Topological exclusion: N-hop BFS neighborhoods over the
//		  triangulation adjacency, replacing arbitrary exclusion radii
//
// ✨ Why demograv?
//
//   - Deterministic – chunk size and worker count never change results
//   - Explicit failure – zero distances without a clamp are an error,
//     never a silent +Inf
//   - Pure library – no I/O beyond a CSV loader, no process surface
//
// Subpackages:
//
//	pointset/  — Point Set container, CSV ingestion, dedup, statistics
//	geodist/   — distance metrics producing N×M mile matrices
//	mesh/      — Delaunay triangulation, centroids, flat CSR adjacency
//	hops/      — level-limited BFS neighborhoods (N-hop exclusion sets)
//	potential/ — the chunked potential-field engine
//
// Data flow:
//
//	pointset → mesh → hops → potential (with a geodist.Metric)
//
//	go get github.com/karuvel/demograv
package demograv
