// Package pointset provides the immutable weighted point collections
// that every other demograv package consumes.
//
// What:
//
//   - Point: a (longitude, latitude, weight) triple in decimal-degree
//     WGS84 coordinates with a non-negative scalar weight.
//   - Set: an ordered, index-addressed collection of Points stored as
//     parallel slices (structure-of-arrays), the layout the distance
//     metrics and the potential engine iterate over.
//   - CSV ingestion with required named columns and load-time errors
//     for missing fields or malformed values.
//   - Statistics: MeanLatitude (the global reference latitude for the
//     planar metric) and TotalWeight.
//   - Dedupe: coordinate deduplication, the documented precondition of
//     the triangulation step.
//
// Why:
//
//   - Identity is by index, not value: two points may share coordinates
//     without being "the same point". Sets are therefore append-only at
//     construction and read-only afterwards; constructors deep-copy.
//   - The reference latitude must be computed once over the union of
//     sample and source points, never per chunk — MeanLatitude is the
//     single place that computation lives.
//
// Errors:
//
//   - ErrLengthMismatch: parallel slices of differing lengths.
//   - ErrNegativeWeight: a weight below zero.
//   - ErrMissingColumn: a required CSV column is absent from the header.
//   - ErrBadRecord: a CSV record failed to parse.
//   - ErrEmptySet: an operation that needs at least one point got none.
package pointset
