// Package imaging provides the pixel-domain preprocessing primitives used to
// locate a gel region within a grayscale laboratory image.
//
// This package implements the image transforms that turn a raw scan into
// something the detection package can locate a rectangle in: Sobel
// gradient-magnitude extraction, directional morphological opening for
// dominant-line extraction, intensity histogram computation and rendering,
// and a radial center-weighting mask built from a chamfer distance transform.
// All operations work on single-channel *image.Gray buffers with a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and
// Y increases downward.
//
// # Single-Channel Contract
//
// Every algorithm in this package operates on single-channel byte images.
// Multi-channel input must be converted before any algorithm runs; the
// ImageCache loader performs this conversion automatically. Functions never
// mutate their input: each transform allocates and returns a fresh buffer.
//
// # Structuring Elements and Metrics
//
// Morphological operations take a StructElem describing the neighborhood
// template, and the distance transform takes a DistanceMetric describing the
// chamfer step costs. Both are plain value types so callers can test the
// primitives independently of the line-extraction and center-mask defaults.
//
// # Degenerate Inputs
//
// A histogram whose maximum bin count is zero renders as an empty plot rather
// than dividing by zero. Zero-sized images are rejected with an error by the
// transforms that allocate output buffers.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other operations are
// stateless pure functions and can be called concurrently on different
// images.
package imaging
