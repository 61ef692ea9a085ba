// Package imaging handles the input side of brainseg: reading a raster
// file from disk and reducing it to the 8-bit grayscale grid the
// classifier consumes.
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner. Loaded images are never mutated; the classifier treats the
// returned grid as read-only for the duration of the run.
package imaging
