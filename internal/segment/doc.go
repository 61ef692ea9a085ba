// Package segment implements the tissue classifier and mask encoder at
// the core of brainseg.
//
// The package turns one 8-bit grayscale slice into three binary tissue
// masks (white matter, gray matter, cerebrospinal fluid) and serializes
// them as base64-encoded PNGs inside a three-key JSON document.
//
// # Classification
//
// Classification is a pure per-pixel rule with no spatial dependence: an
// ordered table of (upper bound, tissue) bands partitions the intensity
// range [0,255] into four bins, and each pixel lands in the first band
// whose inclusive upper bound it does not exceed. The reference table
// (DefaultBands) uses the bounds 15/60/130, so intensity 15 is
// background, 60 is CSF and 130 is GM.
//
// # Invariants
//
//   - Every mask has the source slice's exact bounds.
//   - Every mask pixel is either fully transparent or opaque black;
//     no other color or alpha ever appears.
//   - Each source pixel is opaque in at most one mask; background
//     pixels are opaque in none.
//   - Encoding is lossless and deterministic: the same slice always
//     produces a byte-identical document.
//
// # Error Handling
//
// BuildMasks rejects empty sources (ErrEmptyGrid) and malformed
// threshold tables. Encoding failures abort without a partial document:
// either all three masks serialize or none do.
package segment
