package segment

import (
	"errors"
	"fmt"
)

// Tissue identifies one of the brain tissue classes assigned by the
// intensity classifier. Background is the zero value: pixels that belong
// to no tissue mask.
type Tissue int

const (
	// Background marks pixels outside the brain or too dark to classify.
	Background Tissue = iota

	// CSF is cerebrospinal fluid.
	CSF

	// GM is gray matter.
	GM

	// WM is white matter.
	WM
)

// String returns the short lowercase label used in output documents and logs.
func (t Tissue) String() string {
	switch t {
	case Background:
		return "background"
	case CSF:
		return "csf"
	case GM:
		return "gm"
	case WM:
		return "wm"
	default:
		return fmt.Sprintf("tissue(%d)", int(t))
	}
}

// Band assigns a tissue class to a contiguous range of 8-bit intensities.
//
// A band owns every intensity v with prev.Upper < v <= Upper, where prev
// is the band before it in the table (or an implicit -1 for the first
// band). Upper bounds are therefore inclusive: an intensity equal to a
// band's Upper belongs to that band, not the next one.
type Band struct {
	// Upper is the highest intensity belonging to this band (inclusive).
	Upper uint8

	// Tissue is the class assigned to intensities in this band.
	Tissue Tissue
}

// DefaultBands returns the reference threshold table for T1-weighted
// slices:
//
//	      0..15  -> Background
//	     16..60  -> CSF
//	    61..130  -> GM
//	   131..255  -> WM
//
// The boundary intensities 15, 60 and 130 belong to the lower band.
// Callers may supply their own table to BuildMasks and ComputeStats, but
// the partition semantics (first band with v <= Upper wins) are fixed.
func DefaultBands() []Band {
	return []Band{
		{Upper: 15, Tissue: Background},
		{Upper: 60, Tissue: CSF},
		{Upper: 130, Tissue: GM},
		{Upper: 255, Tissue: WM},
	}
}

// ValidateBands checks that a threshold table forms a partition of the
// full 8-bit intensity range.
//
// A valid table is non-empty, has strictly increasing upper bounds, and
// ends with a band whose Upper is 255 so that every intensity is covered.
func ValidateBands(bands []Band) error {
	if len(bands) == 0 {
		return errors.New("threshold table is empty")
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Upper <= bands[i-1].Upper {
			return fmt.Errorf("threshold table not strictly increasing at index %d (%d after %d)",
				i, bands[i].Upper, bands[i-1].Upper)
		}
	}
	if last := bands[len(bands)-1].Upper; last != 255 {
		return fmt.Errorf("threshold table ends at %d, must cover 255", last)
	}
	return nil
}

// Classify maps a single 8-bit intensity to its tissue class: the first
// band whose upper bound is >= v wins. The function is pure and has no
// dependence on neighboring pixels, so callers are free to apply it in
// any order or in parallel.
//
// The table is assumed valid (see ValidateBands); with a valid table the
// fallthrough return is unreachable.
func Classify(v uint8, bands []Band) Tissue {
	for _, b := range bands {
		if v <= b.Upper {
			return b.Tissue
		}
	}
	return Background
}
