package segment

import (
	"errors"
	"image"
	"image/color"
)

// ErrEmptyGrid is returned when the source image is nil or has zero
// width or height.
var ErrEmptyGrid = errors.New("source image is empty")

// opaqueBlack marks a classified pixel in a mask. Everything else stays
// at the NRGBA zero value, which is fully transparent.
var opaqueBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// MaskSet holds the three binary tissue masks produced from one slice.
//
// Each mask shares the source image's bounds. Every pixel is either
// fully transparent (not this tissue) or opaque black (this tissue),
// and a given source pixel is opaque in at most one of the three masks.
// Background pixels are transparent in all three.
type MaskSet struct {
	WM  *image.NRGBA
	GM  *image.NRGBA
	CSF *image.NRGBA
}

// BuildMasks classifies every pixel of src against the threshold table
// and writes it into exactly one of three freshly allocated masks (or
// none, for background).
//
// Returns ErrEmptyGrid if src is nil or has no pixels, or a validation
// error if the threshold table does not partition the intensity range.
// The masks are never mutated after this function returns.
func BuildMasks(src *image.Gray, bands []Band) (*MaskSet, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyGrid
	}
	if err := ValidateBands(bands); err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	masks := &MaskSet{
		WM:  image.NewNRGBA(bounds),
		GM:  image.NewNRGBA(bounds),
		CSF: image.NewNRGBA(bounds),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch Classify(src.GrayAt(x, y).Y, bands) {
			case WM:
				masks.WM.SetNRGBA(x, y, opaqueBlack)
			case GM:
				masks.GM.SetNRGBA(x, y, opaqueBlack)
			case CSF:
				masks.CSF.SetNRGBA(x, y, opaqueBlack)
			}
		}
	}

	return masks, nil
}
