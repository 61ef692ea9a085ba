package segment

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// tissueTints is the overlay palette, one hex color per tissue class.
var tissueTints = map[Tissue]string{
	CSF: "#1f77b4",
	GM:  "#2ca02c",
	WM:  "#d62728",
}

// tintAlpha controls how strongly the tissue colors cover the slice.
const tintAlpha = 160

// Overlay renders a QA composite: the source slice with each classified
// tissue tinted translucently in its palette color. Background pixels
// show the source unchanged.
//
// The result has the same bounds as src. The overlay is purely
// cosmetic; the masks themselves stay binary black/transparent.
func Overlay(src *image.Gray, masks *MaskSet) (image.Image, error) {
	base := imaging.Clone(src)

	tint := image.NewNRGBA(src.Bounds())
	for _, layer := range []struct {
		mask   *image.NRGBA
		tissue Tissue
	}{
		{masks.CSF, CSF},
		{masks.GM, GM},
		{masks.WM, WM},
	} {
		c, err := colorful.Hex(tissueTints[layer.tissue])
		if err != nil {
			return nil, fmt.Errorf("bad tint for %s: %w", layer.tissue, err)
		}
		r, g, b := c.RGB255()
		nc := color.NRGBA{R: r, G: g, B: b, A: tintAlpha}

		bounds := layer.mask.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if layer.mask.NRGBAAt(x, y).A == 255 {
					tint.SetNRGBA(x, y, nc)
				}
			}
		}
	}

	return blend.Normal(base, tint), nil
}
