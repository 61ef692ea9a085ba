package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned when a decoded image has zero width or
// height and therefore cannot be segmented.
var ErrEmptyImage = errors.New("image has zero width or height")

// LoadGrayscale reads the raster image at path and reduces it to 8-bit
// single-channel grayscale.
//
// Supported formats are PNG, JPEG and GIF. Images that already decode
// as 8-bit grayscale are returned as-is; color and alpha-carrying
// images are flattened to luminance.
//
// Returns:
//   - a file error if the path cannot be opened (a missing input is
//     distinguishable from a malformed one by the wrapped os error)
//   - a decode error if the bytes are not a valid image
//   - ErrEmptyImage if the decoded image has no pixels
func LoadGrayscale(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, ErrEmptyImage
	}

	if gray, ok := img.(*image.Gray); ok {
		return gray, nil
	}

	// imaging.Grayscale returns an NRGBA with R == G == B; copy one
	// channel into a compact single-channel grid.
	flat := imaging.Grayscale(img)
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			gray.Pix[y*gray.Stride+x] = flat.Pix[y*flat.Stride+x*4]
		}
	}
	return gray, nil
}
