package bitmap

import (
	"fmt"
	"image"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp" // Register BMP format decoder

	"github.com/disintegration/imaging"
)

// Load reads and decodes an image from disk. Supported formats are
// PNG, JPEG, GIF, and BMP; JPEG files carrying EXIF orientation are
// rotated upright during decoding.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// FitWithin scales img down proportionally so that neither dimension
// exceeds maxDim. Images already within the bound are returned
// unchanged. Detection cost grows with the image diagonal, so bounding
// large inputs keeps the accumulator matrix small.
func FitWithin(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}
