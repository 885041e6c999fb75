package bitmap

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/histogram"
	"github.com/anthonynsimon/bild/segment"

	"github.com/rmenke/ppht"
)

// AutoLevel selects the threshold level automatically with Otsu's
// method.
const AutoLevel = -1

// Options controls binarization.
type Options struct {
	// Level is the luminance threshold in [0, 255]; pixels at or above
	// it are set. AutoLevel derives the level from the image histogram
	// with Otsu's method.
	Level int `json:"level"`

	// Invert flips the image before thresholding. Use for
	// dark-on-light line art, where the pixels of interest are the
	// dark ones.
	Invert bool `json:"invert"`

	// Edges replaces the image with its edge map before thresholding.
	// Edge output is light-on-dark, so Invert is ignored when Edges is
	// set. Use for photographs and filled shapes.
	Edges bool `json:"edges"`

	// EdgeRadius is the sampling radius of the edge detection kernel.
	// Zero means 1.
	EdgeRadius float64 `json:"edge_radius"`
}

// Binarize reduces an image to a binary raster: white pixels (255) are
// set, black pixels (0) are unset.
func Binarize(img image.Image, opt Options) *image.Gray {
	if opt.Edges {
		radius := opt.EdgeRadius
		if radius <= 0 {
			radius = 1
		}
		img = effect.EdgeDetection(img, radius)
	} else if opt.Invert {
		img = effect.Invert(img)
	}

	level := opt.Level
	if level < 0 {
		level = OtsuLevel(img)
	}

	return segment.Threshold(img, uint8(level))
}

// OtsuLevel computes a global threshold for img by Otsu's method:
// the level that maximizes the between-class variance of the luminance
// histogram.
func OtsuLevel(img image.Image) int {
	// The red channel of the RGBA histogram is the luminance channel
	// for grayscale input; for color input it is a serviceable proxy,
	// since thresholding here only seeds the detector.
	bins := histogram.NewRGBAHistogram(img).R.Bins

	total := 0
	sum := 0
	for i, n := range bins {
		total += n
		sum += i * n
	}
	if total == 0 {
		return 128
	}

	var (
		sumBack    int
		weightBack int
		bestVar    float64
		best       = 128
	)

	for level, n := range bins {
		weightBack += n
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}

		sumBack += level * n

		meanBack := float64(sumBack) / float64(weightBack)
		meanFore := float64(sum-sumBack) / float64(weightFore)

		diff := meanBack - meanFore
		betweenVar := float64(weightBack) * float64(weightFore) * diff * diff

		if betweenVar > bestVar {
			bestVar = betweenVar
			best = level + 1
		}
	}

	return best
}

// NewState builds a detection state from a binary raster, marking every
// set (white) pixel pending.
func NewState(gray *image.Gray, seed int64) (*ppht.State, error) {
	b := gray.Bounds()

	state, err := ppht.NewState(b.Dy(), b.Dx(), seed)
	if err != nil {
		return nil, err
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if gray.GrayAt(b.Min.X+x, b.Min.Y+y).Y >= 128 {
				state.MarkPending(ppht.Pt(x, y))
			}
		}
	}

	return state, nil
}
