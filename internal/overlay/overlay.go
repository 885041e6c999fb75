// Package overlay renders detected segments on top of their source
// image for visual inspection.
package overlay

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/rmenke/ppht"
)

// goldenAngle steps the hue between consecutive segments so that
// neighbors in the list stay visually distinct.
const goldenAngle = 137.5

// Render draws the segments over a copy of src, each in its own color.
// The source image is not modified.
func Render(src image.Image, segments []ppht.Segment) *image.NRGBA {
	dst := imaging.Clone(src)

	for i, seg := range segments {
		c := colorful.Hsv(math.Mod(float64(i)*goldenAngle, 360), 0.9, 0.95)
		r, g, b := c.RGB255()

		drawLine(dst, seg.A, seg.B, color.NRGBA{R: r, G: g, B: b, A: 255})
	}

	return dst
}

// drawLine rasterizes the segment from a to b with Bresenham's
// algorithm.
func drawLine(dst *image.NRGBA, a, b ppht.Point, c color.NRGBA) {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx - dy
	x, y := a.X, a.Y

	for {
		if image.Pt(x, y).In(dst.Bounds()) {
			dst.SetNRGBA(x, y, c)
		}
		if x == b.X && y == b.Y {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
