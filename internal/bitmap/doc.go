// Package bitmap turns ordinary images into the binary rasters the
// detector consumes.
//
// The detector core is deliberately ignorant of image decoding: it
// accepts a populated ppht.State and nothing else. This package is the
// bridge for callers that start from an image file: loading (PNG, JPEG,
// GIF, and BMP), optional downscaling, optional edge extraction for
// non-binary input, thresholding to a binary raster, and populating a
// detection state from the set pixels.
//
// # Pipeline
//
// A typical ingestion runs:
//
//	img, err := bitmap.Load(path)
//	...
//	gray := bitmap.Binarize(img, bitmap.Options{Level: bitmap.AutoLevel})
//	state, err := bitmap.NewState(gray, seed)
//
// Thresholding treats white (high luminance) pixels as set. Line art is
// usually dark-on-light; pass Options.Invert to flip it before
// thresholding, or Options.Edges to extract edges first, which produces
// light-on-dark output regardless of the source polarity.
package bitmap
