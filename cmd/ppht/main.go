// Command ppht detects line segments in an image and reports them as
// JSON, optionally rendering an overlay image for inspection.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"

	"github.com/rmenke/ppht"
	"github.com/rmenke/ppht/internal/bitmap"
	"github.com/rmenke/ppht/internal/overlay"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// pointJSON is one endpoint of a reported segment.
type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// segmentJSON is one detected segment.
type segmentJSON struct {
	Start        pointJSON `json:"start"`
	End          pointJSON `json:"end"`
	Length       float64   `json:"length"`
	AngleDegrees float64   `json:"angle_degrees"`
}

// resultJSON is the top-level output document.
type resultJSON struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Segments []segmentJSON `json:"segments"`
	Count    int           `json:"count"`
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ppht %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		channelWidth = flag.Int("channel-width", 3, "scan channel width; the channel radius is half of it and a cross-section is 2*radius-1 pixels")
		maxGap       = flag.Int("max-gap", 3, "maximum pixel gap tolerated within one segment")
		minLength    = flag.Int("min-length", 10, "minimum accepted segment length in pixels")
		seed         = flag.Int64("seed", 1, "PRNG seed; detection is deterministic per seed")
		level        = flag.Int("level", bitmap.AutoLevel, "binarization level 0-255, or -1 for Otsu")
		invert       = flag.Bool("invert", false, "treat dark pixels as set (dark-on-light line art)")
		edges        = flag.Bool("edges", false, "run edge detection before thresholding")
		maxDim       = flag.Int("max-dim", 0, "downscale so neither dimension exceeds this (0 = off)")
		overlayPath  = flag.String("overlay", "", "write an overlay PNG with the detected segments")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ppht [options] image\n\n")
		fmt.Fprintf(os.Stderr, "Detect line segments in an image and print them as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  PPHT_LOG_LEVEL=debug    Enable debug logging\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Diagnostics go to stderr; stdout carries the JSON document.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	params := ppht.DefaultParams()
	params.ChannelWidth = *channelWidth
	params.MaxGap = *maxGap
	params.MinLength = *minLength

	debug := os.Getenv("PPHT_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("ppht %s (built %s, commit %s)", Version, BuildTime, GitCommit)
		params.Log = log.Default()
	}

	if err := run(flag.Arg(0), params, *seed, bitmap.Options{
		Level:  *level,
		Invert: *invert,
		Edges:  *edges,
	}, *maxDim, *overlayPath, debug); err != nil {
		log.Fatalf("ppht: %v", err)
	}
}

func run(path string, params ppht.Params, seed int64, opt bitmap.Options,
	maxDim int, overlayPath string, debug bool) error {
	img, err := bitmap.Load(path)
	if err != nil {
		return err
	}
	if maxDim > 0 {
		img = bitmap.FitWithin(img, maxDim)
	}

	gray := bitmap.Binarize(img, opt)

	state, err := bitmap.NewState(gray, seed)
	if err != nil {
		return err
	}

	if debug {
		log.Printf("raster %dx%d, %d pending pixels",
			state.Cols(), state.Rows(), state.PendingLen())
	}

	segments, err := ppht.FindSegments(state, params, seed)
	if err != nil {
		return err
	}

	result := resultJSON{
		Width:    state.Cols(),
		Height:   state.Rows(),
		Segments: make([]segmentJSON, 0, len(segments)),
		Count:    len(segments),
	}

	for _, s := range segments {
		d := s.B.Sub(s.A)
		result.Segments = append(result.Segments, segmentJSON{
			Start:        pointJSON{s.A.X, s.A.Y},
			End:          pointJSON{s.B.X, s.B.Y},
			Length:       math.Round(d.Length()*10) / 10,
			AngleDegrees: math.Round(math.Atan2(float64(d.Y), float64(d.X))*180/math.Pi*10) / 10,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if overlayPath != "" {
		if err := imaging.Save(overlay.Render(img, segments), overlayPath); err != nil {
			return fmt.Errorf("failed to save overlay: %w", err)
		}
	}

	return nil
}
