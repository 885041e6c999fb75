package ppht

import "log"

// Params holds the tunable parameters of the detector. Reasonable
// defaults are supplied by DefaultParams; the consistency of custom
// values is not checked.
type Params struct {
	// ChannelWidth sets the thickness of the scan channel. The channel
	// radius is ChannelWidth/2, and each cross-section is on average
	// 2*radius - 1 pixels thick, so the default of 3 scans a channel
	// one pixel wide.
	ChannelWidth int `json:"channel_width"`

	// MaxGap is the maximum number of consecutive missed pixels
	// tolerated within one scan run. Gaps occur when previous scans
	// erase pixels: if two segments intersect, the second to be
	// scanned will be missing up to ChannelWidth pixels, but that gap
	// is spurious. This value should be no less than ChannelWidth.
	MaxGap int `json:"max_gap"`

	// MinLength is the minimum accepted segment length in pixels.
	MinLength int `json:"min_length"`

	// Threshold is the probability below which the null hypothesis is
	// rejected in the accumulator. Lowering it yields fewer false
	// positives but increases the chance of missing small segments.
	Threshold float64 `json:"threshold"`

	// MinTriggerPoints is the counter floor before the Poisson test
	// is applied. The Poisson approximation of the noise likelihood
	// breaks down for very small counts; skip the calculation until a
	// counter reaches this value.
	MinTriggerPoints int `json:"min_trigger_points"`

	// GapLimit is the pixel radius of the endpoint neighborhoods
	// searched by the postprocessor. Zero means "derive from the
	// channel radius".
	GapLimit int `json:"gap_limit"`

	// AngleTolerance is the postprocessor's maximum deviation from a
	// straight join, in parts of MaxTheta: the threshold cosine is
	// -cos(AngleTolerance * π / MaxTheta).
	AngleTolerance int `json:"angle_tolerance"`

	// Log, when non-nil, receives trace output for skipped lines and
	// other non-fatal events.
	Log *log.Logger `json:"-"`
}

// DefaultParams returns a parameter set suitable for clean line art at
// typical raster sizes.
func DefaultParams() Params {
	return Params{
		ChannelWidth:     3,
		MaxGap:           3,
		MinLength:        10,
		Threshold:        1e-12,
		MinTriggerPoints: 3,
		AngleTolerance:   200,
	}
}

// radius returns the channel half-width, ChannelWidth/2.
func (p Params) radius() int {
	return p.ChannelWidth / 2
}

// gapLimit returns the postprocessor neighborhood radius: the
// configured value if set, otherwise the channel radius floored at
// one pixel.
func (p Params) gapLimit() int {
	if p.GapLimit > 0 {
		return p.GapLimit
	}
	if r := p.radius(); r > 0 {
		return r
	}
	return 1
}

// tracef logs a formatted trace message if a logger is configured.
func (p Params) tracef(format string, args ...any) {
	if p.Log != nil {
		p.Log.Printf(format, args...)
	}
}
