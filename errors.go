package ppht

import "errors"

// Error taxonomy of the detector. All conditions propagate immediately
// to the driver; none are silently swallowed. Callers discriminate with
// errors.Is.
var (
	// ErrInvalidSegment reports that a zero-length segment was given
	// to the channel scanner.
	ErrInvalidSegment = errors.New("ppht: endpoints must be separated")

	// ErrNoIntersection reports that a line does not meet the image
	// rectangle. It is fatal to the current scan only; the driver
	// skips the line and continues.
	ErrNoIntersection = errors.New("ppht: line does not intersect bitmap")

	// ErrEmptyChannel reports that a scan yielded no set pixels along
	// a line that was just accepted by the accumulator. This signals
	// desynchronization between the accumulator and the state raster
	// and aborts the run.
	ErrEmptyChannel = errors.New("ppht: channel contained no viable segments")

	// ErrInvariantViolation reports an attempt to decrement a zero
	// counter or to mark done a pixel that is neither pending nor
	// voted.
	ErrInvariantViolation = errors.New("ppht: invariant violation")

	// ErrTrigTable reports an invalid angular resolution: the number
	// of parts per semiturn must be even.
	ErrTrigTable = errors.New("ppht: parts per semiturn not even")
)
