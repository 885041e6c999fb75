package ppht

import (
	"errors"
	"fmt"
)

// FindSegments runs the PPHT loop over a populated state until the
// pending queue is exhausted, then fuses the accepted segments.
//
// Each iteration draws a random pending pixel, votes it into the
// accumulator, and, when the significance test rejects the null
// hypothesis, scans the candidate line. A scan whose longest run
// reaches MinLength is accepted: its segment is recorded and its pixels
// are committed (voted pixels unvoted, all pixels marked done). A scan
// that falls short is discarded without committing; the pixels it
// touched keep their status so they may contribute to later votes, and
// the triggering pixel's own vote stays in effect.
//
// Lines that miss the bitmap, or whose intersection degenerates to a
// single pixel, are skipped. A channel with no set pixels aborts the
// run with ErrEmptyChannel, as does any invariant violation during
// commit; an aborted run returns no segments.
func FindSegments(state *State, p Params, seed int64) ([]Segment, error) {
	acc, err := NewAccumulator(state.Rows(), state.Cols(), p, seed)
	if err != nil {
		return nil, err
	}

	minLengthSquared := p.MinLength * p.MinLength
	radius := p.radius()

	var segments []Segment

	for {
		pt, ok := state.Next()
		if !ok {
			break
		}

		line, ok := acc.Vote(pt)
		if !ok {
			continue
		}

		found, err := state.Scan(line, radius, p.MaxGap)
		switch {
		case errors.Is(err, ErrNoIntersection), errors.Is(err, ErrInvalidSegment):
			// A line that misses the bitmap, or grazes a single
			// pixel of it, cannot hold a segment of any length.
			p.tracef("skipping %v: %v", line, err)
			continue
		case err != nil:
			return nil, fmt.Errorf("scan of %v triggered by %v: %w", line, pt, err)
		}

		if found.LengthSquared() < minLengthSquared {
			continue
		}

		segments = append(segments, found.Segment())

		if err := found.Commit(state, acc); err != nil {
			return nil, fmt.Errorf("commit of %v: %w", found, err)
		}
	}

	return FuseSegments(segments, p.gapLimit(), p.AngleTolerance), nil
}
