package ppht

import (
	"fmt"
	"sort"
)

// PointSet is a collection of pixels surrounding a portion of a line,
// together with the canonical endpoints of that portion. The segment
// need not pass through all of the pixels, and may contain points that
// are not in the pixel set.
type PointSet struct {
	points map[Point]struct{}
	seg    Segment
}

// AddPoint extends the running segment to the canonical point and
// inserts the hit pixels into the set. The first call fixes the head
// endpoint; every call advances the tail. The canonical point itself is
// not added to the pixel set. Duplicate hits are ignored.
func (ps *PointSet) AddPoint(canonical Point, hits []Point) {
	if ps.points == nil {
		ps.points = make(map[Point]struct{})
	}

	if len(ps.points) == 0 {
		ps.seg.A = canonical
	}
	ps.seg.B = canonical

	for _, p := range hits {
		ps.points[p] = struct{}{}
	}
}

// Empty reports whether the point set holds no pixels.
func (ps *PointSet) Empty() bool {
	return len(ps.points) == 0
}

// Len returns the number of pixels in the set.
func (ps *PointSet) Len() int {
	return len(ps.points)
}

// Segment returns the canonical segment of the point set. The value is
// defined only if Empty reports false.
func (ps *PointSet) Segment() Segment {
	return ps.seg
}

// LengthSquared returns the squared length of the canonical segment.
// Undefined when the point set is empty.
func (ps *PointSet) LengthSquared() int {
	return ps.seg.LengthSquared()
}

// Less orders point sets by segment length. An empty point set compares
// less than any non-empty one.
func (ps *PointSet) Less(rhs *PointSet) bool {
	if e := ps.Empty(); e != rhs.Empty() {
		return e
	}
	return ps.LengthSquared() < rhs.LengthSquared()
}

// Commit finalizes one accepted segment. Every pixel in the set is
// marked done; pixels whose votes are in the accumulator are unvoted
// first. A pixel that is neither pending nor voted reports
// ErrInvariantViolation. Pixels are visited in point order, so the
// commit sequence is deterministic for a given set.
func (ps *PointSet) Commit(s *State, a *Accumulator) error {
	pts := make([]Point, 0, len(ps.points))
	for p := range ps.points {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	for _, p := range pts {
		switch status := s.Status(p); status {
		case StatusVoted:
			if err := a.Unvote(p); err != nil {
				return err
			}
		case StatusPending:
			// Never voted; nothing to remove from the accumulator.
		default:
			return fmt.Errorf("%w: commit of %v pixel %v",
				ErrInvariantViolation, status, p)
		}

		s.MarkDone(p)
	}

	return nil
}

// String implements fmt.Stringer.
func (ps *PointSet) String() string {
	return fmt.Sprintf("point_set{%v; %d points}", ps.seg, len(ps.points))
}
