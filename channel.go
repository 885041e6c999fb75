package ppht

import (
	"fmt"
	"math"
)

// channel iterates over a thick line segment, producing for every
// canonical point on the ideal Bresenham line the set of pixels that
// make up the perpendicular cross-section through it.
//
// The radius parameter is the half-width of the channel including the
// reference pixel: a radius of 3 produces a channel 5 pixels wide.
// Cross-sections are disjoint (each raster pixel appears at most once
// across the whole channel) and together cover the Murphy thick line
// from p0 to p1. The local thickness of a cross-section varies between
// 1 and 2 pixels; on average it is 2*radius - 1.
//
// In rare cases the canonical point is not a member of its own
// cross-section, only adjacent to one.
//
// Typical use:
//
//	ch, err := newChannel(p0, p1, radius)
//	...
//	for ch.next() {
//		canonical, pixels := ch.point, ch.pixels
//		...
//	}
//
// The pixels slice is reused between steps; callers must not retain it.
type channel struct {
	scan scanner

	// point is the current canonical point.
	point Point

	// pixels is the current cross-section, valid until the next call
	// to next.
	pixels []Point

	// seen dedupes pixels within one cross-section. The two comb
	// passes of the Murphy fill both start from the canonical point.
	seen map[Point]struct{}

	// steps counts canonical points already produced; the channel
	// terminates after total of them.
	steps, total int
}

// scanner holds the per-segment traversal state. Rather than an
// abstract scanner hierarchy there is one tagged variant with two
// cases, axial and Murphy, selected once at construction, keeping
// dynamic dispatch out of the hot path.
type scanner struct {
	// axial is true when the minor delta is zero and the cross-section
	// is a straight perpendicular run.
	axial bool

	// major is the axis with the larger rate of change; ties go to
	// the y axis.
	major axis

	// step is the unit step along the line direction.
	step Point

	// radius is the channel half-width.
	radius int

	// Murphy state. delta holds the absolute deltas; perpStep the unit
	// step of the perpendicular comb passes.
	delta    Point
	perpStep Point

	// width is the virtual thickness 2*radius*hypot(delta) against
	// which the comb passes accumulate.
	width float64

	threshold     int
	postMinorMove int
	postMajorMove int

	err, phase int
}

// newChannel constructs a channel from p0 to p1 with the given
// half-width. Construction with p0 == p1 fails with ErrInvalidSegment.
func newChannel(p0, p1 Point, radius int) (*channel, error) {
	if p0 == p1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSegment, p0)
	}

	delta := p1.Sub(p0)

	var major axis
	if abs(delta.X) > abs(delta.Y) {
		major = axisX
	} else {
		major = axisY
	}

	s := scanner{
		axial:  comp(delta, major.other()) == 0,
		major:  major,
		step:   Point{signum(delta.X), signum(delta.Y)},
		radius: radius,
	}

	if !s.axial {
		s.delta = Point{abs(delta.X), abs(delta.Y)}

		// The comb passes run perpendicular to the line: they follow
		// the line's direction along the minor axis and step against
		// it along the major axis, so the major component of the unit
		// step is negated, for x-major and y-major lines alike.
		if major == axisX {
			s.perpStep = Point{-s.step.X, +s.step.Y}
		} else {
			s.perpStep = Point{+s.step.X, -s.step.Y}
		}

		D := comp(s.delta, major)
		d := comp(s.delta, major.other())

		s.width = 2 * float64(radius) * math.Hypot(float64(s.delta.X), float64(s.delta.Y))
		s.threshold = D - 2*d
		s.postMinorMove = -2 * D
		s.postMajorMove = 2 * d
	}

	return &channel{
		scan:  s,
		point: p0,
		seen:  make(map[Point]struct{}, 4*radius+4),
		total: abs(comp(delta, major)) + 1,
	}, nil
}

// next advances to the following canonical point and rebuilds its
// cross-section. It returns false once the point past p1 would be
// produced; the last canonical point is exactly p1.
func (c *channel) next() bool {
	if c.steps >= c.total {
		return false
	}
	if c.steps > 0 {
		c.scan.advance(&c.point)
	}
	c.steps++

	c.pixels = c.pixels[:0]
	clear(c.seen)

	if c.scan.axial {
		c.scan.fillAxial(c.point, c)
	} else {
		c.scan.fillMurphy(c.point, c)
	}

	return true
}

// emit adds p to the current cross-section unless it is already there.
func (c *channel) emit(p Point) {
	if _, dup := c.seen[p]; dup {
		return
	}
	c.seen[p] = struct{}{}
	c.pixels = append(c.pixels, p)
}

// advance moves the canonical point one step along the line, updating
// the Bresenham error terms for an oblique segment.
func (s *scanner) advance(pt *Point) {
	if s.axial {
		addComp(pt, s.major, comp(s.step, s.major))
		return
	}

	if s.err >= s.threshold {
		addComp(pt, s.major.other(), comp(s.step, s.major.other()))
		s.err += s.postMinorMove

		if s.phase >= s.threshold {
			s.phase += s.postMinorMove
		}
		s.phase += s.postMajorMove
	}

	addComp(pt, s.major, comp(s.step, s.major))
	s.err += s.postMajorMove
}

// fillAxial emits the straight perpendicular run of 2*radius - 1 pixels
// centered on the canonical point.
func (s *scanner) fillAxial(pt Point, c *channel) {
	minor := s.major.other()
	addComp(&pt, minor, -s.radius)

	for m := 1; m < 2*s.radius; m++ {
		addComp(&pt, minor, 1)
		c.emit(pt)
	}
}

// fillMurphy emits the two perpendicular comb passes around the
// canonical point. When the error terms indicate the line is about to
// take a minor step, a second fan from the next minor position is
// emitted as well so that consecutive cross-sections leave no holes in
// the thick line. If the fans produced nothing (tiny widths), the
// canonical point itself stands in.
func (s *scanner) fillMurphy(pt Point, c *channel) {
	s.perpendiculars(pt, c, s.phase, s.err)

	if s.err >= s.threshold && s.phase >= s.threshold {
		minor := s.major.other()
		addComp(&pt, minor, comp(s.step, minor))
		s.perpendiculars(pt, c,
			s.phase+s.postMinorMove+s.postMajorMove,
			s.err+s.postMinorMove)
	}

	if len(c.pixels) == 0 {
		c.emit(pt)
	}
}

// perpendiculars walks one comb pass in each direction from pt,
// emitting pixels while a running thickness counter stays within the
// virtual width and correcting along the major axis whenever the phase
// accumulator crosses the threshold.
func (s *scanner) perpendiculars(pt Point, c *channel, initialPhase, initialError int) {
	major, minor := s.major, s.major.other()

	d := comp(s.delta, major) + comp(s.delta, minor)

	p := pt
	phase := initialPhase

	for tk := d - initialError; float64(tk) < s.width; tk -= s.postMinorMove {
		c.emit(p)

		if phase >= s.threshold {
			addComp(&p, major, comp(s.perpStep, major))
			phase += s.postMinorMove
			tk += s.postMajorMove
		}

		addComp(&p, minor, comp(s.perpStep, minor))
		phase += s.postMajorMove
	}

	p = pt
	phase = -initialPhase

	for tk := d + initialError; float64(tk) <= s.width; tk -= s.postMinorMove {
		c.emit(p)

		if phase > s.threshold {
			addComp(&p, major, -comp(s.perpStep, major))
			phase += s.postMinorMove
			tk += s.postMajorMove
		}

		addComp(&p, minor, -comp(s.perpStep, minor))
		phase += s.postMajorMove
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
