package ppht

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// State represents the current state of one detection run: a status
// cell for every pixel of the image bitmap, the queue of pending pixels
// awaiting a vote, and the PRNG that draws from it.
//
// Cells are initially unset. The caller marks set pixels pending; once
// the image is loaded, pending pixels are extracted in uniform random
// order by Next, which marks them voted. Fully processed pixels are
// marked done and never change again.
type State struct {
	cells   grid[Status]
	pending []Point
	trig    *trigTable
	rng     *rand.Rand
}

// NewState creates a state raster with every pixel unset and an empty
// pending queue. seed initializes the PRNG used to pick pending pixels.
func NewState(rows, cols int, seed int64) (*State, error) {
	trig, err := sharedTrig()
	if err != nil {
		return nil, err
	}

	return &State{
		cells: newGrid[Status](rows, cols),
		trig:  trig,
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// Rows returns the height of the state raster.
func (s *State) Rows() int {
	return s.cells.rows
}

// Cols returns the width of the state raster.
func (s *State) Cols() int {
	return s.cells.cols
}

// Status returns the status of a pixel. Out-of-range points report
// StatusUnset.
func (s *State) Status(p Point) Status {
	if p.X < 0 || p.X >= s.cells.cols || p.Y < 0 || p.Y >= s.cells.rows {
		return StatusUnset
	}
	return *s.cells.at(p.Y, p.X)
}

// MarkPending marks a pixel as pending and appends it to the queue.
// The pixel must currently be unset.
func (s *State) MarkPending(p Point) {
	*s.cells.at(p.Y, p.X) = StatusPending
	s.pending = append(s.pending, p)
}

// MarkDone marks a pixel as done.
func (s *State) MarkDone(p Point) {
	*s.cells.at(p.Y, p.X) = StatusDone
}

// Next returns a uniformly random pending pixel and marks it voted, or
// false if no pending pixels remain. Queue entries whose status changed
// since they were enqueued are stripped lazily on each call, so a pixel
// is returned at most once.
func (s *State) Next() (Point, bool) {
	live := s.pending[:0]
	for _, p := range s.pending {
		if s.Status(p) == StatusPending {
			live = append(live, p)
		}
	}
	s.pending = live

	if len(s.pending) == 0 {
		return Point{}, false
	}

	i := s.rng.Intn(len(s.pending))
	last := len(s.pending) - 1

	p := s.pending[i]
	s.pending[i] = s.pending[last]
	s.pending = s.pending[:last]

	*s.cells.at(p.Y, p.X) = StatusVoted

	return p, true
}

// PendingLen returns the number of entries currently in the pending
// queue, including entries awaiting lazy removal.
func (s *State) PendingLen() int {
	return len(s.pending)
}

// clampRound rounds x to the nearest integer (ties to even) and
// restricts the result to a safely convertible range. NaN, which
// arises for lines lying exactly on an axis, maps out of any bitmap.
func clampRound(x float64) int {
	x = math.RoundToEven(x)
	switch {
	case math.IsNaN(x), x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int(x)
}

// LineIntersect clips the infinite line (theta, rho) to the image
// rectangle [0, cols-1] x [0, rows-1]. The four axis-aligned
// intersections are computed and those inside the rectangle are kept;
// degenerate corners (a line through the origin, for example) collapse
// via deduplication. A line missing the rectangle entirely reports
// ErrNoIntersection; a single boundary point yields a zero-length
// segment.
func (s *State) LineIntersect(l Line) (Segment, error) {
	cost, sint := s.trig.cossin(l.Theta)

	getX := func(y float64) int {
		return clampRound((l.Rho - sint*y) / cost)
	}
	getY := func(x float64) int {
		return clampRound((l.Rho - cost*x) / sint)
	}

	w := s.cells.cols - 1
	h := s.cells.rows - 1

	xMin := getX(0)
	yMin := getY(0)
	xMax := getX(float64(h))
	yMax := getY(float64(w))

	var endpoints []Point
	add := func(p Point) {
		for _, q := range endpoints {
			if q == p {
				return
			}
		}
		endpoints = append(endpoints, p)
	}

	if 0 <= yMin && yMin <= h {
		add(Point{0, yMin})
	}
	if 0 <= xMin && xMin <= w {
		add(Point{xMin, 0})
	}
	if 0 <= yMax && yMax <= h {
		add(Point{w, yMax})
	}
	if 0 <= xMax && xMax <= w {
		add(Point{xMax, h})
	}

	if len(endpoints) == 0 {
		return Segment{}, fmt.Errorf("%w: %v", ErrNoIntersection, l)
	}

	// With more than two matches the points in the middle are
	// redundant; only the extremes matter.
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Less(endpoints[j])
	})

	return Segment{endpoints[0], endpoints[len(endpoints)-1]}, nil
}

// Scan traces a scan channel along the given line. Every canonical
// point of the channel examines its perpendicular cross-section for
// pixels that are pending or voted; consecutive hits accumulate into a
// point set, and a gap longer than maxGap pixels closes the current set
// and opens a new one. The point set with the longest segment wins.
//
// A line that misses the bitmap propagates ErrNoIntersection, and a
// degenerate single-pixel intersection ErrInvalidSegment. A channel
// with no set pixels at all reports ErrEmptyChannel: the accumulator
// only triggers a scan when enough set pixels voted for the line, so an
// empty channel means the accumulator and the state raster are out of
// sync.
func (s *State) Scan(l Line, radius, maxGap int) (*PointSet, error) {
	seg, err := s.LineIntersect(l)
	if err != nil {
		return nil, err
	}

	ch, err := newChannel(seg.A, seg.B, radius)
	if err != nil {
		return nil, err
	}

	// The initial gap is technically infinite, but anything larger
	// than maxGap will do.
	gap := maxGap + 1

	var sets []*PointSet
	var found []Point

	for ch.next() {
		found = found[:0]

		for _, pt := range ch.pixels {
			switch s.Status(pt) {
			case StatusPending, StatusVoted:
				found = append(found, pt)
			}
		}

		if len(found) == 0 {
			gap++
			continue
		}

		if gap > maxGap {
			sets = append(sets, new(PointSet))
		}
		sets[len(sets)-1].AddPoint(ch.point, found)

		gap = 0
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: %v over %v", ErrEmptyChannel, l, seg)
	}

	longest := sets[0]
	for _, ps := range sets[1:] {
		if longest.Less(ps) {
			longest = ps
		}
	}

	return longest, nil
}
