package ppht

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestState(t *testing.T, rows, cols int) *State {
	t.Helper()

	s, err := NewState(rows, cols, testSeed)
	if err != nil {
		t.Fatalf("NewState(%d, %d): %v", rows, cols, err)
	}
	return s
}

func TestStateStatusTransitions(t *testing.T) {
	s := newTestState(t, 10, 10)

	p := Pt(3, 4)
	if got := s.Status(p); got != StatusUnset {
		t.Fatalf("initial status = %v, want unset", got)
	}

	s.MarkPending(p)
	if got := s.Status(p); got != StatusPending {
		t.Fatalf("status after MarkPending = %v, want pending", got)
	}

	got, ok := s.Next()
	if !ok || got != p {
		t.Fatalf("Next = %v, %v; want %v, true", got, ok, p)
	}
	if got := s.Status(p); got != StatusVoted {
		t.Fatalf("status after Next = %v, want voted", got)
	}

	s.MarkDone(p)
	if got := s.Status(p); got != StatusDone {
		t.Fatalf("status after MarkDone = %v, want done", got)
	}
}

func TestStateStatusOutOfRange(t *testing.T) {
	s := newTestState(t, 10, 10)

	for _, p := range []Point{Pt(-1, 0), Pt(0, -1), Pt(10, 0), Pt(0, 10), Pt(-100, 500)} {
		if got := s.Status(p); got != StatusUnset {
			t.Errorf("Status(%v) = %v, want unset", p, got)
		}
	}
}

func TestStateNextDrainsEachPixelOnce(t *testing.T) {
	s := newTestState(t, 8, 8)

	marked := map[Point]bool{}
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 3 {
			s.MarkPending(Pt(x, y))
			marked[Pt(x, y)] = true
		}
	}

	seen := map[Point]bool{}
	for {
		p, ok := s.Next()
		if !ok {
			break
		}
		if !marked[p] {
			t.Fatalf("Next returned unmarked pixel %v", p)
		}
		if seen[p] {
			t.Fatalf("Next returned %v twice", p)
		}
		seen[p] = true
	}

	if len(seen) != len(marked) {
		t.Errorf("drained %d pixels, marked %d", len(seen), len(marked))
	}
}

func TestStateNextSkipsChangedPixels(t *testing.T) {
	s := newTestState(t, 8, 8)

	s.MarkPending(Pt(1, 1))
	s.MarkPending(Pt(2, 2))

	// A pixel whose status changed while queued must be stripped, not
	// returned.
	s.MarkDone(Pt(1, 1))

	p, ok := s.Next()
	if !ok || p != Pt(2, 2) {
		t.Fatalf("Next = %v, %v; want (2, 2), true", p, ok)
	}
	if _, ok := s.Next(); ok {
		t.Fatal("queue should be exhausted")
	}
}

func TestLineIntersect(t *testing.T) {
	s := newTestState(t, 240, 320)

	cases := []struct {
		name string
		line Line
		want Segment
	}{
		{"simple", Line{Theta: 900, Rho: 100}, Seg(Pt(0, 141), Pt(141, 0))},
		{"truncated", Line{Theta: 900, Rho: 200}, Seg(Pt(44, 239), Pt(283, 0))},
		{"degenerate corner", Line{Theta: 2700, Rho: 0}, Seg(Pt(0, 0), Pt(239, 239))},
		{"horizontal", Line{Theta: 1800, Rho: 5}, Seg(Pt(0, 5), Pt(319, 5))},
		{"vertical", Line{Theta: 0, Rho: 7}, Seg(Pt(7, 0), Pt(7, 239))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.LineIntersect(c.line)
			if err != nil {
				t.Fatalf("LineIntersect(%v): %v", c.line, err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("LineIntersect(%v) mismatch (-want +got):\n%s", c.line, diff)
			}
		})
	}
}

func TestLineIntersectMiss(t *testing.T) {
	s := newTestState(t, 240, 320)

	_, err := s.LineIntersect(Line{Theta: 900, Rho: 1000})
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("err = %v, want ErrNoIntersection", err)
	}

	_, err = s.LineIntersect(Line{Theta: 900, Rho: -10})
	if !errors.Is(err, ErrNoIntersection) {
		t.Errorf("err = %v, want ErrNoIntersection", err)
	}
}

func TestScanLongestRun(t *testing.T) {
	s := newTestState(t, 20, 20)

	// Two runs along the row y = 5: a short one and, after a gap of
	// four unset pixels, a longer one.
	for x := 2; x <= 7; x++ {
		s.MarkPending(Pt(x, 5))
	}
	for x := 12; x <= 19; x++ {
		s.MarkPending(Pt(x, 5))
	}

	ps, err := s.Scan(Line{Theta: 1800, Rho: 5}, 1, 3)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if got, want := ps.Segment(), Seg(Pt(12, 5), Pt(19, 5)); !got.Equal(want) {
		t.Errorf("longest run = %v, want %v", got, want)
	}
	if got := ps.Len(); got != 8 {
		t.Errorf("point set size = %d, want 8", got)
	}
}

func TestScanBridgesSmallGaps(t *testing.T) {
	s := newTestState(t, 20, 20)

	// A gap no longer than maxGap must not split the run.
	for x := 2; x <= 17; x++ {
		if x == 9 || x == 10 {
			continue
		}
		s.MarkPending(Pt(x, 5))
	}

	ps, err := s.Scan(Line{Theta: 1800, Rho: 5}, 1, 3)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if got, want := ps.Segment(), Seg(Pt(2, 5), Pt(17, 5)); !got.Equal(want) {
		t.Errorf("run = %v, want %v", got, want)
	}
}

func TestScanEmptyChannel(t *testing.T) {
	s := newTestState(t, 20, 20)

	_, err := s.Scan(Line{Theta: 1800, Rho: 5}, 1, 3)
	if !errors.Is(err, ErrEmptyChannel) {
		t.Errorf("err = %v, want ErrEmptyChannel", err)
	}
}
