package ppht

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markRect marks the outline of an axis-aligned rectangle pending.
func markRect(s *State, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		s.MarkPending(Pt(x, y0))
		s.MarkPending(Pt(x, y1))
	}
	for y := y0 + 1; y < y1; y++ {
		s.MarkPending(Pt(x0, y))
		s.MarkPending(Pt(x1, y))
	}
}

func TestFindSegmentsEmptyState(t *testing.T) {
	s := newTestState(t, 64, 64)

	segs, err := FindSegments(s, DefaultParams(), testSeed)
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestFindSegmentsSingleLine(t *testing.T) {
	s := newTestState(t, 100, 100)

	for x := 10; x <= 90; x++ {
		s.MarkPending(Pt(x, 40))
	}

	segs, err := FindSegments(s, DefaultParams(), testSeed)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	assert.True(t, segs[0].Equal(Seg(Pt(10, 40), Pt(90, 40))),
		"detected %v, want (10, 40)--(90, 40)", segs[0])
}

func TestFindSegmentsDiagonal(t *testing.T) {
	s := newTestState(t, 100, 100)

	for i := 5; i <= 95; i++ {
		s.MarkPending(Pt(i, i))
	}

	segs, err := FindSegments(s, DefaultParams(), testSeed)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	d := segs[0].B.Sub(segs[0].A)
	assert.LessOrEqual(t, abs(abs(d.X)-abs(d.Y)), 2,
		"detected segment %v is not diagonal", segs[0])
	assert.GreaterOrEqual(t, segs[0].LengthSquared(), 80*80,
		"detected segment %v too short", segs[0])
}

func TestFindSegmentsDeterministic(t *testing.T) {
	build := func() *State {
		s := newTestState(t, 120, 160)
		markRect(s, 30, 30, 120, 90)
		return s
	}

	first, err := FindSegments(build(), DefaultParams(), testSeed)
	require.NoError(t, err)

	second, err := FindSegments(build(), DefaultParams(), testSeed)
	require.NoError(t, err)

	assert.Equal(t, first, second,
		"identical input and seed must reproduce the segment list")
}

// within reports whether two points lie within dist pixels of each
// other.
func within(p, q Point, dist int) bool {
	return p.Sub(q).LengthSquared() <= dist*dist
}

// similar reports whether two segments match endpoint-for-endpoint
// within tolerance, in either orientation.
func similar(a, b Segment, dist int) bool {
	return (within(a.A, b.A, dist) && within(a.B, b.B, dist)) ||
		(within(a.A, b.B, dist) && within(a.B, b.A, dist))
}

func TestFindSegmentsThreeSquares(t *testing.T) {
	// A 320x120 image containing three 80x80 axis-aligned squares.
	// All twelve sides must come back, each endpoint within five
	// pixels of the literal corner, with nothing left over.
	s := newTestState(t, 120, 320)

	for _, x0 := range []int{20, 120, 220} {
		markRect(s, x0, 20, x0+80, 100)
	}

	segs, err := FindSegments(s, DefaultParams(), testSeed)
	require.NoError(t, err)

	expected := []Segment{}
	for _, x0 := range []int{20, 120, 220} {
		expected = append(expected,
			Seg(Pt(x0, 20), Pt(x0+80, 20)),
			Seg(Pt(x0, 100), Pt(x0+80, 100)),
			Seg(Pt(x0, 20), Pt(x0, 100)),
			Seg(Pt(x0+80, 20), Pt(x0+80, 100)),
		)
	}

	// Greedy pairwise matching: every expected side must be claimed by
	// exactly one detected segment.
	unmatched := append([]Segment(nil), segs...)
	for _, want := range expected {
		found := -1
		for i, got := range unmatched {
			if similar(got, want, 5) {
				found = i
				break
			}
		}
		if found < 0 {
			t.Errorf("side %v not detected; got %v", want, segs)
			continue
		}
		unmatched = append(unmatched[:found], unmatched[found+1:]...)
	}

	assert.Empty(t, unmatched, "unexpected extra segments")
	assert.Len(t, segs, len(expected))
}
