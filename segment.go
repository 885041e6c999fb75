package ppht

import "fmt"

// Segment is an unordered pair of points. Two segments are equal iff
// their endpoints match as a multiset.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{a, b}.
func Seg(a, b Point) Segment {
	return Segment{a, b}
}

// Equal reports whether s and t have the same endpoints, in either
// order.
func (s Segment) Equal(t Segment) bool {
	return (s.A == t.A && s.B == t.B) || (s.A == t.B && s.B == t.A)
}

// LengthSquared returns the squared Euclidean distance between the two
// endpoints.
func (s Segment) LengthSquared() int {
	return s.B.Sub(s.A).LengthSquared()
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.A, s.B)
}

// Line is a line in Hough space: Theta is an integer angle in
// [0, MaxTheta) parts per semiturn, Rho the length of the perpendicular
// from the origin in raw (unscaled) units.
type Line struct {
	Theta int
	Rho   float64
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return fmt.Sprintf("(θ = %d, ρ = %g)", l.Theta, l.Rho)
}
