package ppht

import (
	"fmt"
	"math"
)

// Point is a signed integer pair used both as a pixel index and as an
// integer vector.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns the componentwise product p * q.
func (p Point) Mul(q Point) Point {
	return Point{p.X * q.X, p.Y * q.Y}
}

// Div returns the componentwise quotient p / q.
func (p Point) Div(q Point) Point {
	return Point{p.X / q.X, p.Y / q.Y}
}

// Scale returns the scalar product p * k.
func (p Point) Scale(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Shrink returns the scalar quotient p / k, truncated toward zero.
func (p Point) Shrink(k int) Point {
	return Point{p.X / k, p.Y / k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) int {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns the squared Euclidean length of p as a vector.
func (p Point) LengthSquared() int {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the Euclidean length of p as a vector.
func (p Point) Length() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Less establishes a lexicographic total order over points: first by X,
// then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Axis selects a point component. The Murphy scanner is written in
// terms of a major and minor axis rather than x and y; these helpers
// keep that code free of duplicated per-axis branches.
type axis uint8

const (
	axisX axis = 0
	axisY axis = 1
)

// other returns the perpendicular axis.
func (a axis) other() axis {
	return 1 - a
}

// comp returns the component of p along a.
func comp(p Point, a axis) int {
	if a == axisX {
		return p.X
	}
	return p.Y
}

// setComp sets the component of p along a.
func setComp(p *Point, a axis, v int) {
	if a == axisX {
		p.X = v
	} else {
		p.Y = v
	}
}

// addComp adds d to the component of p along a.
func addComp(p *Point, a axis, d int) {
	if a == axisX {
		p.X += d
	} else {
		p.Y += d
	}
}

// signum returns -1, 0, or +1 according to the sign of v.
func signum(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return +1
	}
	return 0
}
