package ppht

import (
	"fmt"
	"math"
	"sync"
)

// MaxTheta is the angular resolution of the detector in parts per
// semiturn: 3600 parts span 180 degrees, so one part is 0.05 degrees.
// One full turn is 2 * MaxTheta parts.
const MaxTheta = 3600

// trigTable is a precomputed table of cosine and sine values for the
// semiturn, indexed by parts. Only half of the table is computed
// directly; the second half follows from the quadrant identities
// sin(θ+π/2) = cos θ and cos(θ+π/2) = -sin θ.
type trigTable struct {
	cos, sin []float64
}

// newTrigTable builds a table with maxTheta parts per semiturn. The
// part count must be even.
func newTrigTable(maxTheta int) (*trigTable, error) {
	if maxTheta%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrTrigTable, maxTheta)
	}

	t := &trigTable{
		cos: make([]float64, maxTheta),
		sin: make([]float64, maxTheta),
	}

	radiansPerPart := math.Pi / float64(maxTheta)

	for theta := 0; theta < maxTheta/2; theta++ {
		s, c := math.Sincos(float64(theta) * radiansPerPart)

		t.cos[theta] = c
		t.sin[theta] = s
		t.cos[theta+maxTheta/2] = -s
		t.sin[theta+maxTheta/2] = c
	}

	return t, nil
}

// sharedTrig returns the process-wide table for MaxTheta parts. The
// table is immutable once built, so sharing it between the state and
// the accumulator is safe.
var sharedTrig = sync.OnceValues(func() (*trigTable, error) {
	return newTrigTable(MaxTheta)
})

// cossin returns the (cos θ, sin θ) pair for theta in [0, len) parts.
func (t *trigTable) cossin(theta int) (cos, sin float64) {
	return t.cos[theta], t.sin[theta]
}

// dot returns p · (cos θ, sin θ), the raw rho of the line through p at
// angle theta.
func (t *trigTable) dot(p Point, theta int) float64 {
	return float64(p.X)*t.cos[theta] + float64(p.Y)*t.sin[theta]
}
