package ppht

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Accumulator maintains the matrix of line-candidate counters, indexed
// by quantized (theta, rho), and decides when a candidate crosses the
// significance threshold.
//
// Rho is quantized by scaling: if RhoInfo returns (R, s), then
// scaled(rho) = round(rho * 2^s) + R/2, and the counter matrix has R
// rows and MaxTheta columns. Each call to Vote increments one counter
// per theta column (those whose scaled rho falls inside [0, R)), so the
// sum over all counters is always MaxTheta times the number of votes
// still in effect, modulo the out-of-range columns.
type Accumulator struct {
	trig *trigTable

	// rhoScale is the exponent by which raw rho values are scaled.
	rhoScale int

	// logThreshold is the log-probability below which the null
	// hypothesis is rejected.
	logThreshold float64

	// minTriggerPoints is the counter floor before the Poisson test
	// applies.
	minTriggerPoints int

	// counters is the quantized (theta, rho) matrix.
	counters grid[uint16]

	// votes counts the votes still in effect.
	votes int

	// cand is the scratch buffer for candidate lines, reused across
	// calls to Vote.
	cand []Line

	// rng is reserved for tie-breaking extensions. The current
	// best-candidate rule is deterministic and never draws from it.
	rng *rand.Rand
}

// RhoInfo calculates the rho quantization for a rows x cols bitmap:
// the height R of the counter matrix and the exponent s by which raw
// rho values are scaled. R is always odd, so R/2 is an exact offset,
// and is chosen to make the counter matrix as square as possible
// against its MaxTheta columns.
func RhoInfo(rows, cols int) (maxRho, rhoScale int) {
	diag := math.Ceil(math.Hypot(float64(rows-1), float64(cols-1)))
	exp := math.Ilogb(MaxTheta / (diag*2 + 1))

	// lo is 2*diag*2^exp + 1, the largest candidate height not above
	// MaxTheta; hi is one doubling further.
	lo := int(math.Ceil(math.Ldexp(diag, exp+1))) + 1
	hi := int(math.Ceil(math.Ldexp(diag, exp+2))) + 1

	if MaxTheta-lo <= hi-MaxTheta {
		return lo, exp
	}
	return hi, exp + 1
}

// NewAccumulator creates an accumulator for a rows x cols bitmap. The
// threshold and trigger floor come from p; seed initializes the
// reserved tie-break generator.
func NewAccumulator(rows, cols int, p Params, seed int64) (*Accumulator, error) {
	trig, err := sharedTrig()
	if err != nil {
		return nil, err
	}

	maxRho, rhoScale := RhoInfo(rows, cols)

	return &Accumulator{
		trig:             trig,
		rhoScale:         rhoScale,
		logThreshold:     math.Log(p.Threshold),
		minTriggerPoints: p.MinTriggerPoints,
		counters:         newGrid[uint16](maxRho, MaxTheta),
		cand:             make([]Line, 0, 16),
		rng:              rand.New(rand.NewSource(seed)),
	}, nil
}

// scaleRho converts a raw rho value to a row index: scale by 2^rhoScale,
// translate by half the matrix height, round to nearest (ties to even).
// The result may be out of [0, maxRho); callers must range-check before
// indexing.
func (a *Accumulator) scaleRho(unscaled float64) float64 {
	offset := float64(a.counters.rows >> 1)
	return math.RoundToEven(math.Ldexp(unscaled, a.rhoScale) + offset)
}

// unscaleRho performs the transform of scaleRho in reverse.
func (a *Accumulator) unscaleRho(scaled float64) float64 {
	offset := float64(a.counters.rows >> 1)
	return math.Ldexp(scaled-offset, -a.rhoScale)
}

// Vote adds all lines passing through p to the accumulator and applies
// the significance test. It returns the best candidate line and true if
// the largest counter touched is too improbable under the null
// hypothesis; otherwise the zero Line and false.
//
// Candidate tracking is fused into the single pass over theta: whenever
// a counter strictly exceeds the running maximum the candidate list is
// discarded, and every counter equal to the maximum appends its line.
// Ties in the final selection go to the first candidate seen, so the
// outcome is deterministic for identical vote order.
func (a *Accumulator) Vote(p Point) (Line, bool) {
	maxRho := a.counters.rows

	n := uint16(a.minTriggerPoints)
	a.cand = a.cand[:0]

	for theta := 0; theta < MaxTheta; theta++ {
		rho := a.scaleRho(a.trig.dot(p, theta))
		if rho < 0 || rho >= float64(maxRho) {
			continue
		}

		counter := a.counters.at(int(rho), theta)
		(*counter)++

		if n < *counter {
			n = *counter
			a.cand = a.cand[:0]
		}
		if n == *counter {
			a.cand = append(a.cand, Line{theta, a.unscaleRho(rho)})
		}
	}

	a.votes++

	if len(a.cand) == 0 {
		return Line{}, false
	}

	// Each vote increments one counter per theta column, so under the
	// null hypothesis E[n] = votes/maxRho for every cell. The counts
	// are approximately Poisson distributed around that mean.
	noise := distuv.Poisson{Lambda: float64(a.votes) / float64(maxRho)}

	// If a randomly filled bin would plausibly hold a count of n, the
	// maximum is indistinguishable from noise.
	if noise.LogProb(float64(n)) >= a.logThreshold {
		return Line{}, false
	}

	return a.bestCandidate(a.cand), true
}

// bestCandidate selects the line most likely to be correct based on its
// angle: a line is preferred when its angle is a simple fraction of π,
// which biases toward axis-aligned and other common angles. The measure
// is gcd(theta, MaxTheta/2); the first seen wins ties.
func (a *Accumulator) bestCandidate(cand []Line) Line {
	best := cand[0]
	bestGCD := gcd(best.Theta, MaxTheta/2)

	for _, l := range cand[1:] {
		if g := gcd(l.Theta, MaxTheta/2); g > bestGCD {
			best, bestGCD = l, g
		}
	}

	return best
}

// Unvote undoes a previous call to Vote for the same point, restoring
// every counter it incremented. Decrementing a counter that is already
// zero reports ErrInvariantViolation.
func (a *Accumulator) Unvote(p Point) error {
	maxRho := a.counters.rows

	for theta := 0; theta < MaxTheta; theta++ {
		rho := a.scaleRho(a.trig.dot(p, theta))
		if rho < 0 || rho >= float64(maxRho) {
			continue
		}

		counter := a.counters.at(int(rho), theta)
		if *counter == 0 {
			return fmt.Errorf("%w: unvote of zero counter at (θ = %d, ρ = %g) for %v",
				ErrInvariantViolation, theta, a.unscaleRho(rho), p)
		}
		(*counter)--
	}

	a.votes--
	return nil
}

// Votes returns the number of votes still in effect.
func (a *Accumulator) Votes() int {
	return a.votes
}

// counterSum totals every counter in the matrix. Test hook.
func (a *Accumulator) counterSum() int {
	sum := 0
	for _, c := range a.counters.data {
		sum += int(c)
	}
	return sum
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
