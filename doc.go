// Package ppht implements the Probabilistic Progressive Hough Transform
// (PPHT) line-segment detection algorithm with a Poisson-based dynamic
// threshold.
//
// Given a binary raster (every pixel either set or unset) the detector
// returns a set of straight line segments that approximate the set
// pixels. The caller is responsible for decoding bitmaps and deciding
// which pixels are set; the detector consumes a populated State and
// produces segments:
//
//	state, err := ppht.NewState(height, width, seed)
//	...
//	for y := 0; y < height; y++ {
//		for x := 0; x < width; x++ {
//			if isSet(bitmap, x, y) {
//				state.MarkPending(ppht.Pt(x, y))
//			}
//		}
//	}
//	segments, err := ppht.FindSegments(state, ppht.DefaultParams(), seed)
//
// # Algorithm Overview
//
// The Hough transform maps each point (x, y) in image space to the
// sinusoid rho = x*cos(theta) + y*sin(theta) in (theta, rho) space.
// Sinusoids of collinear points intersect at the (theta, rho) pair
// describing their common line, so peaks in a quantized (theta, rho)
// accumulator correspond to lines with many set pixels. Locating those
// peaks reliably is where the classic transform struggles.
//
// Progressive variants sample the set pixels in random order and pause
// whenever a counter crosses a threshold: the corresponding line is
// scanned, and any segment found has its pixels removed from further
// consideration. The probabilistic variant implemented here derives the
// threshold dynamically. Under the null hypothesis that the image is
// uniform random noise, each vote increments one counter per theta
// column, so after v votes the expected value of any counter is
// lambda = v/R, where R is the height of the counter matrix. The
// counters are approximately Poisson distributed, giving
//
//	ln P(n) = n*ln(lambda) - lnGamma(n+1) - lambda
//
// When a counter reaches a value so large that ln P(n) falls below the
// configured threshold, the null hypothesis is rejected and a channel
// scan is triggered along the candidate line.
//
// # Pipeline
//
// One detection run wires four subsystems together:
//
//  1. State owns the pixel status map and the randomized pending queue.
//     Pixels advance monotonically through unset -> pending -> voted ->
//     done; no transition ever leaves done.
//  2. The Accumulator maintains the quantized (theta, rho) vote matrix,
//     applies the Poisson significance test, and selects the best
//     candidate line when the test rejects.
//  3. The channel scanner walks a thick line (Bresenham with the Murphy
//     extension) yielding canonical points and their perpendicular
//     cross-sections; State.Scan collects the longest connected run of
//     set pixels along the channel.
//  4. The postprocessor fuses near-collinear, near-adjacent segments
//     using a k-d disc search over segment endpoints.
//
// # Coordinate System
//
// All coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Angles are measured
// in integer parts per semiturn: Theta = 3600 parts span 180 degrees,
// so one part is 0.05 degrees.
//
// # Determinism
//
// The detector is deterministic for a given input, seed, and parameter
// set. Every randomness draw comes from a PRNG seeded by the caller,
// and candidate ties are broken by a fixed deterministic rule.
// Detection is single-threaded; a State and its Accumulator must not be
// shared across goroutines.
package ppht
