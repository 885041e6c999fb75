package ppht

import "math"

// fuseRec is a mutable segment record during fusion. Merged-away
// records are marked dead rather than removed so that stale pool
// entries can be recognized.
type fuseRec struct {
	a, b Point
	dead bool
}

// directed is a one-orientation view of a segment in the auxiliary
// search list. Storing both orientations of every segment allows
// endpoint-indexed search without branching on direction; the view is
// keyed by its tail.
type directed struct {
	tail, head Point
	rec        *fuseRec
}

// FuseSegments reduces a segment list by fusing near-collinear,
// near-adjacent segments. gapLimit is the pixel radius of the endpoint
// neighborhoods; angleTolerance is the maximum deviation from a
// straight join in parts of MaxTheta, so joins bend by at most
// angleTolerance * 0.05 degrees.
//
// For each segment (t, h) the head h is extended repeatedly: a k-d
// search finds directed views whose tail lies within gapLimit of h, and
// a candidate (t', h') merges when the hinge angle at the midpoint
// m = (h + t')/2, measured between t-m and h'-m, is close enough to a
// straight angle. A merge adopts h' as the new head and removes the
// merged segment, in both orientations, from further consideration.
// Both ends are extended by swapping the endpoints between passes.
//
// Every merge removes one segment, so the procedure terminates after at
// most len(segments) - 1 merges. The order of the surviving segments is
// not preserved.
func FuseSegments(segments []Segment, gapLimit, angleTolerance int) []Segment {
	// The join is "straight enough" when the cosine of the hinge angle
	// is at most -cos(tolerance), i.e. the angle is within tolerance
	// of 180 degrees.
	threshold := -math.Cos(float64(angleTolerance) * math.Pi / MaxTheta)

	recs := make([]*fuseRec, len(segments))
	for i, s := range segments {
		recs[i] = &fuseRec{a: s.A, b: s.B}
	}

	var pool, hits []directed

	for _, r := range recs {
		if r.dead {
			continue
		}

		pool = pool[:0]
		for _, other := range recs {
			if other == r || other.dead {
				continue
			}
			pool = append(pool,
				directed{tail: other.a, head: other.b, rec: other},
				directed{tail: other.b, head: other.a, rec: other})
		}

		for pass := 0; pass < 2; pass++ {
			for extended := true; extended; {
				extended = false

				hits = kdSearch(pool, directed.key, r.b, gapLimit, hits[:0])

				for _, nb := range hits {
					if nb.rec.dead {
						continue
					}
					if !straightEnough(r.a, r.b, nb.tail, nb.head, threshold) {
						continue
					}

					// Merge: the fused segment runs a - b ~ t' - h'.
					r.b = nb.head
					nb.rec.dead = true

					pool = compactPool(pool)
					extended = true
					break
				}
			}

			// Extend the other end on the next pass. Two swaps restore
			// the original orientation.
			r.a, r.b = r.b, r.a
		}
	}

	fused := segments[:0]
	for _, r := range recs {
		if !r.dead {
			fused = append(fused, Segment{r.a, r.b})
		}
	}

	return fused
}

// key returns the search key of a directed view.
func (d directed) key() Point {
	return d.tail
}

// straightEnough reports whether joining (t, h) to (t2, h2) at the
// midpoint of h and t2 bends by no more than the tolerated angle.
// Degenerate hinges, where an endpoint coincides with the midpoint, never
// qualify.
func straightEnough(t, h, t2, h2 Point, threshold float64) bool {
	m := h.Add(t2).Shrink(2)

	v1 := t.Sub(m)
	v2 := h2.Sub(m)

	cos := float64(v1.Dot(v2)) / (v1.Length() * v2.Length())

	return cos <= threshold
}

// compactPool strips views of merged-away segments.
func compactPool(pool []directed) []directed {
	live := pool[:0]
	for _, d := range pool {
		if !d.rec.dead {
			live = append(live, d)
		}
	}
	return live
}
