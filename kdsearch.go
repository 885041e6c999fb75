package ppht

// kdSearch finds the intersection of a point-keyed slice and the closed
// disc centered at p with the given radius, using a modified k-d tree
// search performed directly on the slice.
//
// The slice is partitioned in place around its median along the current
// axis (x first, alternating at each recursion level), so membership is
// preserved but order is not: callers must not depend on slice order
// across calls. Matches are appended to out and returned; the order of
// the matches is unspecified.
func kdSearch[T any](items []T, key func(T) Point, p Point, limit int, out []T) []T {
	return kdSearchDim(items, key, p, limit, axisX, out)
}

func kdSearchDim[T any](items []T, key func(T) Point, p Point, limit int, dim axis, out []T) []T {
	if len(items) == 0 {
		return out
	}

	// Split the points into approximately equal halves with the plane
	// perpendicular to dim through the median element. Points on the
	// plane itself may land on either side.
	median := len(items) / 2
	nthElement(items, median, func(a, b T) bool {
		return comp(key(a), dim) < comp(key(b), dim)
	})

	mid := key(items[median])

	if p.Sub(mid).LengthSquared() <= limit*limit {
		out = append(out, items[median])
	}

	// The signed distance from the query point to the splitting plane
	// decides which halves can still contain matches: the disc reaches
	// the "before" side iff dPlane <= limit and the "after" side iff
	// dPlane >= -limit.
	dPlane := comp(p, dim) - comp(mid, dim)

	if dPlane <= limit {
		out = kdSearchDim(items[:median], key, p, limit, dim.other(), out)
	}
	if dPlane >= -limit {
		out = kdSearchDim(items[median+1:], key, p, limit, dim.other(), out)
	}

	return out
}

// nthElement partially sorts s so that s[k] is the element that would
// occupy position k in a full sort by less, with everything before it
// no greater and everything after it no less. Iterative quickselect
// with a middle pivot; deterministic for identical input.
func nthElement[T any](s []T, k int, less func(a, b T) bool) {
	for len(s) > 1 {
		pivot := s[len(s)/2]

		// Three-way partition around the pivot value.
		lo, mid, hi := 0, 0, len(s)
		for mid < hi {
			switch {
			case less(s[mid], pivot):
				s[lo], s[mid] = s[mid], s[lo]
				lo++
				mid++
			case less(pivot, s[mid]):
				hi--
				s[mid], s[hi] = s[hi], s[mid]
			default:
				mid++
			}
		}

		switch {
		case k < lo:
			s = s[:lo]
		case k < mid:
			return // k lands inside the run equal to the pivot
		default:
			s = s[mid:]
			k -= mid
		}
	}
}
