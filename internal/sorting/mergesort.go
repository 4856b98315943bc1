package sorting

import "go.uber.org/zap"

// Sort returns the lines reordered according to the policy.
//
// The engine is a recursive merge sort over a copy of the input; the caller's
// slice is never mutated. Guarantees:
//   - The output is a permutation of the input (same length, same multiset).
//   - Adjacent output elements x, y satisfy !policy.Before(y, x).
//   - The sort is stable: equal-ranked lines keep their input order.
//
// An invalid policy is a programming error on the caller's side; the engine
// logs a warning and falls back to AlphaAscending rather than aborting.
func Sort(lines []string, policy Policy, log *zap.Logger) []string {
	if !policy.IsValid() {
		if log != nil {
			log.Warn("unknown ordering policy, falling back to alpha-asc",
				zap.Int("policy", int(policy)))
		}
		policy = AlphaAscending
	}

	out := make([]string, len(lines))
	copy(out, lines)
	if len(out) > 1 {
		mergeSort(out, 0, len(out)-1, policy)
	}
	return out
}

// mergeSort sorts out[upper..lower] inclusive. The midpoint split gives the
// lower half the smaller share on odd counts.
func mergeSort(out []string, upper, lower int, policy Policy) {
	if upper >= lower {
		return
	}
	mid := upper + (lower-upper)/2
	mergeSort(out, upper, mid, policy)
	mergeSort(out, mid+1, lower, policy)
	merge(out, upper, mid, lower, policy)
}

// merge combines the sorted halves out[upper..mid] and out[mid+1..lower].
//
// Ties take from the left half, which is what makes the whole sort stable.
func merge(out []string, upper, mid, lower int, policy Policy) {
	left := make([]string, mid-upper+1)
	right := make([]string, lower-mid)
	copy(left, out[upper:mid+1])
	copy(right, out[mid+1:lower+1])

	i, j, k := 0, 0, upper
	for i < len(left) && j < len(right) {
		if policy.Before(right[j], left[i]) {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		out[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		out[k] = right[j]
		j++
		k++
	}
}
