package common

// UnknownStr is the fallback name for enum values outside their declared set.
const UnknownStr = "unknown"

// Pairs splits s into consecutive two-element chunks.
// A trailing element without a partner is dropped.
func Pairs[S ~[]E, E any](s S) [][2]E {
	out := make([][2]E, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		out = append(out, [2]E{s[i], s[i+1]})
	}

	return out
}

// MinFunc returns the smallest key(e) over s and true, or the zero value and
// false if s is empty.
func MinFunc[S ~[]E, E any](s S, key func(E) uint64) (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}

	best := key(s[0])
	for _, e := range s[1:] {
		best = min(best, key(e))
	}

	return best, true
}
