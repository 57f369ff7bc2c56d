package query

// Distinct returns each distinct value of seq once, in order of first occurrence.
func Distinct[T comparable](seq []T) []T {
	return DistinctBy(seq, func(v T) T { return v })
}

// DistinctBy keeps the first element for each distinct key.
func DistinctBy[T any, K comparable](seq []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(seq))
	out := make([]T, 0, len(seq))
	for _, v := range seq {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
