package zset

// JoinPredicate decides whether a left/right element pair matches.
type JoinPredicate[L, R any] func(L, R) bool

// JoinProjection maps a matched pair to an output element.
type JoinProjection[L, R, S any] func(L, R) S

// Join computes the bilinear join of two Z-sets as a nested-loop join:
// every matching pair contributes the product of its weights to the
// projected output element. Bilinearity — Join distributes over Addition in
// each argument — is what makes the operator incrementalizable.
//
// Complexity: O(|left|·|right|) pair evaluations.
func Join[L, R, S comparable](left ZSet[L], right ZSet[R], p JoinPredicate[L, R], f JoinProjection[L, R, S]) ZSet[S] {
	out := ZSet[S]{weights: make(map[S]int)}
	for lv, lw := range left.weights {
		for rv, rw := range right.weights {
			if !p(lv, rv) {
				continue
			}
			v := f(lv, rv)
			w := out.weights[v] + lw*rw
			if w == 0 {
				delete(out.weights, v)
			} else {
				out.weights[v] = w
			}
		}
	}

	return out
}
