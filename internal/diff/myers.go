package diff

import (
	"golang.org/x/exp/slices"
)

// matchSequence returns the longest common subsequence of item identities as
// ascending (old, new) index pairs.
func matchSequence(cb Callback, n, m int) []pair {
	if n == 0 || m == 0 {
		return nil
	}

	// Common prefix and suffix are matched without running the search.
	start := 0
	for start < n && start < m && cb.SameItem(start, start) {
		start++
	}
	endOld, endNew := n, m
	for endOld > start && endNew > start && cb.SameItem(endOld-1, endNew-1) {
		endOld--
		endNew--
	}

	pairs := make([]pair, 0, start+(n-endOld))
	for i := 0; i < start; i++ {
		pairs = append(pairs, pair{oldIndex: i, newIndex: i})
	}
	pairs = append(pairs, myers(cb, start, endOld, start, endNew)...)
	for i := endOld; i < n; i++ {
		pairs = append(pairs, pair{oldIndex: i, newIndex: endNew + (i - endOld)})
	}
	return pairs
}

// myers runs the greedy Myers search on old[a0:a1] against new[b0:b1] and
// returns the diagonal (matched) pairs in ascending order.
func myers(cb Callback, a0, a1, b0, b1 int) []pair {
	n := a1 - a0
	m := b1 - b0
	if n == 0 || m == 0 {
		return nil
	}

	maxD := n + m
	offset := maxD + 1
	v := make([]int, 2*maxD+3)

	// trace[d] holds V as it was before step d.
	var trace [][]int

	found := false
	for d := 0; d <= maxD && !found; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}
			y := x - k
			for x < n && y < m && cb.SameItem(a0+x, b0+y) {
				x++
				y++
			}
			v[offset+k] = x
			if x >= n && y >= m {
				found = true
				break
			}
		}
	}

	var pairs []pair
	x, y := n, m
	for d := len(trace) - 1; d >= 0; d-- {
		vd := trace[d]
		k := x - y
		var prevK int
		if k == -d || (k != d && vd[offset+k-1] < vd[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := vd[offset+prevK]
		prevY := prevX - prevK
		for x > prevX && y > prevY && x > 0 && y > 0 {
			x--
			y--
			pairs = append(pairs, pair{oldIndex: a0 + x, newIndex: b0 + y})
		}
		if d > 0 {
			x, y = prevX, prevY
		}
	}

	slices.Reverse(pairs)
	return pairs
}
