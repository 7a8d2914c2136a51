package match

import "container/heap"

// worstFirst is a min-heap under ranking order: the root is the result that
// would be dropped first.
type worstFirst []MatchResult

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x any) { *h = append(*h, x.(MatchResult)) }

func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// selectHeap keeps the k best positive results in a single pass. The
// returned slice is fully sorted.
func selectHeap(scored []MatchResult, k int) []MatchResult {
	if k <= 0 {
		return selectSort(scored, k)
	}
	h := make(worstFirst, 0, k)
	for _, r := range scored {
		if r.Score <= 0 {
			continue
		}
		if h.Len() < k {
			heap.Push(&h, r)
			continue
		}
		if ranksBefore(r, h[0]) {
			h[0] = r
			heap.Fix(&h, 0)
		}
	}
	out := []MatchResult(h)
	SortResults(out)
	return out
}

// selectSort filters positive results, sorts them and truncates to k
// (k <= 0 keeps everything).
func selectSort(scored []MatchResult, k int) []MatchResult {
	out := make([]MatchResult, 0, len(scored))
	for _, r := range scored {
		if r.Score > 0 {
			out = append(out, r)
		}
	}
	SortResults(out)
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
