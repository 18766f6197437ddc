package searcher

import "math"

// uct1 scores a child under the UCT1 rule:
//
//	q/n + c*sqrt(2*ln(N)/n)
//
// The caller folds the constant part into normalizer = 2*c^2*ln(N), so the
// exploration term is sqrt(normalizer/n). An unvisited child scores +Inf
// and always wins selection, which also keeps n out of a zero division.
func uct1(rewards, visits, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(normalizer/visits)
}

func normalizer(c, parentVisits float64) float64 {
	return 2 * c * c * math.Log(parentVisits)
}
