package recommend

import (
	"math"
	"sort"

	"go.trai.ch/propstore/internal/core/domain"
)

// Signal weights of the combined co-purchase score.
const (
	jaccardWeight  = 0.3
	affinityWeight = 0.4
	pairwiseWeight = 0.3
)

type orderSet map[int64]struct{}

func (s orderSet) intersect(other orderSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for id := range small {
		if _, ok := large[id]; ok {
			n++
		}
	}
	return n
}

// primaryCategory returns the most frequent non-empty category of items.
// Ties go to the category that occurs first in the cart.
func primaryCategory(items []domain.CartItem) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, seen := counts[item.Category]; !seen {
			order = append(order, item.Category)
		}
		counts[item.Category]++
	}

	best, bestCount := "", 0
	for _, cat := range order {
		if counts[cat] > bestCount {
			best, bestCount = cat, counts[cat]
		}
	}
	return best, bestCount > 0
}

// distinctProducts returns the product ids of items without duplicates, in cart order.
func distinctProducts(items []domain.CartItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// buildOrderSets indexes co-purchase rows by product.
func buildOrderSets(rows []domain.OrderLine) map[int64]orderSet {
	sets := make(map[int64]orderSet)
	for _, row := range rows {
		set, ok := sets[row.ProductID]
		if !ok {
			set = make(orderSet)
			sets[row.ProductID] = set
		}
		set[row.OrderID] = struct{}{}
	}
	return sets
}

// scoreCandidates computes the raw co-purchase score of every candidate.
func scoreCandidates(candidates []domain.Product, cartIDs []int64, sets map[int64]orderSet) []domain.ScoredCandidate {
	cartOrders := make(orderSet)
	for _, id := range cartIDs {
		for order := range sets[id] {
			cartOrders[order] = struct{}{}
		}
	}

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, product := range candidates {
		orders := sets[product.ID]
		if len(orders) == 0 {
			scored = append(scored, domain.ScoredCandidate{Product: product})
			continue
		}

		intersection := cartOrders.intersect(orders)

		var jaccard float64
		if union := len(cartOrders) + len(orders) - intersection; union > 0 {
			jaccard = float64(intersection) / float64(union)
		}

		var affinity float64
		for _, id := range cartIDs {
			own := sets[id]
			if len(own) == 0 {
				continue
			}
			affinity += float64(own.intersect(orders)) / float64(len(own))
		}

		var pairwise float64
		if len(cartOrders) > 0 {
			pairwise = float64(intersection) / float64(len(cartOrders))
		}

		scored = append(scored, domain.ScoredCandidate{
			Product: product,
			Score:   jaccardWeight*jaccard + affinityWeight*affinity + pairwiseWeight*pairwise,
		})
	}
	return scored
}

// normalize rescales scores to population z-scores. Scores are left as
// they are when there is a single candidate or all scores are equal.
func normalize(scored []domain.ScoredCandidate) {
	if len(scored) < 2 || allEqual(scored) {
		return
	}

	n := float64(len(scored))
	var sum float64
	for _, s := range scored {
		sum += s.Score
	}
	mean := sum / n

	var variance float64
	for _, s := range scored {
		d := s.Score - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / n)
	if stddev == 0 {
		return
	}

	for i := range scored {
		scored[i].Score = (scored[i].Score - mean) / stddev
	}
}

// allEqual guards against a rounding-error stddev when every score is the same.
func allEqual(scored []domain.ScoredCandidate) bool {
	for _, s := range scored[1:] {
		if s.Score != scored[0].Score {
			return false
		}
	}
	return true
}

// rank sorts by descending score, keeping fetch order among equal scores,
// and truncates to limit.
func rank(scored []domain.ScoredCandidate, limit int) []domain.ScoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
