package taste

import "sort"

// Selection bounds. Every taste gets at least MinSelected categories when
// that many exist, and never more than MaxSelected.
const (
	MinSelected = 2
	MaxSelected = 10
)

// SelectedCategory pairs a category name with its fit score.
type SelectedCategory struct {
	Name  string
	Score float64
}

// Selector picks how many categories a taste gets based on the shape of
// its score distribution instead of a fixed top-N.
type Selector struct {
	// DiffFactor and MaxShare form the drop threshold:
	// max(DiffFactor * average gap, MaxShare * top score).
	DiffFactor float64
	MaxShare   float64
	// FallbackShare keeps scores above this share of the top-3 average
	// when no sharp drop exists.
	FallbackShare float64
}

func DefaultSelector() Selector {
	return Selector{DiffFactor: 2.0, MaxShare: 0.2, FallbackShare: 0.3}
}

// Select orders the scored categories by descending score (name as the tie
// break) and cuts the list at the first sharp drop. Without a sharp drop
// it keeps everything above the fallback share, then clamps to
// [MinSelected, MaxSelected].
func (s Selector) Select(scores map[string]float64) []SelectedCategory {
	ranked := make([]SelectedCategory, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, SelectedCategory{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	var positive []float64
	for _, c := range ranked {
		if c.Score > 0 {
			positive = append(positive, c.Score)
		}
	}

	var selected []SelectedCategory
	switch {
	case len(positive) > 1:
		selected = s.cutAtDrop(ranked, positive)
	case len(positive) == 1:
		selected = ranked[:1]
	default:
		selected = nil
	}

	if len(selected) < MinSelected && len(ranked) >= MinSelected {
		selected = ranked[:MinSelected]
	}
	if len(selected) > MaxSelected {
		selected = selected[:MaxSelected]
	}

	out := make([]SelectedCategory, len(selected))
	copy(out, selected)
	return out
}

func (s Selector) cutAtDrop(ranked []SelectedCategory, positive []float64) []SelectedCategory {
	maxScore := positive[0]

	var diffSum float64
	diffs := make([]float64, len(positive)-1)
	for i := 0; i < len(positive)-1; i++ {
		diffs[i] = positive[i] - positive[i+1]
		diffSum += diffs[i]
	}
	avgDiff := diffSum / float64(len(diffs))
	threshold := s.DiffFactor * avgDiff
	if share := s.MaxShare * maxScore; share > threshold {
		threshold = share
	}

	// The drop is never taken before position 1 so a dominant leader still
	// brings company.
	for i := 1; i < len(diffs); i++ {
		if diffs[i] >= threshold {
			return ranked[:i+1]
		}
	}

	n := len(positive)
	if n > 3 {
		n = 3
	}
	var topSum float64
	for i := 0; i < n; i++ {
		topSum += positive[i]
	}
	floor := s.FallbackShare * (topSum / float64(n))

	var kept []SelectedCategory
	for _, c := range ranked {
		if c.Score > 0 && c.Score >= floor {
			kept = append(kept, c)
		}
	}
	if len(kept) > MaxSelected {
		kept = kept[:MaxSelected]
	} else if len(kept) < MinSelected && len(ranked) >= MinSelected {
		kept = ranked[:MinSelected]
	}
	return kept
}
