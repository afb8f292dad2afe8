package taste

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectedNames(selected []SelectedCategory) []string {
	names := make([]string, len(selected))
	for i, c := range selected {
		names[i] = c.Name
	}
	return names
}

func TestSelectCutsAtSharpDrop(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{
		"A": 90, "B": 85, "C": 30, "D": 28, "E": 27,
	}

	// diffs 5, 55, 2, 1: threshold = max(2*15.75, 0.2*90) = 31.5,
	// first drop at index 1 keeps the top two
	selected := s.Select(scores)
	assert.Equal(t, []string{"A", "B"}, selectedNames(selected))
}

func TestSelectFallbackOnFlatDistribution(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{
		"A": 50, "B": 48, "C": 46, "D": 44,
	}

	// no drop clears the threshold; fallback keeps everything above
	// 0.3 * avg(top 3) = 14.4
	selected := s.Select(scores)
	assert.Equal(t, []string{"A", "B", "C", "D"}, selectedNames(selected))
}

func TestSelectOrdersByScoreThenName(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{
		"나": 80, "가": 80, "다": 78,
	}
	selected := s.Select(scores)
	require.GreaterOrEqual(t, len(selected), 2)
	assert.Equal(t, "가", selected[0].Name)
	assert.Equal(t, "나", selected[1].Name)
}

func TestSelectMinimumTwo(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{"A": 55, "B": 0, "C": 0}

	// a single positive score still brings a runner-up
	selected := s.Select(scores)
	require.Len(t, selected, 2)
	assert.Equal(t, "A", selected[0].Name)
}

func TestSelectMaximumTen(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{}
	for i := 0; i < 15; i++ {
		scores[fmt.Sprintf("cat%02d", i)] = 60 - float64(i)
	}

	selected := s.Select(scores)
	assert.Len(t, selected, MaxSelected)
}

func TestSelectAllZero(t *testing.T) {
	s := DefaultSelector()
	scores := map[string]float64{"A": 0, "B": 0, "C": 0}

	selected := s.Select(scores)
	assert.Len(t, selected, MinSelected)
}

func TestSelectOnRealVectors(t *testing.T) {
	r := DefaultRegistry()
	s := DefaultSelector()

	vectors := map[string]func() []SelectedCategory{
		"studio_single":  func() []SelectedCategory { return s.Select(r.ScoreCategories(studioSingleVector())) },
		"family_kitchen": func() []SelectedCategory { return s.Select(r.ScoreCategories(familyKitchenVector())) },
		"luxury_tech":    func() []SelectedCategory { return s.Select(r.ScoreCategories(luxuryTechVector())) },
	}
	for name, run := range vectors {
		selected := run()
		assert.GreaterOrEqual(t, len(selected), MinSelected, name)
		assert.LessOrEqual(t, len(selected), MaxSelected, name)
		for i := 1; i < len(selected); i++ {
			assert.GreaterOrEqual(t, selected[i-1].Score, selected[i].Score, name)
		}
		for _, c := range selected {
			assert.Greater(t, c.Score, 0.0, "%s: selected %s", name, c.Name)
		}
	}
}

func TestSelectFamilyKitchenKeepsKitchenCategories(t *testing.T) {
	r := DefaultRegistry()
	s := DefaultSelector()

	selected := selectedNames(s.Select(r.ScoreCategories(familyKitchenVector())))
	for _, want := range []string{"식기세척기", "오븐", "전자레인지", "냉장고"} {
		assert.Contains(t, selected, want)
	}
}
