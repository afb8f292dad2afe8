package taste

import (
	"testing"

	"applianceReco/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCategoryBounds(t *testing.T) {
	r := DefaultRegistry()
	vectors := []domain.Onboarding{studioSingleVector(), familyKitchenVector(), luxuryTechVector()}
	for _, v := range vectors {
		for _, name := range r.Names() {
			score, err := r.ScoreCategory(name, v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
}

func TestScoreCategoryUnknown(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.ScoreCategory("없는카테고리", familyKitchenVector())
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestLargeCapacityBonusForFamilies(t *testing.T) {
	r := DefaultRegistry()
	v := familyKitchenVector()

	fridge, err := r.ScoreCategory("냉장고", v)
	require.NoError(t, err)
	induction, err := r.ScoreCategory("인덕션", v)
	require.NoError(t, err)

	// same weight table, but the fridge carries the large-capacity bonus
	assert.InDelta(t, 12.0, fridge-induction, 0.001)
}

func TestBrandLineBonusForDesignPriority(t *testing.T) {
	r := DefaultRegistry()
	v := luxuryTechVector() // priority [tech, design]

	objet, err := r.ScoreCategory("OBJET", v)
	require.NoError(t, err)
	aihome, err := r.ScoreCategory("AIHome", v)
	require.NoError(t, err)
	aircon, err := r.ScoreCategory("에어컨", v)
	require.NoError(t, err)

	// brand line gets +15 for design priority, AIHome +15 for tech priority
	assert.InDelta(t, 15.0, objet-aircon, 0.001)
	assert.InDelta(t, 15.0, aihome-aircon, 0.001)
}

func TestSinglePenaltyOnLargeItems(t *testing.T) {
	r := DefaultRegistry()
	v := familyKitchenVector()
	v.HouseholdSize = 1
	v.MainSpace = []string{domain.SpaceKitchen, domain.SpaceLiving, domain.SpaceLaundry}
	v.Laundry = domain.LaundryWeekly

	tower, err := r.ScoreCategory("워시타워", v)
	require.NoError(t, err)
	washer, err := r.ScoreCategory("세탁기", v)
	require.NoError(t, err)

	// both LIVING group; the tower eats the -20 single-household penalty
	assert.Less(t, tower, washer)
}

func TestMediaBoostFavorsTVForHeavyWatchers(t *testing.T) {
	r := DefaultRegistry()

	heavy := luxuryTechVector()
	light := luxuryTechVector()
	light.Media = domain.MediaBalanced

	tvHeavy, err := r.ScoreCategory("TV", heavy)
	require.NoError(t, err)
	tvLight, err := r.ScoreCategory("TV", light)
	require.NoError(t, err)

	assert.Greater(t, tvHeavy, tvLight)
}

func TestAdjustedWeightsSumToOne(t *testing.T) {
	vectors := []domain.Onboarding{studioSingleVector(), familyKitchenVector(), luxuryTechVector()}
	groups := []Group{GroupTV, GroupKitchen, GroupLiving, GroupAir}
	for _, v := range vectors {
		for _, g := range groups {
			w := adjustedWeights(g, v)
			var sum float64
			for _, x := range w {
				sum += x
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "group %s", g)
		}
	}
}
