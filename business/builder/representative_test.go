package builder

import (
	"testing"

	"applianceReco/business/taste"
	"applianceReco/domain"

	"github.com/stretchr/testify/assert"
)

func TestRepresentativeVectorDeterministic(t *testing.T) {
	for _, id := range []int{1, 2, 77, 960, taste.TasteCount} {
		assert.Equal(t, RepresentativeVector(id), RepresentativeVector(id))
	}
}

func TestRepresentativeVectorSpotValues(t *testing.T) {
	v1 := RepresentativeVector(1)
	assert.Equal(t, domain.VibeModern, v1.Vibe)
	assert.Equal(t, 1, v1.HouseholdSize)
	assert.Equal(t, domain.HousingApartment, v1.HousingType)
	assert.Equal(t, 20, v1.Pyung)
	assert.True(t, v1.HasPet)
	assert.Equal(t, []string{domain.PriorityDesign}, v1.Priority)

	v2 := RepresentativeVector(2)
	assert.Equal(t, domain.VibeCozy, v2.Vibe)
	assert.Equal(t, 2, v2.HouseholdSize)
	assert.False(t, v2.HasPet)
	assert.Equal(t, 21, v2.Pyung)
}

func TestRepresentativeVectorAlwaysValid(t *testing.T) {
	for id := 1; id <= taste.TasteCount; id += 37 {
		v := RepresentativeVector(id)
		assert.NotEmpty(t, v.Vibe)
		assert.GreaterOrEqual(t, v.HouseholdSize, 1)
		assert.GreaterOrEqual(t, v.Pyung, 20)
		assert.NotEmpty(t, v.MainSpace)
		assert.NotEmpty(t, v.Priority)
		assert.NotEmpty(t, v.BudgetLevel)
	}
}

func TestDescribe(t *testing.T) {
	v := RepresentativeVector(3)
	assert.Equal(t, "Taste 3: pop, 3인 가구", Describe(3, v))
}
