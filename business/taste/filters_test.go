package taste

import (
	"testing"

	"applianceReco/domain"

	"github.com/stretchr/testify/assert"
)

func TestFirstInt(t *testing.T) {
	cases := map[string]int{
		"750mm":      750,
		"24 kg":      24,
		"약 24 kg":    24,
		"깊이: 약 700":  700,
		"24.5kg":     24,
		"":           0,
		"no digits":  0,
		"600x850mm":  600,
		"  75  ":     75,
		"용량 12리터 내외": 12,
	}
	for in, want := range cases {
		assert.Equal(t, want, firstInt(in), "input %q", in)
	}
}

func TestHardFilterStudioDepth(t *testing.T) {
	f := NewHardFilter(750, 24)
	studio := domain.Onboarding{HousingType: domain.HousingStudio, HouseholdSize: 2}
	apartment := domain.Onboarding{HousingType: domain.HousingApartment, HouseholdSize: 2}

	deep := domain.Product{ProductID: "p-deep", DepthMM: "900mm"}
	shallow := domain.Product{ProductID: "p-shallow", DepthMM: "750mm"}
	unknown := domain.Product{ProductID: "p-unknown", DepthMM: "측정불가"}

	assert.False(t, f.Allow(deep, studio))
	assert.True(t, f.Allow(shallow, studio))
	assert.True(t, f.Allow(unknown, studio), "unparseable depth never excludes")
	assert.True(t, f.Allow(deep, apartment))
}

func TestHardFilterSingleCapacity(t *testing.T) {
	f := NewHardFilter(750, 24)
	single := domain.Onboarding{HousingType: domain.HousingApartment, HouseholdSize: 1}
	couple := domain.Onboarding{HousingType: domain.HousingApartment, HouseholdSize: 2}

	big := domain.Product{ProductID: "p-big", CapacityKG: "24kg"}
	small := domain.Product{ProductID: "p-small", CapacityKG: "23kg"}
	unknown := domain.Product{ProductID: "p-unknown", CapacityKG: ""}

	assert.False(t, f.Allow(big, single))
	assert.True(t, f.Allow(small, single))
	assert.True(t, f.Allow(unknown, single))
	assert.True(t, f.Allow(big, couple))
}

func TestHardFilterApplyKeepsOrder(t *testing.T) {
	f := NewHardFilter(750, 24)
	studio := domain.Onboarding{HousingType: domain.HousingStudio, HouseholdSize: 2}

	products := []domain.Product{
		{ProductID: "p1", DepthMM: "600mm"},
		{ProductID: "p2", DepthMM: "900mm"},
		{ProductID: "p3", DepthMM: "700mm"},
	}

	kept := f.Apply(products, studio)
	ids := make([]string, len(kept))
	for i, p := range kept {
		ids[i] = p.ProductID
	}
	assert.Equal(t, []string{"p1", "p3"}, ids)
}

func TestHardFilterAddRule(t *testing.T) {
	f := NewHardFilter(750, 24)
	f.AddRule(func(p domain.Product, o domain.Onboarding) bool {
		return p.Status != "discontinued"
	})

	v := domain.Onboarding{HousingType: domain.HousingApartment, HouseholdSize: 2}
	assert.False(t, f.Allow(domain.Product{ProductID: "p", Status: "discontinued"}, v))
	assert.True(t, f.Allow(domain.Product{ProductID: "p", Status: "active"}, v))
}
