package taste

import (
	"crypto/md5"
	"math/big"
	"sort"
	"strings"

	"applianceReco/domain"
)

// TasteCount is the size of the taste id space. Taste ids run 1..TasteCount.
const TasteCount = 1920

// ClassifyTaste maps a normalized onboarding vector onto a stable taste id
// in [1, TasteCount]. The mapping is a hash over a canonical key string, so
// the same answers always land on the same id and near-identical answers
// spread across the space.
func ClassifyTaste(o domain.Onboarding) int {
	key := tasteKey(o)
	sum := md5.Sum([]byte(key))

	n := new(big.Int).SetBytes(sum[:])
	id := int(new(big.Int).Mod(n, big.NewInt(TasteCount)).Int64()) + 1

	if id < 1 {
		id = 1
	}
	if id > TasteCount {
		id = TasteCount
	}
	return id
}

// tasteKey builds the canonical classification key. Buckets deliberately
// coarsen household size and pyung so that small numeric differences do not
// split tastes.
func tasteKey(o domain.Onboarding) string {
	pet := "no_pet"
	if o.HasPet {
		pet = "pet"
	}

	priority := append([]string(nil), o.Priority...)
	sort.Strings(priority)
	priorityKey := truncate(strings.Join(priority, ","), 20)

	spaces := append([]string(nil), o.MainSpace...)
	sort.Strings(spaces)
	spaceKey := truncate(strings.Join(spaces, ","), 30)

	parts := []string{
		o.Vibe,
		householdBucket(o.HouseholdSize),
		o.HousingType,
		pyungBucket(o.Pyung),
		o.BudgetLevel,
		priorityKey,
		spaceKey,
		pet,
		o.Cooking,
		o.Laundry,
		o.Media,
	}
	return strings.Join(parts, "|")
}

func householdBucket(size int) string {
	switch {
	case size <= 1:
		return "1인"
	case size == 2:
		return "2인"
	case size <= 4:
		return "3-4인"
	default:
		return "5인이상"
	}
}

func pyungBucket(pyung int) string {
	switch {
	case pyung <= 10:
		return "10이하"
	case pyung <= 15:
		return "11-15"
	case pyung <= 20:
		return "16-20"
	case pyung <= 30:
		return "21-30"
	case pyung <= 40:
		return "31-40"
	case pyung <= 50:
		return "41-50"
	default:
		return "51이상"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
