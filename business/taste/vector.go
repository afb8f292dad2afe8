package taste

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"applianceReco/domain"
)

// Defaults applied when an onboarding answer is absent. A missing answer is
// filled in silently; a present answer outside its domain is rejected.
const (
	defaultVibe      = domain.VibeModern
	defaultHousehold = 2
	defaultHousing   = domain.HousingApartment
	defaultPyung     = 25
	defaultCooking   = domain.CookingSometimes
	defaultLaundry   = domain.LaundryWeekly
	defaultMedia     = domain.MediaBalanced
	defaultBudget    = domain.BudgetMedium
)

var vibeValues = map[string]bool{
	domain.VibeModern: true,
	domain.VibeCozy:   true,
	domain.VibePop:    true,
	domain.VibeLuxury: true,
}

var housingValues = map[string]bool{
	domain.HousingApartment: true,
	domain.HousingDetached:  true,
	domain.HousingVilla:     true,
	domain.HousingOfficetel: true,
	domain.HousingStudio:    true,
}

// spaceAliases maps UI labels onto canonical space names. Unknown spaces
// are dropped rather than rejected because the front end ships free-form
// labels for some housing layouts.
var spaceAliases = map[string]string{
	domain.SpaceLiving:   domain.SpaceLiving,
	domain.SpaceKitchen:  domain.SpaceKitchen,
	domain.SpaceDressing: domain.SpaceDressing,
	domain.SpaceBedroom:  domain.SpaceBedroom,
	domain.SpaceStudy:    domain.SpaceStudy,
	domain.SpaceLaundry:  domain.SpaceLaundry,
	domain.SpaceVeranda:  domain.SpaceVeranda,
	"세탁실":                domain.SpaceLaundry,
	"베란다":                domain.SpaceVeranda,
	"거실":                 domain.SpaceLiving,
	"주방":                 domain.SpaceKitchen,
	"침실":                 domain.SpaceBedroom,
}

var cookingValues = map[string]bool{
	domain.CookingDaily:     true,
	domain.CookingSometimes: true,
	domain.CookingRarely:    true,
	domain.CookingNever:     true,
}

var laundryValues = map[string]string{
	domain.LaundryDaily:    domain.LaundryDaily,
	domain.LaundryWeekly:   domain.LaundryWeekly,
	domain.LaundryBiweekly: domain.LaundryBiweekly,
	domain.LaundryRarely:   domain.LaundryRarely,
	"never":                domain.LaundryRarely,
}

var mediaValues = map[string]bool{
	domain.MediaGaming:        true,
	domain.MediaOTT:           true,
	domain.MediaEntertainment: true,
	domain.MediaHigh:          true,
	domain.MediaTV:            true,
	domain.MediaBalanced:      true,
	domain.MediaLow:           true,
	domain.MediaMinimal:       true,
	domain.MediaNone:          true,
}

// priorityAliases folds UI variants onto the four canonical priorities.
var priorityAliases = map[string]string{
	domain.PriorityDesign: domain.PriorityDesign,
	domain.PriorityTech:   domain.PriorityTech,
	domain.PriorityEco:    domain.PriorityEco,
	domain.PriorityValue:  domain.PriorityValue,
	"ai_smart":            domain.PriorityTech,
	"energy":              domain.PriorityEco,
	"cost_effective":      domain.PriorityValue,
}

var budgetAliases = map[string]string{
	domain.BudgetLow:     domain.BudgetLow,
	domain.BudgetMedium:  domain.BudgetMedium,
	domain.BudgetHigh:    domain.BudgetHigh,
	domain.BudgetPremium: domain.BudgetPremium,
	domain.BudgetLuxury:  domain.BudgetLuxury,
	"budget":             domain.BudgetLow,
	"standard":           domain.BudgetMedium,
}

// Normalize converts a raw onboarding answer map into the canonical
// 11-dimensional vector. Missing answers get defaults, aliases are folded
// onto canonical values, and numeric boundaries are clamped. A present
// answer with a value outside its domain returns
// domain.ErrInvalidOnboardingInput.
func Normalize(raw map[string]any) (domain.Onboarding, error) {
	var o domain.Onboarding

	vibe, err := normalizeEnum(raw, "vibe", defaultVibe, func(v string) (string, bool) {
		return v, vibeValues[v]
	})
	if err != nil {
		return o, err
	}
	o.Vibe = vibe

	household, err := intField(raw, "household_size", defaultHousehold)
	if err != nil {
		return o, err
	}
	if household <= 0 {
		household = 1
	}
	o.HouseholdSize = household

	housing, err := normalizeEnum(raw, "housing_type", defaultHousing, func(v string) (string, bool) {
		return v, housingValues[v]
	})
	if err != nil {
		return o, err
	}
	o.HousingType = housing

	pyung, err := intField(raw, "pyung", defaultPyung)
	if err != nil {
		return o, err
	}
	if pyung <= 0 {
		pyung = defaultPyung
	}
	o.Pyung = pyung

	o.MainSpace = normalizeSpaces(raw["main_space"])

	if v, ok := raw["has_pet"]; ok && v != nil {
		b, ok := toBool(v)
		if !ok {
			return o, fmt.Errorf("%w: has_pet %v", domain.ErrInvalidOnboardingInput, v)
		}
		o.HasPet = b
	}

	cooking, err := normalizeEnum(raw, "cooking", defaultCooking, func(v string) (string, bool) {
		return v, cookingValues[v]
	})
	if err != nil {
		return o, err
	}
	o.Cooking = cooking

	laundry, err := normalizeEnum(raw, "laundry", defaultLaundry, func(v string) (string, bool) {
		mapped, ok := laundryValues[v]
		return mapped, ok
	})
	if err != nil {
		return o, err
	}
	o.Laundry = laundry

	media, err := normalizeEnum(raw, "media", defaultMedia, func(v string) (string, bool) {
		return v, mediaValues[v]
	})
	if err != nil {
		return o, err
	}
	o.Media = media

	o.Priority = normalizePriorities(raw["priority"])

	budget, err := normalizeEnum(raw, "budget_level", defaultBudget, func(v string) (string, bool) {
		mapped, ok := budgetAliases[v]
		return mapped, ok
	})
	if err != nil {
		return o, err
	}
	o.BudgetLevel = budget

	return o, nil
}

func normalizeEnum(raw map[string]any, key, def string, lookup func(string) (string, bool)) (string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s %v", domain.ErrInvalidOnboardingInput, key, v)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def, nil
	}
	mapped, ok := lookup(s)
	if !ok {
		return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidOnboardingInput, key, s)
	}
	return mapped, nil
}

func intField(raw map[string]any, key string, def int) (int, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return def, nil
		}
		parsed, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidOnboardingInput, key, n)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: %s %v", domain.ErrInvalidOnboardingInput, key, v)
	}
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(b)))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// normalizeSpaces sorts and deduplicates the main spaces so that two
// answer sets differing only in order classify to the same taste. An empty
// or all-unknown list falls back to living.
func normalizeSpaces(v any) []string {
	seen := map[string]bool{}
	var out []string
	for _, raw := range toStringSlice(v) {
		s, ok := spaceAliases[strings.ToLower(strings.TrimSpace(raw))]
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return []string{domain.SpaceLiving}
	}
	sort.Strings(out)
	return out
}

// normalizePriorities keeps answer order (the first entry is the primary
// priority) while dropping duplicates and unknown values.
func normalizePriorities(v any) []string {
	seen := map[string]bool{}
	var out []string
	for _, raw := range toStringSlice(v) {
		p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(raw))]
		if !ok || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return []string{domain.PriorityValue}
	}
	return out
}

func toStringSlice(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(list) == "" {
			return nil
		}
		return strings.Split(list, ",")
	default:
		return nil
	}
}
