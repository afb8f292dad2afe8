package taste

import (
	"fmt"

	"applianceReco/domain"
)

// Feature weight keys. Each category group weights a subset of these.
const (
	ftResolution   = "resolution"
	ftBrightness   = "brightness"
	ftRefreshRate  = "refresh_rate"
	ftPanelType    = "panel_type"
	ftPower        = "power_consumption"
	ftSize         = "size"
	ftPriceMatch   = "price_match"
	ftFeatures     = "features"
	ftDesign       = "design"
	ftCapacity     = "capacity"
	ftEnergy       = "energy_efficiency"
	ftAudioQuality = "audio_quality"
	ftConnectivity = "connectivity"
)

// baseWeights per category group. Each table sums to 1; adjustments skew
// it and the scorer renormalizes before use.
var baseWeights = map[Group]map[string]float64{
	GroupTV: {
		ftResolution:  0.15,
		ftBrightness:  0.10,
		ftRefreshRate: 0.10,
		ftPanelType:   0.10,
		ftPower:       0.10,
		ftSize:        0.10,
		ftPriceMatch:  0.15,
		ftFeatures:    0.10,
		ftDesign:      0.10,
	},
	GroupKitchen: {
		ftCapacity:    0.20,
		ftEnergy:      0.15,
		ftFeatures:    0.15,
		ftSize:        0.10,
		ftPriceMatch:  0.15,
		ftDesign:      0.15,
		ftResolution:  0.05,
		ftRefreshRate: 0.05,
	},
	GroupLiving: {
		ftAudioQuality: 0.20,
		ftConnectivity: 0.15,
		ftPower:        0.10,
		ftSize:         0.10,
		ftPriceMatch:   0.15,
		ftFeatures:     0.15,
		ftDesign:       0.10,
		ftResolution:   0.05,
	},
}

// defaultWeights covers the groups without a dedicated table (AIR, AI and
// the brand lines).
var defaultWeights = map[string]float64{
	ftPriceMatch: 0.25,
	ftFeatures:   0.20,
	ftEnergy:     0.15,
	ftSize:       0.15,
	ftDesign:     0.15,
	ftCapacity:   0.10,
}

// ScoreCategories computes the per-category fit scores for the vector.
// Ill-suited categories score 0 without entering the weighted pass.
func (r *Registry) ScoreCategories(o domain.Onboarding) map[string]float64 {
	illSuited := r.IllSuited(o)
	out := make(map[string]float64, len(r.names))
	for _, name := range r.names {
		if illSuited[name] {
			out[name] = 0
			continue
		}
		score, err := r.ScoreCategory(name, o)
		if err != nil {
			continue
		}
		out[name] = score
	}
	return out
}

// ScoreCategory computes the weighted fit score in [0, 100] for one
// category, ignoring ill-suited rules.
func (r *Registry) ScoreCategory(name string, o domain.Onboarding) (float64, error) {
	info, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, name)
	}

	weights := adjustedWeights(info.Group, o)

	var score float64
	for feature, w := range weights {
		score += w * affinity(feature, o)
	}
	score *= 100

	score += r.bonus(info, o)
	score -= r.penalty(info, o)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

// adjustedWeights copies the group's base table, applies the six vector
// adjustment passes and renormalizes the result to sum 1. Multipliers only
// touch keys the group actually weights.
func adjustedWeights(group Group, o domain.Onboarding) map[string]float64 {
	base, ok := baseWeights[group]
	if !ok {
		base = defaultWeights
	}
	w := make(map[string]float64, len(base))
	for k, v := range base {
		w[k] = v
	}

	adjustVibe(w, o)
	adjustPriority(w, group, o)
	adjustBudget(w, o)
	adjustHousehold(w, group, o)
	adjustPyung(w, group, o)
	adjustHabits(w, group, o)

	var sum float64
	for _, v := range w {
		sum += v
	}
	if sum > 0 {
		for k := range w {
			w[k] /= sum
		}
	}
	return w
}

func mul(w map[string]float64, key string, factor float64) {
	if _, ok := w[key]; ok {
		w[key] *= factor
	}
}

func adjustVibe(w map[string]float64, o domain.Onboarding) {
	switch o.Vibe {
	case domain.VibeModern:
		mul(w, ftDesign, 1.3)
		mul(w, ftFeatures, 1.2)
		mul(w, ftPriceMatch, 0.8)
	case domain.VibeCozy:
		mul(w, ftPriceMatch, 1.3)
		mul(w, ftPower, 1.2)
		mul(w, ftDesign, 0.9)
	case domain.VibeLuxury:
		mul(w, ftDesign, 1.5)
		mul(w, ftFeatures, 1.3)
		mul(w, ftPriceMatch, 0.6)
	}
}

func adjustPriority(w map[string]float64, group Group, o domain.Onboarding) {
	switch o.PrimaryPriority() {
	case domain.PriorityDesign:
		mul(w, ftDesign, 1.5)
		if group == GroupTV {
			mul(w, ftPanelType, 1.2)
		}
	case domain.PriorityTech:
		mul(w, ftFeatures, 1.5)
		if group == GroupTV {
			mul(w, ftResolution, 1.3)
			mul(w, ftRefreshRate, 1.3)
		}
	case domain.PriorityValue:
		mul(w, ftPriceMatch, 1.5)
		mul(w, ftEnergy, 1.2)
		mul(w, ftDesign, 0.8)
	case domain.PriorityEco:
		mul(w, ftEnergy, 1.5)
		mul(w, ftPower, 1.5)
		mul(w, ftPriceMatch, 1.1)
	}
}

func adjustBudget(w map[string]float64, o domain.Onboarding) {
	switch {
	case o.BudgetLevel == domain.BudgetLow:
		mul(w, ftPriceMatch, 1.5)
		mul(w, ftDesign, 0.7)
		mul(w, ftFeatures, 0.8)
	case o.HighBudget():
		mul(w, ftDesign, 1.3)
		mul(w, ftFeatures, 1.3)
		mul(w, ftPriceMatch, 0.7)
	}
}

func adjustHousehold(w map[string]float64, group Group, o domain.Onboarding) {
	switch {
	case o.HouseholdSize >= 4:
		if group == GroupKitchen {
			mul(w, ftCapacity, 1.5)
			mul(w, ftFeatures, 1.2)
		}
		if group == GroupLiving {
			mul(w, ftSize, 1.2)
		}
	case o.HouseholdSize == 1:
		if group == GroupKitchen {
			mul(w, ftCapacity, 0.7)
			mul(w, ftSize, 1.3)
		}
		if group == GroupTV || group == GroupLiving {
			mul(w, ftSize, 0.9)
		}
	}
}

func adjustPyung(w map[string]float64, group Group, o domain.Onboarding) {
	switch {
	case o.Pyung <= 20:
		switch group {
		case GroupTV, GroupLiving:
			mul(w, ftSize, 0.8)
		case GroupKitchen:
			mul(w, ftSize, 1.3)
			mul(w, ftCapacity, 0.8)
		}
	case o.Pyung >= 40:
		switch group {
		case GroupTV, GroupLiving:
			mul(w, ftSize, 1.3)
		case GroupKitchen:
			mul(w, ftCapacity, 1.3)
		}
	}
}

func adjustHabits(w map[string]float64, group Group, o domain.Onboarding) {
	if group == GroupKitchen {
		switch o.Cooking {
		case domain.CookingDaily:
			mul(w, ftFeatures, 1.3)
			mul(w, ftCapacity, 1.2)
		case domain.CookingRarely, domain.CookingNever:
			mul(w, ftCapacity, 0.8)
			mul(w, ftPriceMatch, 1.2)
		}
	}

	if group == GroupLiving && o.Laundry == domain.LaundryDaily {
		mul(w, ftFeatures, 1.2)
		mul(w, ftCapacity, 1.2)
	}

	if group == GroupTV {
		switch o.Media {
		case domain.MediaGaming, domain.MediaOTT, domain.MediaHigh, domain.MediaEntertainment:
			mul(w, ftResolution, 1.4)
			mul(w, ftBrightness, 1.3)
			mul(w, ftRefreshRate, 1.3)
		case domain.MediaLow, domain.MediaMinimal, domain.MediaNone:
			mul(w, ftPriceMatch, 1.2)
			mul(w, ftResolution, 0.8)
		}
	}
}

// affinity estimates in [0, 1] how well the vector matches the feature
// dimension. These are vector-only estimates; product-level scoring lives
// in the external scorer.
func affinity(feature string, o domain.Onboarding) float64 {
	switch feature {
	case ftPriceMatch:
		switch o.BudgetLevel {
		case domain.BudgetLow:
			return 1.0
		case domain.BudgetMedium:
			return 0.8
		case domain.BudgetHigh:
			return 0.5
		default:
			return 0.3
		}
	case ftDesign:
		var a float64
		switch o.Vibe {
		case domain.VibeLuxury:
			a = 1.0
		case domain.VibeModern:
			a = 0.9
		case domain.VibePop:
			a = 0.7
		default:
			a = 0.6
		}
		if o.HasPriority(domain.PriorityDesign) {
			a += 0.1
		}
		if a > 1.0 {
			a = 1.0
		}
		return a
	case ftFeatures:
		a := 0.6
		if o.HasPriority(domain.PriorityTech) {
			a = 0.9
		}
		switch o.Media {
		case domain.MediaGaming, domain.MediaOTT, domain.MediaHigh:
			a += 0.1
		}
		if a > 1.0 {
			a = 1.0
		}
		return a
	case ftEnergy:
		if o.HasPriority(domain.PriorityEco) {
			return 1.0
		}
		return 0.5
	case ftPower:
		if o.HasPriority(domain.PriorityEco) {
			return 0.9
		}
		return 0.5
	case ftCapacity:
		var a float64
		switch {
		case o.HouseholdSize <= 1:
			a = 0.3
		case o.HouseholdSize == 2:
			a = 0.5
		case o.HouseholdSize == 3:
			a = 0.7
		case o.HouseholdSize == 4:
			a = 0.85
		default:
			a = 1.0
		}
		if o.Cooking == domain.CookingDaily {
			a += 0.1
		}
		if a > 1.0 {
			a = 1.0
		}
		return a
	case ftSize:
		switch {
		case o.Pyung <= 10:
			return 0.2
		case o.Pyung <= 20:
			return 0.4
		case o.Pyung <= 30:
			return 0.6
		case o.Pyung <= 40:
			return 0.8
		default:
			return 1.0
		}
	case ftResolution:
		switch o.Media {
		case domain.MediaGaming:
			return 1.0
		case domain.MediaHigh, domain.MediaOTT, domain.MediaEntertainment:
			return 0.9
		case domain.MediaTV:
			return 0.8
		case domain.MediaBalanced:
			return 0.6
		case domain.MediaLow:
			return 0.4
		default:
			return 0.1
		}
	case ftBrightness, ftRefreshRate:
		switch o.Media {
		case domain.MediaGaming:
			if feature == ftRefreshRate {
				return 1.0
			}
			return 0.8
		case domain.MediaHigh, domain.MediaOTT, domain.MediaEntertainment:
			return 0.8
		case domain.MediaTV:
			return 0.8
		case domain.MediaBalanced:
			return 0.6
		case domain.MediaLow:
			return 0.4
		default:
			return 0.1
		}
	case ftPanelType:
		if o.HasPriority(domain.PriorityDesign) {
			return 0.8
		}
		return 0.5
	case ftAudioQuality:
		switch o.Media {
		case domain.MediaEntertainment, domain.MediaHigh, domain.MediaOTT:
			return 0.9
		case domain.MediaBalanced:
			return 0.6
		default:
			return 0.3
		}
	case ftConnectivity:
		if o.HasPriority(domain.PriorityTech) {
			return 0.9
		}
		return 0.5
	default:
		return 0.5
	}
}

// bonus rewards trait matches the weighted features do not capture.
func (r *Registry) bonus(info CategoryInfo, o domain.Onboarding) float64 {
	var b float64
	if hasTrait(info.Traits, TraitBrandLine) && o.HasPriority(domain.PriorityDesign) {
		b += 15
	}
	if hasTrait(info.Traits, TraitSmart) && o.HasPriority(domain.PriorityTech) {
		b += 15
	}
	if hasTrait(info.Traits, TraitLargeCapacity) && o.HouseholdSize >= 4 {
		b += 12
	}
	return b
}

// penalty dampens categories that are a stretch without being ill-suited.
func (r *Registry) penalty(info CategoryInfo, o domain.Onboarding) float64 {
	var p float64
	if hasTrait(info.Traits, TraitLarge) && o.HouseholdSize == 1 {
		p += 20
	}
	if hasTrait(info.Traits, TraitOversized) && o.Pyung <= 20 {
		p += 15
	}
	if hasTrait(info.Traits, TraitPremium) && o.BudgetLevel == domain.BudgetLow {
		p += 15
	}
	return p
}
