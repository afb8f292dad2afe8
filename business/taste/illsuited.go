package taste

import "applianceReco/domain"

// illSuitedRule decides whether a trait set clashes with the household. The
// rule returns a human-readable reason when it fires.
type illSuitedRule struct {
	trait  Trait
	reason string
	match  func(domain.Onboarding) bool
}

// The rules match on category traits rather than category names so that a
// new category picks up the relevant rules from its trait set alone.
var illSuitedRules = []illSuitedRule{
	{
		trait:  TraitPet,
		reason: "no pet in the household",
		match:  func(o domain.Onboarding) bool { return !o.HasPet },
	},
	{
		trait:  TraitLarge,
		reason: "single-person household",
		match:  func(o domain.Onboarding) bool { return o.HouseholdSize == 1 },
	},
	{
		trait:  TraitMini,
		reason: "household of five or more",
		match:  func(o domain.Onboarding) bool { return o.HouseholdSize >= 5 },
	},
	{
		trait:  TraitOversized,
		reason: "small studio or officetel",
		match: func(o domain.Onboarding) bool {
			compact := o.HousingType == domain.HousingStudio || o.HousingType == domain.HousingOfficetel
			return compact && o.Pyung <= 20
		},
	},
	{
		trait:  TraitKitchen,
		reason: "kitchen is not a main space",
		match:  func(o domain.Onboarding) bool { return !o.HasMainSpace(domain.SpaceKitchen) },
	},
	{
		trait:  TraitLaundry,
		reason: "no laundry space",
		match: func(o domain.Onboarding) bool {
			return !o.HasMainSpace(domain.SpaceLaundry) && !o.HasMainSpace(domain.SpaceVeranda)
		},
	},
	{
		trait:  TraitCooking,
		reason: "rarely cooks",
		match: func(o domain.Onboarding) bool {
			return o.Cooking == domain.CookingRarely || o.Cooking == domain.CookingNever
		},
	},
	{
		trait:  TraitLaundry,
		reason: "rarely does laundry",
		match:  func(o domain.Onboarding) bool { return o.Laundry == domain.LaundryRarely },
	},
	{
		trait:  TraitMedia,
		reason: "little media consumption",
		match: func(o domain.Onboarding) bool {
			return o.Media == domain.MediaNone || o.Media == domain.MediaMinimal
		},
	},
	{
		trait:  TraitEntry,
		reason: "luxury-oriented household",
		match:  func(o domain.Onboarding) bool { return o.Vibe == domain.VibeLuxury },
	},
}

// IllSuited returns the set of registered categories that clash with the
// household described by the vector. A category is ill-suited as soon as
// one rule fires on one of its traits.
func (r *Registry) IllSuited(o domain.Onboarding) map[string]bool {
	out := map[string]bool{}
	for _, name := range r.names {
		if len(r.ReasonsFor(name, o)) > 0 {
			out[name] = true
		}
	}
	return out
}

// ReasonsFor lists every rule reason that fires for the named category.
// Unknown categories produce no reasons.
func (r *Registry) ReasonsFor(name string, o domain.Onboarding) []string {
	info, ok := r.byName[name]
	if !ok {
		return nil
	}
	var reasons []string
	for _, rule := range illSuitedRules {
		if !hasTrait(info.Traits, rule.trait) {
			continue
		}
		if rule.match(o) {
			reasons = append(reasons, rule.reason)
		}
	}
	return reasons
}

func hasTrait(traits []Trait, t Trait) bool {
	for _, v := range traits {
		if v == t {
			return true
		}
	}
	return false
}
