package domain

// Canonical enumerated values for the onboarding answers. Raw UI values are
// mapped onto these by the normalizer in business/taste.
const (
	VibeModern = "modern"
	VibeCozy   = "cozy"
	VibePop    = "pop"
	VibeLuxury = "luxury"

	HousingApartment = "apartment"
	HousingDetached  = "detached"
	HousingVilla     = "villa"
	HousingOfficetel = "officetel"
	HousingStudio    = "studio"

	SpaceLiving   = "living"
	SpaceKitchen  = "kitchen"
	SpaceDressing = "dressing"
	SpaceBedroom  = "bedroom"
	SpaceStudy    = "study"
	SpaceLaundry  = "laundry"
	SpaceVeranda  = "veranda"

	CookingDaily     = "daily"
	CookingSometimes = "sometimes"
	CookingRarely    = "rarely"
	CookingNever     = "never"

	LaundryDaily    = "daily"
	LaundryWeekly   = "weekly"
	LaundryBiweekly = "biweekly"
	LaundryRarely   = "rarely"

	MediaGaming        = "gaming"
	MediaOTT           = "ott"
	MediaEntertainment = "entertainment"
	MediaHigh          = "high"
	MediaTV            = "tv"
	MediaBalanced      = "balanced"
	MediaLow           = "low"
	MediaMinimal       = "minimal"
	MediaNone          = "none"

	PriorityDesign = "design"
	PriorityTech   = "tech"
	PriorityEco    = "eco"
	PriorityValue  = "value"

	BudgetLow     = "low"
	BudgetMedium  = "medium"
	BudgetHigh    = "high"
	BudgetPremium = "premium"
	BudgetLuxury  = "luxury"
)

// Onboarding is the normalized 11-dimensional answer vector. After
// normalization every field holds a value in its domain; the scoring core
// never sees a zero value.
type Onboarding struct {
	Vibe          string   `json:"vibe"`
	HouseholdSize int      `json:"household_size"`
	HousingType   string   `json:"housing_type"`
	Pyung         int      `json:"pyung"`
	MainSpace     []string `json:"main_space"` // sorted, deduplicated
	HasPet        bool     `json:"has_pet"`
	Cooking       string   `json:"cooking"`
	Laundry       string   `json:"laundry"`
	Media         string   `json:"media"`
	Priority      []string `json:"priority"` // primary first, order preserved
	BudgetLevel   string   `json:"budget_level"`
}

// HasMainSpace reports whether the given space is one of the main spaces.
func (o Onboarding) HasMainSpace(space string) bool {
	for _, s := range o.MainSpace {
		if s == space {
			return true
		}
	}
	return false
}

// HasPriority reports whether the given priority appears anywhere in the list.
func (o Onboarding) HasPriority(p string) bool {
	for _, v := range o.Priority {
		if v == p {
			return true
		}
	}
	return false
}

// PrimaryPriority returns the first (highest ranked) priority.
func (o Onboarding) PrimaryPriority() string {
	if len(o.Priority) == 0 {
		return PriorityValue
	}
	return o.Priority[0]
}

// HighBudget groups high, premium and luxury into one tier for rules that
// only care about "expensive vs. not".
func (o Onboarding) HighBudget() bool {
	switch o.BudgetLevel {
	case BudgetHigh, BudgetPremium, BudgetLuxury:
		return true
	}
	return false
}
