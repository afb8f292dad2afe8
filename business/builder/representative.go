package builder

import (
	"fmt"

	"applianceReco/domain"
)

// The representative enumeration cycles each answer dimension with a
// different period, so consecutive taste ids get visibly different
// households and the whole id space covers every combination of the
// shorter cycles.
var (
	repVibes      = []string{domain.VibeModern, domain.VibeCozy, domain.VibePop, domain.VibeLuxury}
	repHouseholds = []int{1, 2, 3, 4, 5}
	repHousings   = []string{domain.HousingApartment, domain.HousingDetached, domain.HousingVilla, domain.HousingOfficetel, domain.HousingStudio}
	repPriorities = []string{domain.PriorityDesign, domain.PriorityTech, domain.PriorityEco, domain.PriorityValue}
	repBudgets    = []string{domain.BudgetLow, domain.BudgetMedium, domain.BudgetHigh}
	repSpaces     = []string{domain.SpaceLiving, domain.SpaceKitchen, domain.SpaceDressing, domain.SpaceBedroom}
	repCooking    = []string{domain.CookingDaily, domain.CookingSometimes, domain.CookingRarely}
	repLaundry    = []string{domain.LaundryDaily, domain.LaundryWeekly, domain.LaundryBiweekly}
	repMedia      = []string{domain.MediaBalanced, domain.MediaEntertainment, domain.MediaMinimal}
)

// RepresentativeVector returns the deterministic onboarding vector that
// stands in for the given taste id during precompute.
func RepresentativeVector(tasteID int) domain.Onboarding {
	idx := tasteID - 1
	return domain.Onboarding{
		Vibe:          repVibes[idx%len(repVibes)],
		HouseholdSize: repHouseholds[idx%len(repHouseholds)],
		HousingType:   repHousings[idx%len(repHousings)],
		Pyung:         20 + (idx % 20),
		MainSpace:     []string{repSpaces[idx%len(repSpaces)]},
		HasPet:        idx%3 == 0,
		Cooking:       repCooking[idx%len(repCooking)],
		Laundry:       repLaundry[idx%len(repLaundry)],
		Media:         repMedia[idx%len(repMedia)],
		Priority:      []string{repPriorities[idx%len(repPriorities)]},
		BudgetLevel:   repBudgets[idx%len(repBudgets)],
	}
}

// Describe builds the one-line description stored with a taste config.
func Describe(tasteID int, vector domain.Onboarding) string {
	return fmt.Sprintf("Taste %d: %s, %d인 가구", tasteID, vector.Vibe, vector.HouseholdSize)
}
