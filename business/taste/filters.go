package taste

import (
	"strconv"
	"unicode"

	"applianceReco/domain"
)

// FilterRule drops a product for a household when it returns false.
type FilterRule func(domain.Product, domain.Onboarding) bool

// HardFilter removes products that physically or practically cannot serve
// the household. Rules run in order; the first rejecting rule wins.
type HardFilter struct {
	rules []FilterRule
}

// NewHardFilter builds the production rule set: depth against studio
// layouts and washer capacity against single households. Thresholds are in
// millimeters and kilograms.
func NewHardFilter(studioMaxDepthMM, singleMaxCapacityKG int) *HardFilter {
	return &HardFilter{rules: []FilterRule{
		func(p domain.Product, o domain.Onboarding) bool {
			if o.HousingType != domain.HousingStudio {
				return true
			}
			return firstInt(p.DepthMM) <= studioMaxDepthMM
		},
		func(p domain.Product, o domain.Onboarding) bool {
			if o.HouseholdSize != 1 {
				return true
			}
			return firstInt(p.CapacityKG) < singleMaxCapacityKG
		},
	}}
}

// AddRule appends an extra rule after the built-in ones.
func (f *HardFilter) AddRule(rule FilterRule) {
	f.rules = append(f.rules, rule)
}

// Allow reports whether every rule accepts the product.
func (f *HardFilter) Allow(p domain.Product, o domain.Onboarding) bool {
	for _, rule := range f.rules {
		if !rule(p, o) {
			return false
		}
	}
	return true
}

// Apply filters the slice in order, keeping the products every rule
// accepts.
func (f *HardFilter) Apply(products []domain.Product, o domain.Onboarding) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Allow(p, o) {
			out = append(out, p)
		}
	}
	return out
}

// firstInt extracts the first run of digits from a raw spec string
// ("750mm", "약 24 kg"). Strings without digits parse to 0, which no rule
// rejects; an unparseable spec never excludes a product.
func firstInt(s string) int {
	start := -1
	for i, r := range s {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}
