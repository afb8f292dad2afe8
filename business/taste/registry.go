package taste

// Trait is a behavioral tag on a category. Ill-suited rules and score
// bonuses match on traits so that adding a category never requires a new
// rule.
type Trait string

const (
	TraitEssential     Trait = "essential"
	TraitMedia         Trait = "media"
	TraitKitchen       Trait = "kitchen"
	TraitLaundry       Trait = "laundry"
	TraitCooking       Trait = "cooking"
	TraitPet           Trait = "pet"
	TraitMini          Trait = "mini"
	TraitLarge         Trait = "large"
	TraitOversized     Trait = "oversized"
	TraitLargeCapacity Trait = "large_capacity"
	TraitEntry         Trait = "entry"
	TraitPremium       Trait = "premium"
	TraitSmart         Trait = "smart"
	TraitBrandLine     Trait = "brand_line"
)

// Group selects the base weight table for a category.
type Group string

const (
	GroupTV        Group = "TV"
	GroupKitchen   Group = "KITCHEN"
	GroupLiving    Group = "LIVING"
	GroupAir       Group = "AIR"
	GroupAI        Group = "AI"
	GroupObjet     Group = "OBJET"
	GroupSignature Group = "SIGNATURE"
)

type CategoryInfo struct {
	Name   string
	Group  Group
	Traits []Trait
}

// Registry is the closed set of scorable categories. Lookups on names
// outside the registry fail with domain.ErrUnknownCategory at the call
// sites that care.
type Registry struct {
	names  []string
	byName map[string]CategoryInfo
}

func NewRegistry(infos []CategoryInfo) *Registry {
	r := &Registry{
		names:  make([]string, 0, len(infos)),
		byName: make(map[string]CategoryInfo, len(infos)),
	}
	for _, info := range infos {
		if _, ok := r.byName[info.Name]; ok {
			continue
		}
		r.names = append(r.names, info.Name)
		r.byName[info.Name] = info
	}
	return r
}

// Names returns the registered category names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) Lookup(name string) (CategoryInfo, bool) {
	info, ok := r.byName[name]
	return info, ok
}

// Has reports whether the named category carries the trait. Unknown
// categories carry no traits.
func (r *Registry) Has(name string, trait Trait) bool {
	info, ok := r.byName[name]
	if !ok {
		return false
	}
	for _, t := range info.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// DefaultRegistry returns the production category set.
func DefaultRegistry() *Registry {
	return NewRegistry([]CategoryInfo{
		{Name: "TV", Group: GroupTV, Traits: []Trait{TraitMedia, TraitEssential}},
		{Name: "오디오", Group: GroupTV, Traits: []Trait{TraitMedia}},
		{Name: "사운드바", Group: GroupTV, Traits: []Trait{TraitMedia}},
		{Name: "프로젝터", Group: GroupTV, Traits: []Trait{TraitMedia, TraitOversized}},
		{Name: "스탠바이미", Group: GroupTV, Traits: []Trait{TraitMedia}},

		{Name: "냉장고", Group: GroupKitchen, Traits: []Trait{TraitEssential, TraitLargeCapacity}},
		{Name: "김치냉장고", Group: GroupKitchen, Traits: []Trait{TraitKitchen, TraitLarge, TraitOversized, TraitLargeCapacity}},
		{Name: "미니냉장고", Group: GroupKitchen, Traits: []Trait{TraitMini, TraitEntry}},
		{Name: "식기세척기", Group: GroupKitchen, Traits: []Trait{TraitKitchen, TraitOversized, TraitCooking}},
		{Name: "오븐", Group: GroupKitchen, Traits: []Trait{TraitKitchen, TraitCooking}},
		{Name: "전자레인지", Group: GroupKitchen, Traits: []Trait{TraitKitchen, TraitCooking}},
		{Name: "전기레인지", Group: GroupKitchen},
		{Name: "인덕션", Group: GroupKitchen},
		{Name: "와인셀러", Group: GroupKitchen, Traits: []Trait{TraitPremium}},

		{Name: "세탁기", Group: GroupLiving, Traits: []Trait{TraitEssential, TraitLargeCapacity}},
		{Name: "미니세탁기", Group: GroupLiving, Traits: []Trait{TraitMini, TraitEntry}},
		{Name: "건조기", Group: GroupLiving, Traits: []Trait{TraitLaundry, TraitOversized}},
		{Name: "워시타워", Group: GroupLiving, Traits: []Trait{TraitLaundry, TraitLarge, TraitLargeCapacity}},
		{Name: "의류관리기", Group: GroupLiving, Traits: []Trait{TraitLaundry, TraitPremium}},
		{Name: "청소기", Group: GroupLiving},
		{Name: "공기청정기", Group: GroupLiving},
		{Name: "가습기", Group: GroupLiving},
		{Name: "제습기", Group: GroupLiving},
		{Name: "정수기", Group: GroupLiving},
		{Name: "펫케어", Group: GroupLiving, Traits: []Trait{TraitPet}},

		{Name: "에어컨", Group: GroupAir, Traits: []Trait{TraitEssential}},
		{Name: "AIHome", Group: GroupAI, Traits: []Trait{TraitSmart}},
		{Name: "OBJET", Group: GroupObjet, Traits: []Trait{TraitBrandLine, TraitPremium}},
		{Name: "SIGNATURE", Group: GroupSignature, Traits: []Trait{TraitBrandLine, TraitPremium}},
	})
}
