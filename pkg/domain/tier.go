package domain

import "fmt"

// Tier is a purchased package level controlling how many directories a
// customer's business may be submitted to.
type Tier string

const (
	TierFree         Tier = "free"
	TierStarter      Tier = "starter"
	TierGrowth       Tier = "growth"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// Unlimited marks a limit without an upper bound.
const Unlimited = -1

// TierLimits describes what a tier grants.
type TierLimits struct {
	// Directories is the maximum number of directories the tier may be submitted to.
	Directories int `json:"directories"`
	// Analyses is the number of analyses per period, or Unlimited.
	Analyses int `json:"analyses"`
	// PriceCents is the one-off price of the package in cents.
	PriceCents int64 `json:"priceCents"`
	// PriorityLevel orders queued work; 1 is processed first.
	PriorityLevel int `json:"priorityLevel"`
}

var tierLimits = map[Tier]TierLimits{ //nolint: gochecknoglobals
	TierFree:         {Directories: 0, Analyses: 1, PriceCents: 0, PriorityLevel: 5},
	TierStarter:      {Directories: 50, Analyses: 5, PriceCents: 14900, PriorityLevel: 4},
	TierGrowth:       {Directories: 150, Analyses: 25, PriceCents: 29900, PriorityLevel: 3},
	TierProfessional: {Directories: 300, Analyses: 100, PriceCents: 49900, PriorityLevel: 2},
	TierEnterprise:   {Directories: 500, Analyses: Unlimited, PriceCents: 79900, PriorityLevel: 1},
}

// Tiers lists every tier from the cheapest to the most expensive.
func Tiers() []Tier {
	return []Tier{TierFree, TierStarter, TierGrowth, TierProfessional, TierEnterprise}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tierLimits[t]

	return ok
}

// Purchasable reports whether the tier can be bought through checkout.
func (t Tier) Purchasable() bool {
	return t.Valid() && t != TierFree
}

// Limits returns the limits of the tier. Unknown tiers get the free limits.
func (t Tier) Limits() TierLimits {
	if l, ok := tierLimits[t]; ok {
		return l
	}

	return tierLimits[TierFree]
}

// ParseTier validates s as a tier name.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q", s)
	}

	return t, nil
}
