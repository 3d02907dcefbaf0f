package domain

import "strings"

// ResourceKind tags what a ledger entry counts
type ResourceKind int

const (
	ResourceCurrency ResourceKind = iota
	ResourceHarvested
	ResourceSeeds
)

// ResourceKey identifies one ledger entry: the currency, a plant's harvested
// goods, or a plant's seed stock.
type ResourceKey struct {
	Kind  ResourceKind
	Plant string
}

// GoldKey is the key of the currency entry
var GoldKey = ResourceKey{Kind: ResourceCurrency}

// HarvestedKey returns the key of a plant's harvested-good count
func HarvestedKey(plant string) ResourceKey {
	return ResourceKey{Kind: ResourceHarvested, Plant: plant}
}

// SeedKey returns the key of a plant's seed count
func SeedKey(plant string) ResourceKey {
	return ResourceKey{Kind: ResourceSeeds, Plant: plant}
}

// String renders the key in the persisted form: "Gold", "<Plant>" or "<Plant> Seeds"
func (k ResourceKey) String() string {
	switch k.Kind {
	case ResourceCurrency:
		return CurrencyGold
	case ResourceSeeds:
		return k.Plant + SeedsSuffix
	default:
		return k.Plant
	}
}

// ParseResourceKey is the inverse of ResourceKey.String
func ParseResourceKey(s string) ResourceKey {
	if s == CurrencyGold {
		return GoldKey
	}
	if plant, ok := strings.CutSuffix(s, SeedsSuffix); ok && plant != "" {
		return SeedKey(plant)
	}
	return HarvestedKey(s)
}

// InventoryEntry is one row of the inventory view
type InventoryEntry struct {
	Plant     string `json:"plant"`
	Harvested int    `json:"harvested"`
	Seeds     int    `json:"seeds"`
}

// InventoryView is a read-only copy of the ledger
type InventoryView struct {
	Gold    int              `json:"gold"`
	Plants  []InventoryEntry `json:"plants"`
	Entries map[string]int   `json:"entries"`
}
