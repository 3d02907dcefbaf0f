// Package inventory holds the player's resource counts.
package inventory

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

var (
	// ErrInsufficientBalance is returned when a debit exceeds the held amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrNegativeAmount is returned for negative credits, debits and balances.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidKey is returned when a plant resource key names no plant.
	ErrInvalidKey = errors.New("resource key names no plant")
)

// Ledger maps resource keys to non-negative counts. Missing keys read as 0.
// A Ledger is not safe for concurrent use; callers serialize access.
type Ledger struct {
	balances map[domain.ResourceKey]int
}

// New creates a starting ledger: gold, plus for each plant a zero harvested
// count and seeds seeds.
func New(plants []string, gold, seeds int) *Ledger {
	l := &Ledger{balances: make(map[domain.ResourceKey]int, 2*len(plants)+1)}
	l.balances[domain.GoldKey] = gold
	for _, p := range plants {
		l.balances[domain.HarvestedKey(p)] = 0
		l.balances[domain.SeedKey(p)] = seeds
	}
	return l
}

// FromMap builds a ledger from persisted "Gold"/"<Plant>"/"<Plant> Seeds" keys.
func FromMap(m map[string]int) (*Ledger, error) {
	l := &Ledger{balances: make(map[domain.ResourceKey]int, len(m))}
	for name, qty := range m {
		if qty < 0 {
			return nil, fmt.Errorf("%w: %q = %d", ErrNegativeAmount, name, qty)
		}
		l.balances[domain.ParseResourceKey(name)] = qty
	}
	return l, nil
}

// Get returns the count for key, 0 when absent.
func (l *Ledger) Get(key domain.ResourceKey) int {
	return l.balances[key]
}

// Gold is shorthand for Get(domain.GoldKey).
func (l *Ledger) Gold() int {
	return l.balances[domain.GoldKey]
}

// Has reports whether key has an entry, even a zero one.
func (l *Ledger) Has(key domain.ResourceKey) bool {
	_, ok := l.balances[key]
	return ok
}

// Credit adds amount to key, saturating at math.MaxInt.
func (l *Ledger) Credit(key domain.ResourceKey, amount int) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: credit %d to %s", ErrNegativeAmount, amount, key)
	}
	cur := l.balances[key]
	if cur > math.MaxInt-amount {
		l.balances[key] = math.MaxInt
		return nil
	}
	l.balances[key] = cur + amount
	return nil
}

// Debit removes amount from key. The ledger is unchanged on error.
func (l *Ledger) Debit(key domain.ResourceKey, amount int) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: debit %d from %s", ErrNegativeAmount, amount, key)
	}
	cur := l.balances[key]
	if cur < amount {
		return fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientBalance, key, cur, amount)
	}
	l.balances[key] = cur - amount
	return nil
}

// Set overwrites the count for key.
func (l *Ledger) Set(key domain.ResourceKey, amount int) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("%w: set %s to %d", ErrNegativeAmount, key, amount)
	}
	l.balances[key] = amount
	return nil
}

func checkKey(key domain.ResourceKey) error {
	if key.Kind != domain.ResourceCurrency && key.Plant == "" {
		return fmt.Errorf("%w: kind %d", ErrInvalidKey, key.Kind)
	}
	return nil
}

// Restore replaces the contents with those of from, typically a Copy taken
// before a multi-step change.
func (l *Ledger) Restore(from *Ledger) {
	l.balances = from.Copy().balances
}

// Copy returns an independent ledger with the same contents.
func (l *Ledger) Copy() *Ledger {
	out := &Ledger{balances: make(map[domain.ResourceKey]int, len(l.balances))}
	for k, v := range l.balances {
		out.balances[k] = v
	}
	return out
}

// ToMap renders the ledger with persisted string keys.
func (l *Ledger) ToMap() map[string]int {
	out := make(map[string]int, len(l.balances))
	for k, v := range l.balances {
		out[k.String()] = v
	}
	return out
}

// HarvestedPlants returns the plants with a harvested entry, sorted by name.
func (l *Ledger) HarvestedPlants() []string {
	var plants []string
	for k := range l.balances {
		if k.Kind == domain.ResourceHarvested {
			plants = append(plants, k.Plant)
		}
	}
	sort.Strings(plants)
	return plants
}

// View builds a read-only copy. Plants are listed in the given order first,
// then any other plants found in the ledger, alphabetically.
func (l *Ledger) View(order []string) domain.InventoryView {
	view := domain.InventoryView{
		Gold:    l.Gold(),
		Entries: l.ToMap(),
	}

	seen := make(map[string]bool, len(order))
	add := func(p string) {
		if seen[p] {
			return
		}
		seen[p] = true
		view.Plants = append(view.Plants, domain.InventoryEntry{
			Plant:     p,
			Harvested: l.Get(domain.HarvestedKey(p)),
			Seeds:     l.Get(domain.SeedKey(p)),
		})
	}
	for _, p := range order {
		add(p)
	}

	var extra []string
	for k := range l.balances {
		if k.Kind != domain.ResourceCurrency && !seen[k.Plant] {
			extra = append(extra, k.Plant)
		}
	}
	sort.Strings(extra)
	for _, p := range extra {
		add(p)
	}
	return view
}
