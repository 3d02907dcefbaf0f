// Package catalog holds the immutable set of plant definitions the farm is
// played with. A catalog is built once at start-up and never mutated.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// Catalog is a read-only plant registry with O(1) lookup by name.
// It is safe for concurrent use.
type Catalog struct {
	plants  []*domain.PlantDefinition
	byName  map[string]*domain.PlantDefinition
	byFold  map[string]*domain.PlantDefinition
	suggest *expirable.LRU[string, string]
}

// New builds a catalog from definitions, validating catalog-level rules.
// Definitions are copied; later changes to defs do not affect the catalog.
func New(defs []domain.PlantDefinition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgEmptyCatalog)
	}

	c := &Catalog{
		plants:  make([]*domain.PlantDefinition, 0, len(defs)),
		byName:  make(map[string]*domain.PlantDefinition, len(defs)),
		byFold:  make(map[string]*domain.PlantDefinition, len(defs)),
		suggest: expirable.NewLRU[string, string](suggestionCacheSize, nil, suggestionCacheTTL),
	}

	for i := range defs {
		def := cloneDefinition(defs[i])
		if err := checkDefinition(def); err != nil {
			return nil, err
		}
		key := c.fold(def.Name)
		if _, dup := c.byFold[key]; dup {
			return nil, fmt.Errorf("%w: %s: %q", domain.ErrInvalidCatalog, ErrMsgDuplicatePlant, def.Name)
		}
		c.plants = append(c.plants, def)
		c.byName[def.Name] = def
		c.byFold[key] = def
	}

	return c, nil
}

func checkDefinition(def *domain.PlantDefinition) error {
	wrap := func(msg string) error {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidCatalog, def.Name, msg)
	}
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: plant name is empty", domain.ErrInvalidCatalog)
	}
	if def.GrowthDuration <= 0 {
		return wrap(ErrMsgBadGrowthTime)
	}
	if len(def.ValidSeasons) == 0 {
		return wrap(ErrMsgNoSeasons)
	}
	for _, s := range def.ValidSeasons {
		if !s.IsValid() {
			return wrap(fmt.Sprintf("%s %q", ErrMsgUnknownSeason, s))
		}
	}
	for s, mult := range def.SeasonBonus {
		if !s.IsValid() {
			return wrap(fmt.Sprintf("%s %q", ErrMsgUnknownSeason, s))
		}
		if mult <= 0 {
			return wrap(ErrMsgBadSeasonBonus)
		}
	}
	if def.SeedYield.Base < 0 || def.SeedYield.Spread < 0 ||
		def.HarvestYield.Base < 0 || def.HarvestYield.Spread < 0 || def.SellPrice < 0 {
		return wrap(ErrMsgNegativeYield)
	}
	return nil
}

func cloneDefinition(d domain.PlantDefinition) *domain.PlantDefinition {
	out := d
	out.ValidSeasons = append([]domain.Season(nil), d.ValidSeasons...)
	if d.SeasonBonus != nil {
		out.SeasonBonus = make(map[domain.Season]float64, len(d.SeasonBonus))
		for k, v := range d.SeasonBonus {
			out.SeasonBonus[k] = v
		}
	}
	return &out
}

// fold builds a fresh Caser per call since Casers are stateful.
func (c *Catalog) fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Get returns the plant with exactly this name.
func (c *Catalog) Get(name string) (*domain.PlantDefinition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Resolve maps user input to a plant, ignoring case and surrounding spaces.
// Unknown names return domain.ErrUnknownPlant, with a suggestion when one
// is close enough.
func (c *Catalog) Resolve(input string) (*domain.PlantDefinition, error) {
	if def, ok := c.byName[input]; ok {
		return def, nil
	}
	if def, ok := c.byFold[c.fold(input)]; ok {
		return def, nil
	}

	err := fmt.Errorf(ErrMsgUnknownPlantName, domain.ErrUnknownPlant, input)
	if hint, ok := c.Suggest(input); ok {
		err = fmt.Errorf("%w, "+ErrMsgDidYouMean, err, hint)
	}
	return nil, err
}

// All returns every plant in catalog order.
func (c *Catalog) All() []*domain.PlantDefinition {
	out := make([]*domain.PlantDefinition, len(c.plants))
	copy(out, c.plants)
	return out
}

// Names returns plant names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.plants))
	for i, p := range c.plants {
		names[i] = p.Name
	}
	return names
}

// Len is the number of plants.
func (c *Catalog) Len() int {
	return len(c.plants)
}

// Plantable returns the plants that may be planted during season.
func (c *Catalog) Plantable(season domain.Season) []*domain.PlantDefinition {
	var out []*domain.PlantDefinition
	for _, p := range c.plants {
		if p.GrowsIn(season) {
			out = append(out, p)
		}
	}
	return out
}

// Infos builds the public listing for season. With plantableOnly set, plants
// that cannot be planted this season are omitted.
func (c *Catalog) Infos(season domain.Season, plantableOnly bool) []domain.PlantInfo {
	infos := make([]domain.PlantInfo, 0, len(c.plants))
	for _, p := range c.plants {
		plantable := p.GrowsIn(season)
		if plantableOnly && !plantable {
			continue
		}
		seasons := append([]domain.Season(nil), p.ValidSeasons...)
		sort.SliceStable(seasons, func(i, j int) bool {
			return seasonOrder(seasons[i]) < seasonOrder(seasons[j])
		})
		infos = append(infos, domain.PlantInfo{
			Name:          p.Name,
			GrowthSeconds: int64(p.GrowthDuration.Seconds()),
			SellPrice:     p.SellPrice,
			Seasons:       seasons,
			SeasonBonus:   p.SeasonBonus,
			Plantable:     plantable,
		})
	}
	return infos
}

func seasonOrder(s domain.Season) int {
	for i, known := range domain.AllSeasons {
		if known == s {
			return i
		}
	}
	return len(domain.AllSeasons)
}
