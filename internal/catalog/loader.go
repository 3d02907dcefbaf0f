package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

//go:embed plants.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Version int         `yaml:"version"`
	Plants  []plantYAML `yaml:"plants" validate:"required,min=1,dive"`
}

type plantYAML struct {
	Name          string             `yaml:"name" validate:"required,max=64"`
	GrowthMinutes float64            `yaml:"growthMinutes" validate:"gt=0"`
	SeedYield     yieldYAML          `yaml:"seedYield"`
	HarvestYield  yieldYAML          `yaml:"harvestYield"`
	SellPrice     int                `yaml:"sellPrice" validate:"gte=0"`
	Seasons       []string           `yaml:"seasons" validate:"omitempty,dive,oneof=Spring Summer Autumn Winter"`
	SeasonBonus   map[string]float64 `yaml:"seasonBonus" validate:"omitempty,dive,keys,oneof=Spring Summer Autumn Winter,endkeys,gt=0"`
}

type yieldYAML struct {
	Base  int `yaml:"base" validate:"gte=0"`
	Range int `yaml:"range" validate:"gte=0"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog from a YAML file. An empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadCatalog, path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, ErrMsgParseCatalog, err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, ErrMsgValidateCatalog, err)
	}

	defs := make([]domain.PlantDefinition, 0, len(file.Plants))
	for _, p := range file.Plants {
		defs = append(defs, p.toDefinition())
	}
	return New(defs)
}

func (p plantYAML) toDefinition() domain.PlantDefinition {
	seasons := make([]domain.Season, 0, len(p.Seasons))
	for _, s := range p.Seasons {
		seasons = append(seasons, domain.Season(s))
	}
	if len(seasons) == 0 {
		seasons = append(seasons, domain.AllSeasons...)
	}

	var bonus map[domain.Season]float64
	if len(p.SeasonBonus) > 0 {
		bonus = make(map[domain.Season]float64, len(p.SeasonBonus))
		for s, mult := range p.SeasonBonus {
			bonus[domain.Season(s)] = mult
		}
	}

	return domain.PlantDefinition{
		Name:           p.Name,
		GrowthDuration: time.Duration(p.GrowthMinutes * float64(time.Minute)),
		SeedYield:      domain.YieldRange{Base: p.SeedYield.Base, Spread: p.SeedYield.Range},
		HarvestYield:   domain.YieldRange{Base: p.HarvestYield.Base, Spread: p.HarvestYield.Range},
		SellPrice:      p.SellPrice,
		ValidSeasons:   seasons,
		SeasonBonus:    bonus,
	}
}
