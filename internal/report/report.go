package report

import (
	"github.com/ravenclaw900/dst-farming-ui/internal/lookup"
	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
	"gopkg.in/yaml.v3"
)

// Report is everything shown for one season and ratio.
type Report struct {
	Season              string        `yaml:"season"`
	Ratio               string        `yaml:"ratio"`
	MinSeedsPerCropType int           `yaml:"min_seeds_per_crop_type"`
	Farm                *FarmSummary  `yaml:"farm,omitempty"`
	Found               bool          `yaml:"found"` // false when nothing is listed for the pair
	Recipes             []RecipeEntry `yaml:"recipes"`
}

// FarmSummary is the part of a farm a ratio fills.
type FarmSummary struct {
	Width            int `yaml:"width"`
	Height           int `yaml:"height"`
	FilledHorizontal int `yaml:"filled_horizontal"`
	FilledVertical   int `yaml:"filled_vertical"`
	FilledTotal      int `yaml:"filled_total"`
}

// RecipeEntry is one combination, in dataset order.
type RecipeEntry struct {
	Plants       []PlantEntry `yaml:"plants"`
	Slots        []SlotEntry  `yaml:"slots"`
	Totals       Nutrients    `yaml:"totals"`
	OutOfSeason  []string     `yaml:"out_of_season,omitempty"`
	Abbreviation string       `yaml:"abbreviation"`
}

type SlotEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Color string `yaml:"-"`
}

// PlantEntry is a plant's catalog data.
type PlantEntry struct {
	Name         string    `yaml:"name"`
	Abbreviation string    `yaml:"abbreviation"`
	Seasons      []string  `yaml:"seasons,flow"`
	Nutrients    Nutrients `yaml:"nutrients"`
	Color        string    `yaml:"color"`
}

type Nutrients struct {
	Formula int `yaml:"formula"`
	Compost int `yaml:"compost"`
	Manure  int `yaml:"manure"`
}

// Build looks up the recipes for season and ratio. farm may be nil, in which
// case no fill sizes are computed.
func Build(season plant.Season, ratio plant.CropRatio, farm *plant.FarmSize) Report {
	r := Report{
		Season:              season.String(),
		Ratio:               ratio.String(),
		MinSeedsPerCropType: ratio.MinSeedsPerCropType(),
	}
	if farm != nil {
		r.Farm = &FarmSummary{
			Width:            farm.Width,
			Height:           farm.Height,
			FilledHorizontal: ratio.FilledHorizontal(*farm),
			FilledVertical:   ratio.FilledVertical(*farm),
			FilledTotal:      ratio.FilledTotal(*farm),
		}
	}

	recipes, ok := lookup.Combos(season, ratio)
	r.Found = ok
	for _, recipe := range recipes {
		r.Recipes = append(r.Recipes, newRecipeEntry(season, recipe))
	}
	return r
}

// Catalog returns every plant in catalog order.
func Catalog() []PlantEntry {
	var rslt []PlantEntry
	for _, p := range plant.All() {
		rslt = append(rslt, newPlantEntry(p))
	}
	return rslt
}

// YAML encodes the report.
func (r Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

func newRecipeEntry(season plant.Season, recipe lookup.Recipe) RecipeEntry {
	e := RecipeEntry{
		Totals:       newNutrients(recipe.Totals()),
		Abbreviation: recipe.Abbreviations(),
	}
	for _, p := range recipe {
		e.Plants = append(e.Plants, newPlantEntry(p))
	}
	for _, s := range recipe.Counts() {
		e.Slots = append(e.Slots, SlotEntry{Name: s.Plant.Name(), Count: s.Count, Color: s.Plant.Color()})
	}
	for _, p := range recipe.OutOfSeason(season) {
		e.OutOfSeason = append(e.OutOfSeason, p.Name())
	}
	return e
}

func newPlantEntry(p plant.Plant) PlantEntry {
	e := PlantEntry{
		Name:         p.Name(),
		Abbreviation: p.Abbreviation(),
		Nutrients:    newNutrients(p.Nutrients()),
		Color:        p.Color(),
	}
	for _, s := range p.AvailableSeasons() {
		e.Seasons = append(e.Seasons, s.String())
	}
	return e
}

func newNutrients(n plant.Nutrients) Nutrients {
	return Nutrients{Formula: n.Formula, Compost: n.Compost, Manure: n.Manure}
}
