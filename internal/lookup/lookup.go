// Package lookup maps a season and crop ratio to the plant combinations that
// keep a plot's nutrients balanced.
package lookup

import (
	"strings"

	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
)

// Recipe is one combination of plants for a ratio. Doubled plants in a 2:1 or
// 2:1:1 ratio appear twice, at the front.
type Recipe []plant.Plant

// Totals returns the recipe's net effect on the soil.
func (r Recipe) Totals() plant.Nutrients {
	var n plant.Nutrients
	for _, p := range r {
		n = n.Add(p.Nutrients())
	}
	return n
}

// Slot is a distinct plant in a recipe and how many slots it takes.
type Slot struct {
	Plant plant.Plant
	Count int
}

// Counts returns the distinct plants of r, in order of first appearance.
func (r Recipe) Counts() []Slot {
	var rslt []Slot
	idx := map[string]int{}
	for _, p := range r {
		if i, ok := idx[p.Name()]; ok {
			rslt[i].Count++
			continue
		}
		idx[p.Name()] = len(rslt)
		rslt = append(rslt, Slot{Plant: p, Count: 1})
	}
	return rslt
}

// OutOfSeason returns the distinct plants of r that do not grow in season.
func (r Recipe) OutOfSeason(season plant.Season) []plant.Plant {
	var rslt []plant.Plant
	for _, s := range r.Counts() {
		if !s.Plant.InSeason(season) {
			rslt = append(rslt, s.Plant)
		}
	}
	return rslt
}

// Abbreviations renders r in short form, e.g. "Cn Cn DF On".
func (r Recipe) Abbreviations() string {
	abbrevs := make([]string, len(r))
	for i, p := range r {
		abbrevs[i] = p.Abbreviation()
	}
	return strings.Join(abbrevs, " ")
}

// Combos returns the recipes listed for season at ratio. ok is false when the
// dataset has no entry for the pair.
//
// The returned slices are fresh copies and may be modified by the caller.
func Combos(season plant.Season, ratio plant.CropRatio) ([]Recipe, bool) {
	row, ok := table[ratio]
	if !ok {
		return nil, false
	}
	ids, ok := row[season]
	if !ok {
		return nil, false
	}

	rslt := make([]Recipe, len(ids))
	for i, recipe := range ids {
		rslt[i] = make(Recipe, len(recipe))
		for j, id := range recipe {
			rslt[i][j] = id.Plant()
		}
	}
	return rslt, true
}
