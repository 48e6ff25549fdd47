// Package plant provides the fixed catalog of Don't Starve Together farm plants,
// along with the seasons and crop ratios they are planned around.
package plant

import "fmt"

// Plant is a single catalog entry. Plants are values; the catalog never changes.
type Plant struct {
	name    string
	abbrev  string
	seasons [numSeasons]bool // availability, indexed by Season
	formula int8
	compost int8
	manure  int8
	color   string // ANSI-256 index, e.g. "208"
}

func (p Plant) Name() string         { return p.name }
func (p Plant) Abbreviation() string { return p.abbrev }
func (p Plant) Formula() int         { return int(p.formula) }
func (p Plant) Compost() int         { return int(p.compost) }
func (p Plant) Manure() int          { return int(p.manure) }

// Color returns the plant's display color token. It only has meaning to the
// renderer.
func (p Plant) Color() string { return p.color }

// InSeason reports whether p can be grown in s.
func (p Plant) InSeason(s Season) bool {
	if !s.valid() {
		return false
	}
	return p.seasons[s]
}

// AvailableSeasons returns the seasons p grows in, in Seasons() order.
func (p Plant) AvailableSeasons() []Season {
	var rslt []Season
	for _, s := range Seasons() {
		if p.seasons[s] {
			rslt = append(rslt, s)
		}
	}
	return rslt
}

func (p Plant) Nutrients() Nutrients {
	return Nutrients{Formula: int(p.formula), Compost: int(p.compost), Manure: int(p.manure)}
}

func (p Plant) String() string { return p.name }

// Nutrients is the net effect of one or more plants on the three soil nutrients.
type Nutrients struct {
	Formula int
	Compost int
	Manure  int
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Formula: n.Formula + o.Formula,
		Compost: n.Compost + o.Compost,
		Manure:  n.Manure + o.Manure,
	}
}

// Balanced reports whether the nutrients cancel out completely.
func (n Nutrients) Balanced() bool { return n == Nutrients{} }

// ID identifies one of the catalog plants.
type ID int

const (
	Carrot ID = iota
	Corn
	Potato
	TomaRoot
	Asparagus
	Eggplant
	Pumpkin
	Watermelon
	DragonFruit
	Durian
	Garlic
	Onion
	Pepper
	Pomegranate

	numPlants = iota
)

// Plant returns the catalog entry for id. It panics on an unknown id, which can
// only come from a programming error.
func (id ID) Plant() Plant {
	if id < 0 || int(id) >= numPlants {
		panic("plant: unknown plant id")
	}
	return catalog[id]
}

func (id ID) String() string {
	if id < 0 || int(id) >= numPlants {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return catalog[id].name
}

// All returns every catalog plant, in catalog order.
func All() []Plant {
	rslt := make([]Plant, numPlants)
	copy(rslt, catalog[:])
	return rslt
}

// avail builds a seasonal availability table from the seasons a plant grows in.
func avail(seasons ...Season) [numSeasons]bool {
	var rslt [numSeasons]bool
	for _, s := range seasons {
		rslt[s] = true
	}
	return rslt
}

var catalog = [numPlants]Plant{
	Carrot: {
		name: "Carrot", abbrev: "Ct",
		seasons: avail(Autumn, Winter, Spring),
		formula: -4, compost: 2, manure: 2,
		color: "208",
	},
	Corn: {
		name: "Corn", abbrev: "Cn",
		seasons: avail(Autumn, Spring, Summer),
		formula: 2, compost: -4, manure: 2,
		color: "11",
	},
	Potato: {
		name: "Potato", abbrev: "Po",
		seasons: avail(Autumn, Winter, Spring),
		formula: 2, compost: 2, manure: -4,
		color: "3",
	},
	TomaRoot: {
		name: "Toma Root", abbrev: "TR",
		seasons: avail(Autumn, Spring, Summer),
		formula: -2, compost: -2, manure: 4,
		color: "9",
	},
	Asparagus: {
		name: "Asparagus", abbrev: "As",
		seasons: avail(Winter, Spring),
		formula: 2, compost: -4, manure: 2,
		color: "2",
	},
	Eggplant: {
		name: "Eggplant", abbrev: "Eg",
		seasons: avail(Autumn, Spring),
		formula: 2, compost: 2, manure: -4,
		color: "5",
	},
	Pumpkin: {
		name: "Pumpkin", abbrev: "Pk",
		seasons: avail(Autumn, Winter),
		formula: -4, compost: 2, manure: 2,
		color: "172",
	},
	Watermelon: {
		name: "Watermelon", abbrev: "Wm",
		seasons: avail(Spring, Summer),
		formula: 4, compost: -2, manure: -2,
		color: "10",
	},
	DragonFruit: {
		name: "Dragon Fruit", abbrev: "DF",
		seasons: avail(Spring, Summer),
		formula: 4, compost: 4, manure: -8,
		color: "13",
	},
	Durian: {
		name: "Durian", abbrev: "Du",
		seasons: avail(Spring),
		formula: 4, compost: -8, manure: 4,
		color: "8",
	},
	Garlic: {
		name: "Garlic", abbrev: "Ga",
		seasons: avail(Autumn, Winter, Spring, Summer),
		formula: 4, compost: -8, manure: 4,
		color: "230",
	},
	Onion: {
		name: "Onion", abbrev: "On",
		seasons: avail(Autumn, Spring, Summer),
		formula: -8, compost: 4, manure: 4,
		color: "130",
	},
	Pepper: {
		name: "Pepper", abbrev: "Pe",
		seasons: avail(Autumn, Summer),
		formula: 4, compost: 4, manure: -8,
		color: "1",
	},
	Pomegranate: {
		name: "Pomegranate", abbrev: "Pg",
		seasons: avail(Spring, Summer),
		formula: -8, compost: 4, manure: 4,
		color: "162",
	},
}
