package lookup

import (
	"reflect"
	"testing"

	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
)

func names(recipes []Recipe) [][]string {
	var rslt [][]string
	for _, r := range recipes {
		var ns []string
		for _, p := range r {
			ns = append(ns, p.Name())
		}
		rslt = append(rslt, ns)
	}
	return rslt
}

func TestCombosCounts(t *testing.T) {
	// -1 means no entry for the pair.
	want := map[plant.CropRatio]map[plant.Season]int{
		plant.OneOne:    {plant.Spring: 3, plant.Summer: -1, plant.Autumn: 2, plant.Winter: -1},
		plant.OneOneOne: {plant.Spring: 11, plant.Summer: 8, plant.Autumn: 6, plant.Winter: 2},
		plant.TwoOne:    {plant.Spring: 3, plant.Summer: 4, plant.Autumn: 1, plant.Winter: -1},
		plant.TwoOneOne: {plant.Spring: 21, plant.Summer: 4, plant.Autumn: 10, plant.Winter: -1},
	}

	for _, ratio := range plant.Ratios() {
		for _, season := range plant.Seasons() {
			recipes, ok := Combos(season, ratio)
			wantCount := want[ratio][season]
			if wantCount < 0 {
				if ok || recipes != nil {
					t.Errorf("Combos(%v, %v) = %d recipes, %v; want absent", season, ratio, len(recipes), ok)
				}
				continue
			}
			if !ok {
				t.Errorf("Combos(%v, %v) is absent, want %d recipes", season, ratio, wantCount)
				continue
			}
			if len(recipes) != wantCount {
				t.Errorf("Combos(%v, %v) returned %d recipes, want %d", season, ratio, len(recipes), wantCount)
			}
		}
	}
}

func TestCombosShape(t *testing.T) {
	for _, ratio := range plant.Ratios() {
		for _, season := range plant.Seasons() {
			recipes, _ := Combos(season, ratio)
			for i, r := range recipes {
				if len(r) != ratio.Slots() {
					t.Errorf("Combos(%v, %v)[%d] = %v has %d plants, want %d", season, ratio, i, r.Abbreviations(), len(r), ratio.Slots())
				}
				if totals := r.Totals(); !totals.Balanced() {
					t.Errorf("Combos(%v, %v)[%d] = %v is unbalanced: %+v", season, ratio, i, r.Abbreviations(), totals)
				}
			}
		}
	}
}

func TestCombosAutumnOneOne(t *testing.T) {
	recipes, ok := Combos(plant.Autumn, plant.OneOne)
	if !ok {
		t.Fatal("Expected recipes for Autumn 1:1")
	}
	want := [][]string{
		{"Toma Root", "Eggplant"},
		{"Toma Root", "Potato"},
	}
	if got := names(recipes); !reflect.DeepEqual(got, want) {
		t.Errorf("Combos(Autumn, 1:1) = %v, want %v", got, want)
	}
}

func TestCombosSummerTwoOneOne(t *testing.T) {
	recipes, ok := Combos(plant.Summer, plant.TwoOneOne)
	if !ok {
		t.Fatal("Expected recipes for Summer 2:1:1")
	}
	want := [][]string{
		{"Corn", "Corn", "Dragon Fruit", "Onion"},
		{"Corn", "Corn", "Dragon Fruit", "Pomegranate"},
		{"Corn", "Corn", "Onion", "Pepper"},
		{"Corn", "Corn", "Pepper", "Pomegranate"},
	}
	if got := names(recipes); !reflect.DeepEqual(got, want) {
		t.Errorf("Combos(Summer, 2:1:1) = %v, want %v", got, want)
	}
}

func TestCombosWinter(t *testing.T) {
	for _, ratio := range []plant.CropRatio{plant.OneOne, plant.TwoOne, plant.TwoOneOne} {
		if _, ok := Combos(plant.Winter, ratio); ok {
			t.Errorf("Combos(Winter, %v) should be absent", ratio)
		}
	}

	recipes, ok := Combos(plant.Winter, plant.OneOneOne)
	if !ok || len(recipes) != 2 {
		t.Fatalf("Combos(Winter, 1:1:1) = %d recipes, %v; want 2", len(recipes), ok)
	}
	if got := recipes[1].Abbreviations(); got != "Po As Pk" {
		t.Errorf("Second Winter 1:1:1 recipe = %q, want %q", got, "Po As Pk")
	}
}

func TestCombosIdempotent(t *testing.T) {
	first, _ := Combos(plant.Spring, plant.TwoOneOne)
	want := names(first)

	// Scribbling over a result must not leak into later lookups.
	for i := range first {
		for j := range first[i] {
			first[i][j] = plant.Pumpkin.Plant()
		}
	}

	for i := 0; i < 3; i++ {
		again, _ := Combos(plant.Spring, plant.TwoOneOne)
		if got := names(again); !reflect.DeepEqual(got, want) {
			t.Fatalf("Combos(Spring, 2:1:1) changed between calls:\n got %v\nwant %v", got, want)
		}
	}
}

func TestRecipeCounts(t *testing.T) {
	r := Recipe{plant.Corn.Plant(), plant.Corn.Plant(), plant.DragonFruit.Plant(), plant.Onion.Plant()}
	got := r.Counts()
	if len(got) != 3 {
		t.Fatalf("Expected 3 distinct plants, got %d", len(got))
	}
	if got[0].Plant.Name() != "Corn" || got[0].Count != 2 {
		t.Errorf("First slot = %s x%d, want Corn x2", got[0].Plant.Name(), got[0].Count)
	}
	if got[2].Plant.Name() != "Onion" || got[2].Count != 1 {
		t.Errorf("Last slot = %s x%d, want Onion x1", got[2].Plant.Name(), got[2].Count)
	}
}

func TestRecipeOutOfSeason(t *testing.T) {
	// Carrot does not grow in Summer; the other two do.
	r := Recipe{plant.Carrot.Plant(), plant.Carrot.Plant(), plant.Watermelon.Plant()}
	got := r.OutOfSeason(plant.Summer)
	if len(got) != 1 || got[0].Name() != "Carrot" {
		t.Errorf("OutOfSeason(Summer) = %v, want [Carrot]", got)
	}
	if got := r.OutOfSeason(plant.Spring); len(got) != 0 {
		t.Errorf("OutOfSeason(Spring) = %v, want none", got)
	}
}
