package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ravenclaw900/dst-farming-ui/internal/config"
	"github.com/ravenclaw900/dst-farming-ui/internal/lookup"
	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
)

// Walks every season and ratio and reports recipes that look wrong: the wrong
// number of plants, unbalanced nutrients, or plants that do not grow in the
// season they are listed under. Out-of-season plants are reported but not an
// error; the dataset lists a few on purpose.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.Logger()

	problems := 0
	for _, ratio := range plant.Ratios() {
		fmt.Printf("--- %s (min %d seeds per crop type) ---\n", ratio, ratio.MinSeedsPerCropType())
		for _, season := range plant.Seasons() {
			recipes, ok := lookup.Combos(season, ratio)
			if !ok {
				fmt.Printf("%-6s  none\n", season)
				continue
			}
			fmt.Printf("%-6s  %d recipes\n", season, len(recipes))

			for i, r := range recipes {
				if len(r) != ratio.Slots() {
					fmt.Printf("  #%d %s: %d plants, want %d\n", i+1, r.Abbreviations(), len(r), ratio.Slots())
					problems++
				}
				if totals := r.Totals(); !totals.Balanced() {
					fmt.Printf("  #%d %s: unbalanced %+v\n", i+1, r.Abbreviations(), totals)
					problems++
				}
				for _, p := range r.OutOfSeason(season) {
					logger.Warn("plant listed out of season", "season", season, "ratio", ratio, "recipe", r.Abbreviations(), "plant", p.Name())
				}
			}
		}
	}

	if problems > 0 {
		fmt.Printf("Found %d problems.\n", problems)
		os.Exit(1)
	}
	fmt.Println("Dataset OK.")
}
