package plant

import "fmt"

// Season is one of the four in-game seasons.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter

	numSeasons = iota
)

var seasonTokens = [numSeasons]string{
	Spring: "Spring",
	Summer: "Summer",
	Autumn: "Autumn",
	Winter: "Winter",
}

// Seasons returns every season in calendar order, starting with Spring.
func Seasons() []Season { return []Season{Spring, Summer, Autumn, Winter} }

func (s Season) valid() bool { return s >= 0 && int(s) < numSeasons }

func (s Season) String() string {
	if !s.valid() {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonTokens[s]
}

// ParseSeason parses one of the canonical season tokens: "Spring", "Summer",
// "Autumn" or "Winter". Matching is exact and case-sensitive.
func ParseSeason(token string) (Season, error) {
	for s, t := range seasonTokens {
		if t == token {
			return Season(s), nil
		}
	}
	return 0, newParseError(ErrUnknownSeason, token, seasonTokens[:])
}

// CropRatio is the proportion in which plant types share a plot, e.g. 2:1:1.
type CropRatio int

const (
	OneOne CropRatio = iota
	OneOneOne
	TwoOne
	TwoOneOne

	numRatios = iota
)

var ratioTokens = [numRatios]string{
	OneOne:    "1:1",
	OneOneOne: "1:1:1",
	TwoOne:    "2:1",
	TwoOneOne: "2:1:1",
}

// Ratios returns every crop ratio.
func Ratios() []CropRatio { return []CropRatio{OneOne, OneOneOne, TwoOne, TwoOneOne} }

func (r CropRatio) valid() bool { return r >= 0 && int(r) < numRatios }

func (r CropRatio) String() string {
	if !r.valid() {
		return fmt.Sprintf("CropRatio(%d)", int(r))
	}
	return ratioTokens[r]
}

// ParseCropRatio parses one of "1:1", "1:1:1", "2:1" or "2:1:1".
func ParseCropRatio(token string) (CropRatio, error) {
	for r, t := range ratioTokens {
		if t == token {
			return CropRatio(r), nil
		}
	}
	return 0, newParseError(ErrUnknownRatio, token, ratioTokens[:])
}

// MinSeedsPerCropType is the fewest seeds of each plant type needed to fill a
// plot at this ratio.
func (r CropRatio) MinSeedsPerCropType() int {
	switch r {
	case OneOne:
		return 4
	case OneOneOne:
		return 12
	case TwoOne:
		return 6
	case TwoOneOne:
		return 8
	}
	panic(fmt.Sprintf("plant: unhandled crop ratio %d", int(r)))
}

// Slots is the length of a recipe at this ratio; doubled plants take two slots.
func (r CropRatio) Slots() int {
	switch r {
	case OneOne:
		return 2
	case OneOneOne, TwoOne:
		return 3
	case TwoOneOne:
		return 4
	}
	panic(fmt.Sprintf("plant: unhandled crop ratio %d", int(r)))
}

// FilledHorizontal is the number of columns of farm planted at this ratio.
func (r CropRatio) FilledHorizontal(farm FarmSize) int {
	switch r {
	case OneOne:
		return farm.Width
	case OneOneOne, TwoOne, TwoOneOne:
		return farm.Width / 2
	}
	panic(fmt.Sprintf("plant: unhandled crop ratio %d", int(r)))
}

// FilledVertical is the number of rows of farm planted at this ratio.
func (r CropRatio) FilledVertical(farm FarmSize) int {
	switch r {
	case OneOne, TwoOne:
		return farm.Height
	case OneOneOne, TwoOneOne:
		return farm.Height / 2
	}
	panic(fmt.Sprintf("plant: unhandled crop ratio %d", int(r)))
}

// FilledTotal is the number of farm cells planted at this ratio.
func (r CropRatio) FilledTotal(farm FarmSize) int {
	return r.FilledHorizontal(farm) * r.FilledVertical(farm)
}
