package plant

import (
	"fmt"
	"strconv"
	"strings"
)

// FarmSize is a rectangular plot measured in planting cells.
type FarmSize struct {
	Width  int
	Height int
}

func (f FarmSize) String() string { return fmt.Sprintf("%dx%d", f.Width, f.Height) }

// ParseFarmSize parses a size written as "<width>x<height>", e.g. "10x10".
// Both dimensions must be positive.
func ParseFarmSize(token string) (FarmSize, error) {
	w, h, ok := strings.Cut(strings.ToLower(token), "x")
	if !ok {
		return FarmSize{}, &ParseError{Err: ErrInvalidFarmSize, Token: token}
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return FarmSize{}, &ParseError{Err: ErrInvalidFarmSize, Token: token}
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return FarmSize{}, &ParseError{Err: ErrInvalidFarmSize, Token: token}
	}
	return FarmSize{Width: width, Height: height}, nil
}
