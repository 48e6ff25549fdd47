package plant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownSeason   = errors.New("unknown season")
	ErrUnknownRatio    = errors.New("unknown crop ratio")
	ErrInvalidFarmSize = errors.New("invalid farm size")
)

// ParseError reports a token that could not be parsed. Err is one of the
// package's sentinel errors.
type ParseError struct {
	Err        error
	Token      string
	Suggestion string // closest valid token, if any was close enough
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v %q (did you mean %q?)", e.Err, e.Token, e.Suggestion)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error, token string, valid []string) *ParseError {
	return &ParseError{Err: err, Token: token, Suggestion: suggest(token, valid)}
}

// suggest picks the valid token closest to token. It only returns a token that
// differs by case or by at most suggestLimit edits.
func suggest(token string, valid []string) string {
	if token == "" {
		return ""
	}
	best, bestDist := "", suggestLimit(len(token))+1
	for _, v := range valid {
		if strings.EqualFold(token, v) {
			return v
		}
		if d := levenshtein.ComputeDistance(token, v); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 3:
		return 1
	default:
		return 2
	}
}
