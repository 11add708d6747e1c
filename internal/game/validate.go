package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/mastermind/internal/palette"
)

// ErrInvalidSequence means wrong length or unknown color. No finer reason is given.
var ErrInvalidSequence = errors.New("wrong length or unknown color")

// ParseSequence splits a raw input line on whitespace and validates the tokens.
func ParseSequence(line string, p palette.Palette, length int) (Sequence, error) {
	return ValidateSequence(strings.Fields(line), p, length)
}

// ValidateSequence accepts tokens only if there are exactly length of them and
// each one, lowercased, is a palette color. Secrets and guesses share this check.
func ValidateSequence(tokens []string, p palette.Palette, length int) (Sequence, error) {
	if len(tokens) != length {
		return nil, ErrInvalidSequence
	}
	seq := make(Sequence, len(tokens))
	for i, tok := range tokens {
		c := strings.ToLower(tok)
		if !p.Contains(c) {
			return nil, ErrInvalidSequence
		}
		seq[i] = Color(c)
	}
	return seq, nil
}
