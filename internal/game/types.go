// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Color / Sequence: a code made of palette colors.
//   - Feedback: exact and misplaced match counts for a guess.
//   - Role: which side the human plays.
//   - Rules: palette, code length and turn budget injected into a game.
//   - State: playing / won / lost.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/mastermind/internal/palette"
)

const (
	DefaultLength = 4
	DefaultTurns  = 12

	MaxLength = 64
	MaxTurns  = 1000
)

// Color is a single peg color, always lowercase.
type Color string

// Sequence is an ordered list of colors, used for both secrets and guesses.
type Sequence []Color

// String joins the colors with single spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both sequences hold the same colors in the same order.
func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Feedback is the score of a guess against the secret.
type Feedback struct {
	Exact     int // right color, right position
	Misplaced int // right color, wrong position
}

func (f Feedback) String() string {
	return fmt.Sprintf("%d exact matches, %d correct color in wrong position", f.Exact, f.Misplaced)
}

// Role is the part the human plays.
type Role int

const (
	// RoleCreator enters the secret code by hand.
	RoleCreator Role = iota + 1
	// RoleGuesser plays against a generated secret.
	RoleGuesser
)

func (r Role) String() string {
	switch r {
	case RoleCreator:
		return "creator"
	case RoleGuesser:
		return "guesser"
	default:
		return "unknown"
	}
}

// ParseRole matches "creator" or "guesser", ignoring case and surrounding space.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "creator":
		return RoleCreator, true
	case "guesser":
		return RoleGuesser, true
	}
	return 0, false
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("invalid rules")

// Rules configures a game. It is fixed for the lifetime of the game.
type Rules struct {
	Palette palette.Palette
	Length  int // colors per code
	Turns   int // guesses allowed
}

// DefaultRules returns the classic 6 colors / 4 pegs / 12 turns setup.
func DefaultRules() (Rules, error) {
	p, err := palette.Default()
	if err != nil {
		return Rules{}, err
	}
	return Rules{Palette: p, Length: DefaultLength, Turns: DefaultTurns}, nil
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Palette.Len() == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidRules)
	case r.Length <= 0 || r.Length > MaxLength:
		return fmt.Errorf("%w: code length must be between 1 and %d, got %d", ErrInvalidRules, MaxLength, r.Length)
	case r.Turns <= 0 || r.Turns > MaxTurns:
		return fmt.Errorf("%w: turn budget must be between 1 and %d, got %d", ErrInvalidRules, MaxTurns, r.Turns)
	}
	return nil
}

// Game holds the state of a single Mastermind game.
type Game struct {
	ID       string     // Unique game identifier (random hex string).
	Role     Role       // Who supplied the secret.
	Rules    Rules      // Palette, length and turn budget.
	Secret   Sequence   // The hidden code; never mutated.
	Guesses  []Sequence // Valid guesses made so far.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.
}
