// internal/game/engine.go
//
// Core game engine for a single Mastermind game.
// Responsibilities:
//   - Create new games from injected rules and an already-validated secret.
//   - Apply guesses, scoring them against the secret.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Prompting and re-prompting on bad input live in the console package;
//     the engine only sees valid sequences.
//   - randomID() is a compact hex identifier used by the in-memory store.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrGameFinished is returned by ApplyGuess once the game is over.
var ErrGameFinished = errors.New("game finished")

// New constructs a game around secret. The secret must satisfy the rules.
func New(rules Rules, role Role, secret Sequence) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	normalized, err := ValidateSequence(colorsToTokens(secret), rules.Palette, rules.Length)
	if err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return &Game{
		ID:      randomID(),
		Role:    role,
		Rules:   rules,
		Secret:  normalized,
		Guesses: []Sequence{},
	}, nil
}

// ApplyGuess scores a guess and advances the game.
// Returns the feedback, the new state, or an error.
//
// State transitions:
//   - Guess equals the secret → Finished = true, Won = true.
//   - Else if the number of guesses reaches the turn budget → Finished = true (loss).
func (g *Game) ApplyGuess(guess Sequence) (Feedback, State, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrGameFinished
	}
	if len(guess) != g.Rules.Length {
		return Feedback{}, g.State(), ErrInvalidSequence
	}

	fb := Score(g.Secret, guess)
	g.Guesses = append(g.Guesses, append(Sequence(nil), guess...))

	if guess.Equal(g.Secret) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rules.Turns {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// TurnsLeft is the number of guesses still allowed.
func (g *Game) TurnsLeft() int {
	return g.Rules.Turns - len(g.Guesses)
}

func colorsToTokens(s Sequence) []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = string(c)
	}
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
