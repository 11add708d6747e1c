package console

import (
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
)

// ansiCodes maps peg colors to colorstring codes. Terminals have no orange or
// purple, so the nearest standard colors stand in.
var ansiCodes = map[string]string{
	"red":    "red",
	"green":  "green",
	"blue":   "blue",
	"yellow": "yellow",
	"orange": "light_red",
	"purple": "magenta",
}

func (c *Console) paintColor(name string) string {
	code, ok := ansiCodes[name]
	if !ok {
		return name
	}
	return c.paint.Color("[" + code + "]" + name)
}

func (c *Console) render(s game.Sequence) string {
	parts := make([]string, len(s))
	for i, col := range s {
		parts[i] = c.paintColor(string(col))
	}
	return strings.Join(parts, " ")
}
