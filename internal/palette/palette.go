// internal/palette/palette.go
//
// Provides the set of peg colors a code may be built from.
//
// Responsibilities:
//   - Build an ordered, duplicate-free palette from a list of names.
//   - Load the default palette from the embedded colors.txt.
//   - Answer membership queries for the input validator.
//
// Constraints:
//   • Names are normalized to lowercase and trimmed.
//   • A name must be a single word: input is split on whitespace.
//   • Order is preserved; it is the order colors are listed to the player.
//   • A Palette is immutable once built.

package palette

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

//go:embed colors.txt
var embeddedColors string

var (
	// ErrEmpty is returned when a palette would contain no colors.
	ErrEmpty = errors.New("palette: no colors")
	// ErrDuplicate is returned when the same color is listed twice.
	ErrDuplicate = errors.New("palette: duplicate color")
)

// Palette is an ordered set of color names.
type Palette struct {
	colors []string            // display order
	set    map[string]struct{} // lookup
}

// New builds a palette from names, lowercasing and trimming each one.
// Blank names are rejected along with duplicates.
func New(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, ErrEmpty
	}
	p := Palette{
		colors: make([]string, 0, len(colors)),
		set:    make(map[string]struct{}, len(colors)),
	}
	for _, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			return Palette{}, fmt.Errorf("palette: blank color name at position %d", len(p.colors)+1)
		}
		if strings.ContainsFunc(c, unicode.IsSpace) {
			return Palette{}, fmt.Errorf("palette: color %q contains whitespace", c)
		}
		if _, ok := p.set[c]; ok {
			return Palette{}, fmt.Errorf("%w: %q", ErrDuplicate, c)
		}
		p.set[c] = struct{}{}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

var (
	defaultOnce sync.Once
	defaultPal  Palette
	defaultErr  error
)

// Default returns the embedded six-color palette.
// The embedded file is parsed once.
func Default() (Palette, error) {
	defaultOnce.Do(func() {
		defaultPal, defaultErr = New(parseList(embeddedColors))
		if defaultErr != nil {
			defaultErr = fmt.Errorf("palette: embedded colors: %w", defaultErr)
		}
	})
	return defaultPal, defaultErr
}

// parseList reads one color per line, skipping blank lines and # comments.
// Validation is left to New.
func parseList(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Contains reports whether c (already lowercased) is in the palette.
func (p Palette) Contains(c string) bool {
	_, ok := p.set[c]
	return ok
}

// Colors returns a copy of the colors in display order.
func (p Palette) Colors() []string {
	return append([]string(nil), p.colors...)
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.colors) }

// At returns the i-th color.
func (p Palette) At(i int) string { return p.colors[i] }

// String lists the colors separated by ", ".
func (p Palette) String() string { return strings.Join(p.colors, ", ") }
