// internal/console/console.go
//
// Line-oriented front end for a Mastermind game.
// Responsibilities:
//   - Ask which role the player takes and obtain the secret (typed or generated).
//   - Prompt for guesses, re-prompting on invalid input without spending a turn.
//   - Print feedback after each wrong guess and the win / loss message at the end.
//
// Notes:
//   - Input and output are plain io.Reader / io.Writer so tests can script a game.
//   - Diagnostics go to the injected zerolog.Logger, never to the game output.
//   - When the input ends while a prompt is waiting, Play returns ErrInputClosed.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
)

// ErrInputClosed is returned when the input stream ends mid-game.
var ErrInputClosed = errors.New("input closed")

const (
	rolePrompt    = "Do you want to create the secret code or guess it? (creator/guesser): "
	roleWarning   = "Invalid choice. Please enter 'creator' or 'guesser'."
	examplePrompt = " (e.g., red green blue yellow): "
)

// Config wires a Console.
type Config struct {
	Rules     game.Rules
	Generator *game.Generator // nil → crypto-seeded generator
	In        io.Reader
	Out       io.Writer
	Logger    zerolog.Logger
	Color     bool // wrap color names in ANSI escapes
}

// Console plays games over a pair of line streams.
type Console struct {
	rules game.Rules
	gen   *game.Generator
	in    *bufio.Reader
	out   io.Writer
	log   zerolog.Logger
	paint colorstring.Colorize
}

// New validates the rules and builds a Console.
func New(cfg Config) (*Console, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("console: input and output are required")
	}
	gen := cfg.Generator
	if gen == nil {
		gen = game.NewGenerator(nil)
	}
	return &Console{
		rules: cfg.Rules,
		gen:   gen,
		in:    bufio.NewReader(cfg.In),
		out:   cfg.Out,
		log:   cfg.Logger,
		paint: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !cfg.Color,
			Reset:   true,
		},
	}, nil
}

// Play runs one complete game: role choice, secret, then up to Rules.Turns guesses.
// The returned game is nil only if the input closed before the secret was set.
func (c *Console) Play() (*game.Game, error) {
	role, err := c.chooseRole()
	if err != nil {
		return nil, err
	}
	secret, err := c.acquireSecret(role)
	if err != nil {
		return nil, err
	}
	g, err := game.New(c.rules, role, secret)
	if err != nil {
		return nil, err
	}
	c.log.Info().Str("game", g.ID).Stringer("role", role).
		Stringer("palette", c.rules.Palette).Int("turns", c.rules.Turns).Msg("game started")

	c.intro()
	for turn := 1; !g.Finished; turn++ {
		c.printf("Turn %d:\n", turn)
		guess, err := c.readSequence("Enter your guess", "Invalid guess")
		if err != nil {
			c.log.Warn().Str("game", g.ID).Int("turn", turn).Msg("input closed while waiting for a guess")
			return g, err
		}
		fb, state, err := g.ApplyGuess(guess)
		if err != nil {
			return g, err
		}
		c.log.Debug().Str("game", g.ID).Int("turn", turn).
			Int("exact", fb.Exact).Int("misplaced", fb.Misplaced).Int("turns_left", g.TurnsLeft()).Msg("guess scored")
		if state == game.StateWon {
			c.printf("Congratulations! You guessed the secret code: %s\n", c.render(g.Secret))
			c.log.Info().Str("game", g.ID).Int("guesses", len(g.Guesses)).Msg("game won")
			return g, nil
		}
		c.printf("Feedback: %s\n\n", fb)
	}

	c.printf("Sorry, you've run out of turns. The secret code was: %s\n", c.render(g.Secret))
	c.log.Info().Str("game", g.ID).Msg("game lost")
	return g, nil
}

func (c *Console) chooseRole() (game.Role, error) {
	for {
		c.printf("%s", rolePrompt)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		if role, ok := game.ParseRole(line); ok {
			return role, nil
		}
		c.printf("%s\n", roleWarning)
	}
}

func (c *Console) acquireSecret(role game.Role) (game.Sequence, error) {
	if role == game.RoleCreator {
		return c.readSequence("Enter the secret code", "Invalid code")
	}
	return c.gen.Generate(c.rules.Palette, c.rules.Length), nil
}

// readSequence prompts until the validator accepts a line.
func (c *Console) readSequence(prompt, warning string) (game.Sequence, error) {
	for {
		c.printf("%s%s", prompt, examplePrompt)
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}
		seq, err := game.ParseSequence(line, c.rules.Palette, c.rules.Length)
		if err == nil {
			return seq, nil
		}
		c.log.Debug().Int("bytes", len(line)).Msg("rejected sequence")
		c.printf("%s. Please enter %d valid colors.\n", warning, c.rules.Length)
	}
}

func (c *Console) intro() {
	colors := c.rules.Palette.Colors()
	for i, name := range colors {
		colors[i] = c.paintColor(name)
	}
	c.printf("Welcome to Mastermind!\n")
	c.printf("Try to guess the secret code, consisting of %d colors.\n", c.rules.Length)
	c.printf("Valid colors are: %s\n", strings.Join(colors, ", "))
	c.printf("You have %d turns. Let's begin!\n\n", c.rules.Turns)
}

// readLine returns the next line without its terminator. Lines of any length
// are accepted; a final line with no newline still counts.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
