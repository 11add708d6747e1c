// Command mastermind plays Mastermind on the console.
//
// The player either types a secret code for someone else to break (creator)
// or breaks a generated one (guesser). Flags fall back to environment
// variables, and a .env file in the working directory is loaded first.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/palette"
	"github.com/robalobadob/mastermind/internal/store"
)

const version = "1.0.0"

// now is swapped in tests that pin the daily secret.
var now = time.Now

func main() {
	_ = godotenv.Load()

	cmd := newCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("mastermind exited")
		os.Exit(1)
	}
}

func newCommand(in io.Reader, out, errOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "mastermind",
		Usage:     "break (or set) a secret code of colored pegs",
		Version:   version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "turns",
				Value:   game.DefaultTurns,
				Usage:   "guesses allowed per game",
				Sources: cli.EnvVars("MASTERMIND_TURNS"),
			},
			&cli.IntFlag{
				Name:    "length",
				Value:   game.DefaultLength,
				Usage:   "colors per code",
				Sources: cli.EnvVars("MASTERMIND_LENGTH"),
			},
			&cli.StringSliceFlag{
				Name:    "palette",
				Usage:   "colors to play with (default: red, green, blue, yellow, orange, purple)",
				Sources: cli.EnvVars("MASTERMIND_PALETTE"),
			},
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "seed for generated codes; 0 picks a random one",
				Sources: cli.EnvVars("MASTERMIND_SEED"),
			},
			&cli.BoolFlag{
				Name:    "daily",
				Usage:   "generate the same code for everyone on the same UTC day",
				Sources: cli.EnvVars("MASTERMIND_DAILY"),
			},
			&cli.StringFlag{
				Name:    "daily-salt",
				Value:   "mastermind",
				Usage:   "salt mixed into the daily code",
				Sources: cli.EnvVars("MASTERMIND_DAILY_SALT"),
			},
			&cli.IntFlag{
				Name:    "rounds",
				Value:   1,
				Usage:   "games to play in a row",
				Sources: cli.EnvVars("MASTERMIND_ROUNDS"),
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "show color names in color",
				Sources: cli.EnvVars("MASTERMIND_COLOR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "diagnostic log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	setupLogger(cmd.String("log-level"), cmd.ErrWriter)

	rules, err := rulesFromFlags(cmd)
	if err != nil {
		return err
	}
	gen, err := generatorFromFlags(cmd)
	if err != nil {
		return err
	}

	c, err := console.New(console.Config{
		Rules:     rules,
		Generator: gen,
		In:        cmd.Reader,
		Out:       cmd.Writer,
		Logger:    log.Logger,
		Color:     cmd.Bool("color"),
	})
	if err != nil {
		return err
	}

	_, err = console.NewSession(c, store.NewMemoryStore()).Run(ctx, cmd.Int("rounds"))
	if errors.Is(err, console.ErrInputClosed) {
		log.Warn().Msg("input closed before the game finished")
	}
	return err
}

// setupLogger sends diagnostics to w: human-readable on a terminal, JSON otherwise.
func setupLogger(level string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
}

func rulesFromFlags(cmd *cli.Command) (game.Rules, error) {
	var (
		p   palette.Palette
		err error
	)
	if cmd.IsSet("palette") {
		p, err = palette.New(cmd.StringSlice("palette"))
	} else {
		p, err = palette.Default()
	}
	if err != nil {
		return game.Rules{}, err
	}
	r := game.Rules{Palette: p, Length: cmd.Int("length"), Turns: cmd.Int("turns")}
	if err := r.Validate(); err != nil {
		return game.Rules{}, err
	}
	return r, nil
}

func generatorFromFlags(cmd *cli.Command) (*game.Generator, error) {
	switch {
	case cmd.Bool("daily"):
		today := now()
		s1, s2, err := daily.Seed(today, cmd.String("daily-salt"))
		if err != nil {
			return nil, err
		}
		log.Info().Str("date", daily.DateKey(today)).Msg("using daily code")
		return game.NewGenerator(game.NewSeededSource(s1, s2)), nil
	case cmd.Int("seed") != 0:
		seed := cmd.Int("seed")
		log.Info().Int("seed", seed).Msg("using fixed seed")
		return game.NewGenerator(game.NewSeededSource(uint64(seed), uint64(seed))), nil
	default:
		return game.NewGenerator(nil), nil
	}
}
