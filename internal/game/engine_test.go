package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/mastermind/internal/palette"
)

func defaultRules(t *testing.T) Rules {
	t.Helper()
	r, err := DefaultRules()
	if err != nil {
		t.Fatalf("DefaultRules: %v", err)
	}
	return r
}

func TestValidateSequence(t *testing.T) {
	p, err := palette.Default()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	cases := []struct {
		name string
		line string
		ok   bool
		want string
	}{
		{name: "lowercase", line: "red green blue yellow", ok: true, want: "red green blue yellow"},
		{name: "mixed case", line: "RED Green bLuE yellow", ok: true, want: "red green blue yellow"},
		{name: "extra whitespace", line: "  orange\tpurple  red   red ", ok: true, want: "orange purple red red"},
		{name: "too short", line: "red green blue"},
		{name: "too long", line: "red green blue yellow orange"},
		{name: "unknown color", line: "red green blue black"},
		{name: "empty", line: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseSequence(tc.line, p, 4)
			if !tc.ok {
				if !errors.Is(err, ErrInvalidSequence) {
					t.Fatalf("expected ErrInvalidSequence, got %v (%v)", err, s)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.String() != tc.want {
				t.Fatalf("got %q, want %q", s.String(), tc.want)
			}
		})
	}
}

func TestRulesValidate(t *testing.T) {
	base := defaultRules(t)
	cases := []struct {
		name  string
		mut   func(r *Rules)
		valid bool
	}{
		{name: "defaults", mut: func(r *Rules) {}, valid: true},
		{name: "zero length", mut: func(r *Rules) { r.Length = 0 }},
		{name: "negative turns", mut: func(r *Rules) { r.Turns = -1 }},
		{name: "empty palette", mut: func(r *Rules) { r.Palette = palette.Palette{} }},
		{name: "max length", mut: func(r *Rules) { r.Length = MaxLength }, valid: true},
		{name: "length above cap", mut: func(r *Rules) { r.Length = MaxLength + 1 }},
		{name: "turns above cap", mut: func(r *Rules) { r.Turns = MaxTurns + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := base
			tc.mut(&r)
			err := r.Validate()
			if tc.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidRules) {
				t.Fatalf("expected ErrInvalidRules, got %v", err)
			}
		})
	}
}

func TestNewRejectsBadSecret(t *testing.T) {
	r := defaultRules(t)
	if _, err := New(r, RoleCreator, seq("red", "green")); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected invalid secret error, got %v", err)
	}
	if _, err := New(r, RoleCreator, seq("red", "green", "blue", "black")); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected invalid secret error, got %v", err)
	}
}

func TestNewNormalizesSecret(t *testing.T) {
	g, err := New(defaultRules(t), RoleCreator, seq("RED", "Green", "BLUE", "yellow"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := g.Secret.String(); got != "red green blue yellow" {
		t.Fatalf("secret stored as %q", got)
	}
	_, st, err := g.ApplyGuess(seq("red", "green", "blue", "yellow"))
	if err != nil || st != StateWon {
		t.Fatalf("lowercase guess should win: state=%s err=%v", st, err)
	}
}

func TestApplyGuessWin(t *testing.T) {
	r := defaultRules(t)
	secret := seq("red", "green", "blue", "yellow")
	g, err := New(r, RoleGuesser, secret)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.ID == "" || len(g.ID) != 16 {
		t.Fatalf("unexpected id %q", g.ID)
	}

	fb, st, err := g.ApplyGuess(seq("red", "blue", "green", "purple"))
	if err != nil || st != StatePlaying || fb != (Feedback{Exact: 1, Misplaced: 2}) {
		t.Fatalf("first guess: fb=%+v state=%s err=%v", fb, st, err)
	}
	if g.TurnsLeft() != 11 {
		t.Fatalf("expected 11 turns left, got %d", g.TurnsLeft())
	}

	fb, st, err = g.ApplyGuess(secret)
	if err != nil || st != StateWon || fb.Exact != 4 {
		t.Fatalf("winning guess: fb=%+v state=%s err=%v", fb, st, err)
	}
	if !g.Finished || !g.Won {
		t.Fatalf("expected finished+won, got %+v", g)
	}
	if _, _, err := g.ApplyGuess(secret); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished, got %v", err)
	}
}

func TestApplyGuessExhaustsBudget(t *testing.T) {
	r := defaultRules(t)
	g, err := New(r, RoleGuesser, seq("red", "red", "red", "red"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wrong := seq("blue", "blue", "blue", "blue")
	for i := 1; i <= r.Turns; i++ {
		_, st, err := g.ApplyGuess(wrong)
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		want := StatePlaying
		if i == r.Turns {
			want = StateLost
		}
		if st != want {
			t.Fatalf("turn %d: state %s, want %s", i, st, want)
		}
	}
	if g.TurnsLeft() != 0 || g.Won {
		t.Fatalf("expected lost game with no turns left, got %+v", g)
	}
	if _, _, err := g.ApplyGuess(wrong); !errors.Is(err, ErrGameFinished) {
		t.Fatalf("expected ErrGameFinished after budget, got %v", err)
	}
}

func TestApplyGuessWrongLength(t *testing.T) {
	g, err := New(defaultRules(t), RoleGuesser, seq("red", "red", "red", "red"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := g.ApplyGuess(seq("red")); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
	if len(g.Guesses) != 0 {
		t.Fatalf("invalid guess must not consume a turn")
	}
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{"creator": RoleCreator, " GUESSER ": RoleGuesser, "Creator": RoleCreator}
	for in, want := range cases {
		got, ok := ParseRole(in)
		if !ok || got != want {
			t.Errorf("ParseRole(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	for _, in := range []string{"", "maker", "creators"} {
		if _, ok := ParseRole(in); ok {
			t.Errorf("ParseRole(%q) unexpectedly accepted", in)
		}
	}
	if !strings.EqualFold(RoleGuesser.String(), "guesser") {
		t.Errorf("unexpected role string %q", RoleGuesser.String())
	}
}
