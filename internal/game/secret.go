package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/robalobadob/mastermind/internal/palette"
)

// Source picks a uniform index in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a reproducible PCG-backed source.
func NewSeededSource(seed1, seed2 uint64) Source {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewRandomSource returns a PCG source seeded from crypto/rand.
func NewRandomSource() Source {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return NewSeededSource(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// Generator builds random secrets.
type Generator struct {
	src Source
}

// NewGenerator wraps src. A nil src falls back to NewRandomSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewRandomSource()
	}
	return &Generator{src: src}
}

// Generate picks length colors uniformly from p, with replacement.
func (g *Generator) Generate(p palette.Palette, length int) Sequence {
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = Color(p.At(g.src.IntN(p.Len())))
	}
	return seq
}
