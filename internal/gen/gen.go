// internal/gen/gen.go
package gen

import (
	"errors"
	"math/rand"
)

// Params controls one generation run.
type Params struct {
	Count     int // number of sequences (-n)
	Length    int // bases per sequence (-l)
	GCPercent int // GC content percentage (-gc)
}

// Validate reports the first violated constraint by its flag name.
func (p Params) Validate() error {
	if p.Length <= 0 {
		return errors.New("-l sequence length must be > 0")
	}
	if p.Count <= 0 {
		return errors.New("-n number of sequences must be > 0")
	}
	if p.GCPercent < 0 || p.GCPercent > 100 {
		return errors.New("-gc percentage must be within 0..100")
	}
	return nil
}

// Generator produces random DNA sequences with a fixed GC fraction.
// The randomness source is injected so runs are seedable.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator { return &Generator{rng: rng} }

// Sequence returns length bases with exactly length*gcPercent/100
// (floor) of them G or C and the remainder A or T, in random order.
func (g *Generator) Sequence(length, gcPercent int) []byte {
	// AT scaffold covering length; every position gets overwritten or
	// shuffled below, the dimer only seeds the A/T remainder.
	seq := make([]byte, length)
	for i := range seq {
		if i%2 == 0 {
			seq[i] = 'A'
		} else {
			seq[i] = 'T'
		}
	}

	// Overwrite distinct random positions with G or C, each chosen
	// with equal probability.
	numGC := length * gcPercent / 100
	for _, pos := range g.rng.Perm(length)[:numGC] {
		if g.rng.Intn(2) == 0 {
			seq[pos] = 'G'
		} else {
			seq[pos] = 'C'
		}
	}

	// Shuffle so a 0% GC request is not a bare AT dimer repeat.
	g.rng.Shuffle(length, func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	return seq
}

// ForEach validates p, then emits Count sequences (0-indexed). The
// first emit error aborts the run.
func (g *Generator) ForEach(p Params, emit func(i int, seq []byte) error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i := 0; i < p.Count; i++ {
		if err := emit(i, g.Sequence(p.Length, p.GCPercent)); err != nil {
			return err
		}
	}
	return nil
}
