package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/shortcutmaster/internal/catalog"
)

// Shuffle returns a Fisher-Yates shuffled copy of items. The input is not
// modified, and the same source state always yields the same order.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := append([]T(nil), items...)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// NewRand returns the random source for a session. A zero seed draws a
// fresh one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// BuildQuizSequence filters the catalog by category, shuffles once and
// truncates to min(requested, available).
func BuildQuizSequence(cat *catalog.Catalog, s Settings, r *rand.Rand) ([]catalog.Shortcut, error) {
	pool := cat.Filter(s.Category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("category %q: %w", s.Category, ErrNoTasks)
	}
	seq := Shuffle(pool, r)
	if s.QuestionCount > 0 && s.QuestionCount < len(seq) {
		seq = seq[:s.QuestionCount]
	}
	return seq, nil
}

// PracticalSequence returns the practical tasks in catalog order.
func PracticalSequence(cat *catalog.Catalog) ([]catalog.PracticalTask, error) {
	if len(cat.Practical) == 0 {
		return nil, fmt.Errorf("practical: %w", ErrNoTasks)
	}
	return append([]catalog.PracticalTask(nil), cat.Practical...), nil
}
