package builder

import (
	"math"
	"math/rand"
	"strconv"
)

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	idFn   func(int) string
	rng    *rand.Rand
	costFn func(*rand.Rand) int64
}

const defaultCost = int64(1)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:   LetterID,
		costFn: func(*rand.Rand) int64 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a BuildGraph run.
type Option func(*config)

// WithIDScheme sets the station naming function: index -> label.
// Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithSeed installs a seeded RNG, making every stochastic choice reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithConstantCost gives every generated edge cost c. Panics if c < 0.
func WithConstantCost(c int64) Option {
	if c < 0 {
		panic("builder: WithConstantCost(c<0)")
	}

	return func(cfg *config) {
		cfg.costFn = func(*rand.Rand) int64 { return c }
	}
}

// WithUniformCost draws each edge cost uniformly from [lo, hi]. Without an
// RNG every edge costs lo. Panics if lo < 0 or hi < lo.
func WithUniformCost(lo, hi int64) Option {
	if lo < 0 || hi < lo {
		panic("builder: WithUniformCost(lo<0 or hi<lo)")
	}

	return func(cfg *config) {
		cfg.costFn = func(r *rand.Rand) int64 {
			if r == nil || hi == lo {
				return lo
			}
			// [0, MaxInt64] has no Int63n bound that fits in an int64.
			if hi-lo == math.MaxInt64 {
				return lo + r.Int63()
			}

			return lo + r.Int63n(hi-lo+1)
		}
	}
}

// LetterID names station idx in spreadsheet-column style:
// 0→"A", 25→"Z", 26→"AA", 27→"AB". Panics if idx < 0.
func LetterID(idx int) string {
	if idx < 0 {
		panic("builder: LetterID(idx<0)")
	}
	var b []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		b = append(b, byte('A'+i%26))
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// PrefixID returns an ID scheme producing prefix+index, e.g. "S0", "S1".
func PrefixID(prefix string) func(int) string {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
