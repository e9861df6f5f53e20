package randvar

import (
	"math/rand"
	"sync"
)

// Sampler draws outcomes from a Distribution by inverse-CDF selection.
// The Distribution is borrowed read-only; the only state consumed between
// draws is entropy from the supplied generator, so a fixed seed makes a
// run reproducible.
type Sampler struct {
	dist *Distribution
	rng  *rand.Rand
}

// NewSampler wires a Sampler to a validated Distribution and an entropy
// source. The caller owns the seed policy.
func NewSampler(d *Distribution, rng *rand.Rand) *Sampler {
	return &Sampler{dist: d, rng: rng}
}

// Distribution returns the Distribution the Sampler draws from.
func (s *Sampler) Distribution() *Distribution {
	return s.dist
}

// Next draws one outcome: a uniform r in [0,1), then a linear scan of the
// cumulative probabilities in declared order, returning the first outcome
// whose cumulative sum reaches r. O(N) per draw, fine for small N.
func (s *Sampler) Next() int {
	r := s.rng.Float64()
	cdf := 0.0
	for i, p := range s.dist.probabilities {
		cdf += p
		if cdf >= r {
			return s.dist.outcomes[i]
		}
	}
	// Rounding drift can leave the full cumulative sum just under r;
	// the last outcome is the correct answer in that case.
	return s.dist.outcomes[len(s.dist.outcomes)-1]
}

// Batch draws n outcomes eagerly and returns them in draw order.
func (s *Sampler) Batch(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}

// Draws is the lazy counterpart of Batch: a bounded, single-pass sequence
// that computes one outcome per Next call and buffers nothing. Slower per
// element than Batch, cheaper in memory; abandoning it early is fine.
type Draws struct {
	s         *Sampler
	remaining int
}

// Lazy returns a sequence of exactly n on-demand draws. Batch and Lazy
// consume the generator identically, so under the same seed they produce
// the same outcomes in the same order.
func (s *Sampler) Lazy(n int) *Draws {
	return &Draws{s: s, remaining: n}
}

// Next returns the next draw, or false once n draws have been produced.
func (d *Draws) Next() (int, bool) {
	if d.remaining <= 0 {
		return 0, false
	}
	d.remaining--
	return d.s.Next(), true
}

// Remaining reports how many draws are left in the sequence.
func (d *Draws) Remaining() int {
	return d.remaining
}

// BatchParallel draws n outcomes using the given number of workers, each
// with its own generator seeded from seed plus the worker index, so draws
// stay independent without any locking. Each worker fills its own segment
// of the result. The concatenation is not the sequence a single seeded
// Sampler would produce, but every segment is an independent sample of
// the same PMF.
func BatchParallel(d *Distribution, n, workers int, seed int64) []int {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	per := n / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * per
		hi := lo + per
		if w == workers-1 {
			hi = n
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			s := NewSampler(d, rand.New(rand.NewSource(seed+int64(w))))
			for i := lo; i < hi; i++ {
				out[i] = s.Next()
			}
		}(w, lo, hi)
	}
	wg.Wait()
	return out
}
