package randvar

import "fmt"

// Histogram tallies drawn outcomes per declared outcome value. Counters
// are seeded from the Distribution, so an outcome that is never drawn
// still reports count 0. The total of all counters equals the number of
// observed draws.
type Histogram struct {
	dist   *Distribution
	counts map[int]int
	total  int
}

// NewHistogram returns a Histogram with one zero counter per outcome of d.
func NewHistogram(d *Distribution) *Histogram {
	counts := make(map[int]int, d.Len())
	for _, o := range d.outcomes {
		counts[o] = 0
	}
	return &Histogram{dist: d, counts: counts}
}

// Observe records one drawn value. A value outside the declared outcomes
// is an internal error (the Sampler cannot produce one) and is reported
// as ErrInvariant rather than silently counted.
func (h *Histogram) Observe(v int) error {
	if _, ok := h.counts[v]; !ok {
		return fmt.Errorf("%w: sampled value %d is not a declared outcome", ErrInvariant, v)
	}
	h.counts[v]++
	h.total++
	return nil
}

// Count returns the tally for one outcome.
func (h *Histogram) Count(outcome int) int {
	return h.counts[outcome]
}

// Counts returns a copy of the outcome-to-count mapping.
func (h *Histogram) Counts() map[int]int {
	out := make(map[int]int, len(h.counts))
	for k, v := range h.counts {
		out[k] = v
	}
	return out
}

// Total returns the number of observed draws.
func (h *Histogram) Total() int {
	return h.total
}

// Distribution returns the Distribution the histogram was seeded from.
// Presentation uses it to label counts in declared order.
func (h *Histogram) Distribution() *Distribution {
	return h.dist
}

// Tally draws n outcomes in batch mode and aggregates them.
func Tally(s *Sampler, n int) (*Histogram, error) {
	h := NewHistogram(s.dist)
	for _, v := range s.Batch(n) {
		if err := h.Observe(v); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// TallyLazy aggregates n draws through the lazy sequence, one in-flight
// draw at a time. Same result as Tally, lower memory footprint.
func TallyLazy(s *Sampler, n int) (*Histogram, error) {
	h := NewHistogram(s.dist)
	draws := s.Lazy(n)
	for v, ok := draws.Next(); ok; v, ok = draws.Next() {
		if err := h.Observe(v); err != nil {
			return nil, err
		}
	}
	return h, nil
}
