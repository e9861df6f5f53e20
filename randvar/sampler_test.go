package randvar_test

import (
	"math/rand"
	"testing"

	"github.com/KurranSteeds/RandomVariable/randvar"
)

func mustDist(t *testing.T, outcomes []int, probabilities []float64) *randvar.Distribution {
	t.Helper()
	d, err := randvar.New(outcomes, probabilities)
	if err != nil {
		t.Fatalf("construction: %v", err)
	}
	return d
}

func TestSingleOutcomeAlwaysDrawn(t *testing.T) {
	d := mustDist(t, []int{5}, []float64{1.0})
	s := randvar.NewSampler(d, rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		if got := s.Next(); got != 5 {
			t.Fatalf("draw %d: want 5, got %d", i, got)
		}
	}
}

func TestBatchLazyEquivalence(t *testing.T) {
	d := mustDist(t, []int{-1, 0, 1, 2, 3}, []float64{0.01, 0.3, 0.58, 0.1, 0.01})
	batch := randvar.NewSampler(d, rand.New(rand.NewSource(42))).Batch(200)

	draws := randvar.NewSampler(d, rand.New(rand.NewSource(42))).Lazy(200)
	i := 0
	for v, ok := draws.Next(); ok; v, ok = draws.Next() {
		if v != batch[i] {
			t.Fatalf("draw %d: lazy %d != batch %d", i, v, batch[i])
		}
		i++
	}
	if i != 200 {
		t.Fatalf("lazy sequence produced %d draws, want 200", i)
	}
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	d := mustDist(t, []int{1, 2, 3}, []float64{0.2, 0.3, 0.5})
	a := randvar.NewSampler(d, rand.New(rand.NewSource(99))).Batch(100)
	b := randvar.NewSampler(d, rand.New(rand.NewSource(99))).Batch(100)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d: %d != %d under the same seed", i, a[i], b[i])
		}
	}
}

func TestLazyIsBounded(t *testing.T) {
	d := mustDist(t, []int{1, 2}, []float64{0.5, 0.5})
	draws := randvar.NewSampler(d, rand.New(rand.NewSource(1))).Lazy(3)
	if draws.Remaining() != 3 {
		t.Fatalf("want 3 remaining, got %d", draws.Remaining())
	}
	for i := 0; i < 3; i++ {
		if _, ok := draws.Next(); !ok {
			t.Fatalf("draw %d: sequence ended early", i)
		}
	}
	if _, ok := draws.Next(); ok {
		t.Fatalf("sequence exceeded its bound")
	}
}

func TestBatchZero(t *testing.T) {
	d := mustDist(t, []int{1}, []float64{1.0})
	if got := randvar.NewSampler(d, rand.New(rand.NewSource(1))).Batch(0); len(got) != 0 {
		t.Fatalf("want empty batch, got %v", got)
	}
}

// maxSource pins the uniform draw just below 1.0, so a probability sum
// slightly under 1 (still within epsilon) never reaches it and the
// sampler must fall back to the last outcome.
type maxSource struct{}

func (maxSource) Int63() int64 { return int64((uint64(1) << 63) - (1 << 40)) }
func (maxSource) Seed(int64)   {}

func TestFallbackToLastOutcome(t *testing.T) {
	d := mustDist(t, []int{10, 20}, []float64{0.5, 0.49995})
	s := randvar.NewSampler(d, rand.New(maxSource{}))
	if got := s.Next(); got != 20 {
		t.Fatalf("want fallback to last outcome 20, got %d", got)
	}
}

func TestBatchParallel(t *testing.T) {
	d := mustDist(t, []int{1, 2, 3}, []float64{0.2, 0.3, 0.5})
	declared := map[int]bool{1: true, 2: true, 3: true}

	for _, tc := range []struct{ n, workers int }{
		{1000, 4},
		{3, 10},
		{5, 0},
		{0, 4},
	} {
		got := randvar.BatchParallel(d, tc.n, tc.workers, 42)
		if len(got) != tc.n {
			t.Fatalf("n=%d workers=%d: got %d draws", tc.n, tc.workers, len(got))
		}
		for i, v := range got {
			if !declared[v] {
				t.Fatalf("n=%d workers=%d: draw %d is undeclared value %d", tc.n, tc.workers, i, v)
			}
		}
	}
}
