package randvar

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// ProbSumEpsilon bounds the empirical frequency sum check.
const ProbSumEpsilon = 1e-5

// ConvergenceTolerance is the largest accepted absolute deviation between
// a declared probability and its empirical frequency.
const ConvergenceTolerance = 0.15

// CheckTotal fails unless the histogram counted exactly n draws.
func CheckTotal(h *Histogram, n int) error {
	total := 0
	for _, c := range h.counts {
		total += c
	}
	if total != n {
		return fmt.Errorf("%w: histogram total %d, want %d", ErrInvariant, total, n)
	}
	return nil
}

// CheckProbabilitySum fails unless the empirical frequencies count/n sum
// to 1 within ProbSumEpsilon. Holds by construction when CheckTotal
// holds; kept as an independent guard.
func CheckProbabilitySum(h *Histogram, n int) error {
	sum := 0.0
	for _, c := range h.counts {
		sum += float64(c) / float64(n)
	}
	if math.Abs(sum-1.0) >= ProbSumEpsilon {
		return fmt.Errorf("%w: empirical frequencies sum to %v, want 1.0", ErrProbability, sum)
	}
	return nil
}

// CheckConvergence fails if any outcome's empirical frequency deviates
// from its declared probability by ConvergenceTolerance or more, checked
// in declared order. This is a Law-of-Large-Numbers heuristic: it is only
// meaningful for large n, and even then an unlucky run can trip it. The
// driver gates it behind n > 100000.
func CheckConvergence(h *Histogram, n int) error {
	for i, o := range h.dist.outcomes {
		expected := h.dist.probabilities[i]
		observed := float64(h.counts[o]) / float64(n)
		if math.Abs(expected-observed) >= ConvergenceTolerance {
			return fmt.Errorf("%w: outcome %d drawn with frequency %v, expected %v",
				ErrProbability, o, observed, expected)
		}
	}
	return nil
}

// OutcomeStat describes one outcome's agreement with its declared
// probability. ZScore and PValue use the normal approximation to the
// binomial count; with small n*p they are rough.
type OutcomeStat struct {
	Outcome  int
	Expected float64
	Observed float64

	// Deviation is |Expected - Observed|.
	Deviation float64

	ZScore float64
	PValue float64
}

// Report summarizes a histogram against its distribution.
type Report struct {
	Outcomes []OutcomeStat

	MeanDeviation float64
	MaxDeviation  float64
}

// Summarize computes per-outcome deviations, z-scores and two-sided
// p-values for a histogram of n draws, plus the mean and max absolute
// deviation across outcomes.
func Summarize(h *Histogram, n int) Report {
	if n <= 0 {
		return Report{}
	}
	norm := stats.NormalDist{Mu: 0, Sigma: 1}
	rep := Report{Outcomes: make([]OutcomeStat, 0, h.dist.Len())}
	devs := make([]float64, 0, h.dist.Len())

	for i, o := range h.dist.outcomes {
		p := h.dist.probabilities[i]
		observed := float64(h.counts[o]) / float64(n)
		st := OutcomeStat{
			Outcome:   o,
			Expected:  p,
			Observed:  observed,
			Deviation: math.Abs(p - observed),
			PValue:    1,
		}
		if sd := math.Sqrt(float64(n) * p * (1 - p)); sd > 0 {
			st.ZScore = (float64(h.counts[o]) - float64(n)*p) / sd
			st.PValue = 2 * (1 - norm.CDF(math.Abs(st.ZScore)))
		}
		rep.Outcomes = append(rep.Outcomes, st)
		devs = append(devs, st.Deviation)
	}

	samp := stats.Sample{Xs: devs}
	samp.Sort()
	rep.MeanDeviation = samp.Mean()
	rep.MaxDeviation = samp.Quantile(1)
	return rep
}
