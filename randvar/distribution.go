package randvar

import (
	"fmt"
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("randvar")

// Epsilon is the tolerance for the probability sum: construction succeeds
// iff |sum - 1| < Epsilon.
const Epsilon = 1e-4

// Distribution is a probability mass function over a finite set of integer
// outcomes. Outcome order is significant: probabilities[i] belongs to
// outcomes[i]. A Distribution is validated atomically at construction and
// never mutated afterwards.
type Distribution struct {
	outcomes      []int
	probabilities []float64
}

// A rule checks one property of the candidate field values. Rules run in
// order and the first failure aborts construction, so later rules may
// assume everything earlier rules established.
type rule func(outcomes []int, probabilities []float64) error

var rules = []rule{checkShape, checkRange, checkSum}

func checkShape(outcomes []int, probabilities []float64) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("%w: need at least one outcome", ErrShapeMismatch)
	}
	if len(outcomes) != len(probabilities) {
		return fmt.Errorf("%w: %d outcomes vs %d probabilities",
			ErrShapeMismatch, len(outcomes), len(probabilities))
	}
	return nil
}

func checkRange(_ []int, probabilities []float64) error {
	for i, p := range probabilities {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: probability %v at index %d outside [0,1]",
				ErrProbability, p, i)
		}
	}
	return nil
}

func checkSum(_ []int, probabilities []float64) error {
	sum := 0.0
	for _, p := range probabilities {
		sum += p
	}
	if math.Abs(sum-1.0) >= Epsilon {
		return fmt.Errorf("%w: sum %v must be within epsilon of 1.0",
			ErrProbability, sum)
	}
	return nil
}

// New builds a Distribution from parallel outcome and probability
// sequences. Validation is eager: a shape mismatch, an out-of-range
// probability or a bad sum fails here, before any sampling can happen.
// The inputs are copied, so the caller keeps ownership of its slices.
func New(outcomes []int, probabilities []float64) (*Distribution, error) {
	d := &Distribution{
		outcomes:      append([]int(nil), outcomes...),
		probabilities: append([]float64(nil), probabilities...),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// FromValues builds a Distribution from dynamically typed sequences, the
// path used when elements arrive from config or other untyped input.
// Elements must be integers (a float element is a type mismatch, not a
// truncation); probability entries must be numeric, anything else is
// reported as a probability error, logged, and returned to the caller.
func FromValues(elements []any, probabilities []any) (*Distribution, error) {
	outs := make([]int, len(elements))
	for i, v := range elements {
		switch n := v.(type) {
		case int:
			outs[i] = n
		case int8:
			outs[i] = int(n)
		case int16:
			outs[i] = int(n)
		case int32:
			outs[i] = int(n)
		case int64:
			outs[i] = int(n)
		default:
			return nil, fmt.Errorf("%w: element %d must be an integer, got %T (%v)",
				ErrTypeMismatch, i, v, v)
		}
	}
	probs := make([]float64, len(probabilities))
	for i, v := range probabilities {
		switch n := v.(type) {
		case float64:
			probs[i] = n
		case float32:
			probs[i] = float64(n)
		case int:
			probs[i] = float64(n)
		default:
			err := fmt.Errorf("%w: probability %d is not numeric, got %T (%v)",
				ErrProbability, i, v, v)
			log.Errorf("probabilities required: %v", err)
			return nil, err
		}
	}
	return New(outs, probs)
}

// Validate re-runs every construction rule. It is idempotent: a
// Distribution produced by New or FromValues always passes.
func (d *Distribution) Validate() error {
	for _, r := range rules {
		if err := r(d.outcomes, d.probabilities); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of outcomes.
func (d *Distribution) Len() int {
	return len(d.outcomes)
}

// Outcomes returns a copy of the outcome sequence in declared order.
func (d *Distribution) Outcomes() []int {
	return append([]int(nil), d.outcomes...)
}

// Probabilities returns a copy of the probability sequence, parallel to
// Outcomes.
func (d *Distribution) Probabilities() []float64 {
	return append([]float64(nil), d.probabilities...)
}
