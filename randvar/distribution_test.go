package randvar_test

import (
	"errors"
	"testing"

	"github.com/KurranSteeds/RandomVariable/randvar"
)

func TestNewValid(t *testing.T) {
	d, err := randvar.New([]int{-1, 0, 1, 2, 3}, []float64{0.01, 0.3, 0.58, 0.1, 0.01})
	if err != nil {
		t.Fatalf("want valid distribution, got %v", err)
	}
	if d.Len() != 5 {
		t.Fatalf("want 5 outcomes, got %d", d.Len())
	}
}

func TestSumEpsilonBoundary(t *testing.T) {
	// 1.00009 sits inside the strict 1e-4 tolerance, 1.00011 outside.
	if _, err := randvar.New([]int{1, 2, 3}, []float64{0.5, 0.5, 0.00009}); err != nil {
		t.Fatalf("sum 1.00009: want success, got %v", err)
	}
	_, err := randvar.New([]int{1, 2, 3}, []float64{0.5, 0.5, 0.00011})
	if !errors.Is(err, randvar.ErrProbability) {
		t.Fatalf("sum 1.00011: want ErrProbability, got %v", err)
	}
}

func TestShapeMismatchFailsAtConstruction(t *testing.T) {
	_, err := randvar.New([]int{1, 2}, []float64{0.5})
	if !errors.Is(err, randvar.ErrShapeMismatch) {
		t.Fatalf("want ErrShapeMismatch, got %v", err)
	}
}

func TestEmptyOutcomes(t *testing.T) {
	_, err := randvar.New(nil, nil)
	if !errors.Is(err, randvar.ErrShapeMismatch) {
		t.Fatalf("want ErrShapeMismatch for empty outcomes, got %v", err)
	}
}

func TestOutOfRangeProbability(t *testing.T) {
	_, err := randvar.New([]int{1, 2}, []float64{-0.1, 1.1})
	if !errors.Is(err, randvar.ErrProbability) {
		t.Fatalf("want ErrProbability, got %v", err)
	}
}

func TestFromValuesNonIntegerElement(t *testing.T) {
	_, err := randvar.FromValues([]any{1, 2.5}, []any{0.5, 0.5})
	if !errors.Is(err, randvar.ErrTypeMismatch) {
		t.Fatalf("want ErrTypeMismatch for element 2.5, got %v", err)
	}
}

func TestFromValuesNonNumericProbability(t *testing.T) {
	_, err := randvar.FromValues([]any{1, 2}, []any{"0.5", 0.5})
	if !errors.Is(err, randvar.ErrProbability) {
		t.Fatalf("want ErrProbability for string probability, got %v", err)
	}
}

func TestFromValuesValid(t *testing.T) {
	d, err := randvar.FromValues([]any{int64(1), 2}, []any{0.25, float32(0.75)})
	if err != nil {
		t.Fatalf("want success, got %v", err)
	}
	if got := d.Outcomes(); got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected outcomes %v", got)
	}
}

func TestValidateIdempotent(t *testing.T) {
	d, err := randvar.New([]int{1, 2}, []float64{0.4, 0.6})
	if err != nil {
		t.Fatalf("construction: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := d.Validate(); err != nil {
			t.Fatalf("re-validation %d: %v", i, err)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	d, err := randvar.New([]int{1, 2}, []float64{0.4, 0.6})
	if err != nil {
		t.Fatalf("construction: %v", err)
	}
	d.Outcomes()[0] = 99
	d.Probabilities()[0] = 99
	if err := d.Validate(); err != nil {
		t.Fatalf("mutating accessor results must not affect the distribution: %v", err)
	}
	if d.Outcomes()[0] != 1 {
		t.Fatalf("outcome mutated through accessor")
	}
}
