package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBatchNearlyEqual fails t if got and want differ in row count or if
// any row pair fails RequireSliceNearlyEqual.
func RequireBatchNearlyEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d: length mismatch: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range got[i] {
			diff := math.Abs(got[i][j] - want[i][j])
			if diff > eps {
				t.Fatalf("row %d index %d: got %v, want %v (diff %v > eps %v)",
					i, j, got[i][j], want[i][j], diff, eps)
			}
		}
	}
}

// RequireNearlyEqual fails t if a and b differ by more than eps relative to
// the larger magnitude (absolute for values near zero).
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	scale := math.Max(math.Abs(got), math.Abs(want))
	if scale > 1 {
		diff /= scale
	}
	if diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// SumSquares returns the plain sum of squares of data, the reference for
// energy comparisons.
func SumSquares(data []float64) float64 {
	total := 0.0
	for _, v := range data {
		total += v * v
	}
	return total
}
