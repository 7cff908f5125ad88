package haar

import (
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestTransform_ParallelMatchesSequential(t *testing.T) {
	batch := testutil.NoiseBatch(31, 33, 64)

	sequential, err := Transform(batch, ModeOrthonormal)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	for _, workers := range []int{0, 2, 4, 16} {
		parallel, err := Transform(batch, ModeOrthonormal, WithWorkers(workers))
		if err != nil {
			t.Fatalf("WithWorkers(%d): %v", workers, err)
		}
		testutil.RequireBatchNearlyEqual(t, parallel, sequential, 0)
	}
}

func TestTransform_MoreWorkersThanRows(t *testing.T) {
	batch := testutil.NoiseBatch(1, 2, 32)

	sequential, err := Transform(batch, ModeClassic)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	parallel, err := Transform(batch, ModeClassic, WithWorkers(16))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	testutil.RequireBatchNearlyEqual(t, parallel, sequential, 0)
}

func TestWithWorkers_SingleRowStaysSequential(t *testing.T) {
	batch := testutil.NoiseBatch(2, 1, 16)

	out, err := Transform(batch, ModeClassic, WithWorkers(8))
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	want, err := Transform(batch, ModeClassic)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	testutil.RequireBatchNearlyEqual(t, out, want, 0)
}
