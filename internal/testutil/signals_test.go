package testutil

import "testing"

func TestDeterministicNoise_Reproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}

	c := DeterministicNoise(43, 1.0, 64)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestNoiseBatch_Shape(t *testing.T) {
	b := NoiseBatch(7, 3, 16)
	if len(b) != 3 {
		t.Fatalf("rows: got %d, want 3", len(b))
	}
	for i, row := range b {
		if len(row) != 16 {
			t.Fatalf("row %d: got %d cols, want 16", i, len(row))
		}
	}
}

func TestSpikeWaveform_Biphasic(t *testing.T) {
	w := SpikeWaveform(32, 16, 1.0)
	if w[16] != 0 {
		t.Errorf("zero crossing: got %v, want 0", w[16])
	}
	if w[14] >= 0 || w[18] <= 0 {
		t.Errorf("expected biphasic shape around the crossing, got %v %v", w[14], w[18])
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(4)
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, r[i], want[i])
		}
	}
}
