package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 1 {
		t.Fatalf("got %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestMaxAbsDiff32(t *testing.T) {
	d, err := MaxAbsDiff32([]float32{0, -1}, []float32{0.5, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 2 {
		t.Fatalf("got %v, want 2", d)
	}

	if _, err := MaxAbsDiff32(nil, []float32{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRequireSliceNearlyEqual32PassesWithinTolerance(t *testing.T) {
	got := []float32{1.0000001, 2}
	want := []float32{1, 2}
	RequireSliceNearlyEqual32(t, got, want, 1e-3)
}
