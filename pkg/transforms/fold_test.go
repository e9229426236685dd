package transforms

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/willbeason/folding/pkg/geometry"
)

func TestFold_Next(t *testing.T) {
	seed := Seed(0.3, 0.4)
	got := Fold{}.Next(seed)

	for i := 0; i < 3; i++ {
		if got[i] != seed[i+1] {
			t.Errorf("v%d: got %v, want old v%d = %v", i, got[i], i+1, seed[i+1])
		}
	}

	// Reflecting v0 across the line through v1 and v3 by projection:
	// folded = v1 + 2*proj_d(v0-v1) - (v0-v1) = (-7s/31) + (-19.5/31)i.
	s := math.Sqrt(0.42)
	want := complex(-7*s/31, -19.5/31)
	if !closeTo(got[3], want) {
		t.Errorf("folded: got %v, want %v", got[3], want)
	}
}

func TestFold_PreservesDistances(t *testing.T) {
	quads := []geometry.Quad{
		Seed(0.3, 0.4),
		Seed(0.1, 0.9),
		Seed(-0.5, 2),
		{complex(1, 1), complex(0, 0), complex(5, 5), complex(2, 0)},
		{complex(-3, 0.5), complex(1, -2), complex(0, 0), complex(4, 7)},
	}

	for _, q := range quads {
		next := Fold{}.Next(q)
		folded := next[3]

		// A reflection fixes every point on its mirror line.
		for _, anchor := range []complex128{q[1], q[3]} {
			before := cmplx.Abs(q[0] - anchor)
			after := cmplx.Abs(folded - anchor)
			if !scalar.EqualWithinAbs(before, after, tolerance) {
				t.Errorf("%v: distance to %v changed from %v to %v", q, anchor, before, after)
			}
		}
	}
}

func TestFold_Involution(t *testing.T) {
	// Reflecting the folded point across the same line recovers v0.
	q := Seed(0.2, 0.7)
	next := Fold{}.Next(q)

	back := Fold{}.Next(geometry.Quad{next[3], q[1], q[2], q[3]})
	if !closeTo(back[3], q[0]) {
		t.Errorf("got %v, want %v", back[3], q[0])
	}
}

func TestFold_Deterministic(t *testing.T) {
	q := Seed(0.37, 0.81)
	for i := 0; i < 50; i++ {
		a := Fold{}.Next(q)
		b := Fold{}.Next(q)
		if a != b {
			t.Fatalf("step %d: %v != %v", i, a, b)
		}
		q = a
	}
}

func TestFold_Degenerate(t *testing.T) {
	// mu = 1 zeroes the square root, and nu = -mu then puts v1 on v3.
	q := Seed(1, -1)
	if !Degenerate(q) {
		t.Fatalf("Degenerate(%v) = false, want true", q)
	}

	next := Fold{}.Next(q)
	if !cmplx.IsNaN(next[3]) {
		t.Errorf("folded vertex = %v, want NaN", next[3])
	}
	for i := 0; i < 3; i++ {
		if next[i] != q[i+1] {
			t.Errorf("v%d: got %v, want %v", i, next[i], q[i+1])
		}
	}

	if Degenerate(Seed(0.3, 0.4)) {
		t.Error("Degenerate(Seed(0.3, 0.4)) = true, want false")
	}
}
