package mrbinaer

import (
	"errors"
	"math"
	"testing"
)

func TestInterpolateEndpointsExact(t *testing.T) {
	fig := mustSilhouette(ShapeFigure)
	tree := mustSilhouette(ShapeTree)

	at0, err := Interpolate(fig, tree, 0)
	if err != nil {
		t.Fatal(err)
	}
	at1, err := Interpolate(fig, tree, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range fig {
		if at0[i] != fig[i] {
			t.Errorf("t=0 index %d = %v, want %v", i, at0[i], fig[i])
		}
		if at1[i] != tree[i] {
			t.Errorf("t=1 index %d = %v, want %v", i, at1[i], tree[i])
		}
	}

	at0[0] = Vec2{-1, -1}
	if fig[0] == at0[0] {
		t.Error("t=0 result aliases src")
	}
}

func TestInterpolateMidpointAndExtrapolation(t *testing.T) {
	src := Silhouette{{0, 0}, {10, 4}}
	dst := Silhouette{{10, 0}, {0, 8}}
	tests := []struct {
		t    float64
		want Silhouette
	}{
		{0.5, Silhouette{{5, 0}, {5, 6}}},
		{1.5, Silhouette{{15, 0}, {-5, 10}}},
		{-0.5, Silhouette{{-5, 0}, {15, 2}}},
	}
	for _, tt := range tests {
		got, err := Interpolate(src, dst, tt.t)
		if err != nil {
			t.Fatalf("t=%v: %v", tt.t, err)
		}
		for i := range got {
			if !approxEqual(got[i].X, tt.want[i].X, 1e-9) || !approxEqual(got[i].Y, tt.want[i].Y, 1e-9) {
				t.Errorf("t=%v index %d = %v, want %v", tt.t, i, got[i], tt.want[i])
			}
		}
	}
}

func TestInterpolateLengthMismatch(t *testing.T) {
	_, err := Interpolate(Silhouette{{0, 0}}, Silhouette{{0, 0}, {1, 1}}, 0.5)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestDeform(t *testing.T) {
	s := Silhouette{{0, 0}, {2, 0}, {10, 0}}
	avoid := Vec2{0, 0}

	got := Deform(s, avoid, 4, 2, 1)
	// On the point: pushed straight up by the full strength.
	if got[0] != (Vec2{0, 2}) {
		t.Errorf("point on avoid = %v, want {0 2}", got[0])
	}
	// Halfway to the radius: pushed outward by half the strength.
	if !approxEqual(got[1].X, 3, 1e-9) || got[1].Y != 0 {
		t.Errorf("point at distance 2 = %v, want {3 0}", got[1])
	}
	// Outside the radius: untouched.
	if got[2] != s[2] {
		t.Errorf("point outside radius = %v, want %v", got[2], s[2])
	}

	half := Deform(s, avoid, 4, 2, 0.5)
	if !approxEqual(half[1].X, 2.5, 1e-9) {
		t.Errorf("t=0.5 point at distance 2 = %v, want x 2.5", half[1])
	}

	none := Deform(s, avoid, 4, 2, 0)
	for i := range s {
		if none[i] != s[i] {
			t.Errorf("t=0 index %d moved to %v", i, none[i])
		}
	}
	if s[0] != (Vec2{0, 0}) {
		t.Error("Deform mutated its input")
	}
}

func TestEasedEndpoints(t *testing.T) {
	if got := JumpHeight(0, 3); got != 0 {
		t.Errorf("JumpHeight(0) = %v, want 0", got)
	}
	if got := JumpHeight(0.5, 3); !approxEqual(got, 3, 1e-5) {
		t.Errorf("JumpHeight(0.5) = %v, want 3", got)
	}
	if got := JumpHeight(1, 3); got != 0 {
		t.Errorf("JumpHeight(1) = %v, want 0", got)
	}
	if got := WaveShear(0, 0.2); got != 0 {
		t.Errorf("WaveShear(0) = %v, want 0", got)
	}
	if got := Sway(0, 4, 0.05); got != 0 {
		t.Errorf("Sway(0) = %v, want 0", got)
	}
	if got := Sway(int(math.Round(math.Pi/2/0.05)), 4, 0.05); !approxEqual(got, 4, 1e-2) {
		t.Errorf("Sway at a quarter period = %v, want about 4", got)
	}
}
