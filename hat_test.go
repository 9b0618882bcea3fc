package mrbinaer

import "testing"

func TestSupportHeight(t *testing.T) {
	fig := mustSilhouette(ShapeFigure)
	tree := mustSilhouette(ShapeTree)
	tests := []struct {
		name   string
		x      float64
		s      Silhouette
		want   float64
		wantOK bool
	}{
		{"figure head left", 3, fig, 14, true},
		{"figure head right", 5, fig, 14, true},
		{"tree tier left", 3, tree, 11, true},
		{"straddling edge", 2, Silhouette{{0, 0}, {4, 8}}, 4, true},
		{"vertex only", 4, Silhouette{{0, 0}, {4, 8}}, 8, true},
		{"outside", 20, fig, 0, false},
		{"empty", 1, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SupportHeight(tt.x, tt.s)
			if ok != tt.wantOK || (ok && !approxEqual(got, tt.want, 1e-9)) {
				t.Errorf("SupportHeight(%v) = %v, %v; want %v, %v", tt.x, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStepAnchorSnapsOntoFlatSegment(t *testing.T) {
	// A flat segment at height 6 under an anchor resting within epsilon or
	// below it: the anchor lands exactly on 6 in one step.
	s := Silhouette{{0, 6}, {10, 6}}
	for _, y := range []float64{6, 6.04, 2} {
		got := StepAnchor(Vec2{5, y}, s, 0.05, 0.1)
		if got.Y != 6 {
			t.Errorf("anchor at %v stepped to %v, want 6", y, got.Y)
		}
	}
}

func TestStepAnchorFallsWithoutPassingSupport(t *testing.T) {
	s := Silhouette{{0, 2}, {10, 2}}
	a := Vec2{5, 3}
	prev := a.Y
	for i := 0; i < 100; i++ {
		a = StepAnchor(a, s, 0.05, 0.1)
		if a.Y > 2 && a.Y >= prev {
			t.Fatalf("step %d: height %v did not decrease from %v", i, a.Y, prev)
		}
		if a.Y < 2 {
			t.Fatalf("step %d: height %v fell through support 2", i, a.Y)
		}
		prev = a.Y
	}
	if a.Y != 2 {
		t.Errorf("settled at %v, want 2", a.Y)
	}
}

func TestStepAnchorNoCoverageKeepsHeight(t *testing.T) {
	s := Silhouette{{0, 2}, {1, 2}}
	a := Vec2{5, 7}
	if got := StepAnchor(a, s, 0.05, 0.1); got != a {
		t.Errorf("uncovered anchor moved to %v, want %v", got, a)
	}
}

func TestHatAnchorsOnFigure(t *testing.T) {
	a := NewHatAnchors(3, 5, mustSilhouette(ShapeFigure))
	if a.Left.Y != 14 || a.Right.Y != 14 {
		t.Errorf("anchors = %v, %v; want both at 14", a.Left, a.Right)
	}
	if a.Slope() != 0 {
		t.Errorf("slope = %v, want 0", a.Slope())
	}
}

func TestHatFallsOntoTree(t *testing.T) {
	a := NewHatAnchors(3, 5, mustSilhouette(ShapeFigure))
	tree := mustSilhouette(ShapeTree)
	for i := 0; i < 200; i++ {
		a = a.Step(tree, 0.05, 0.08)
	}
	if !approxEqual(a.Left.Y, 11, 1e-9) || !approxEqual(a.Right.Y, 11, 1e-9) {
		t.Errorf("anchors on tree = %v, %v; want both at 11", a.Left, a.Right)
	}
}

func TestHatAnchorsSlopeAndLerp(t *testing.T) {
	a := HatAnchors{Left: Vec2{0, 0}, Right: Vec2{2, 1}}
	if got := a.Slope(); got != 0.5 {
		t.Errorf("slope = %v, want 0.5", got)
	}
	if got := (HatAnchors{Left: Vec2{1, 0}, Right: Vec2{1, 5}}).Slope(); got != 0 {
		t.Errorf("vertical slope = %v, want 0", got)
	}
	b := HatAnchors{Left: Vec2{10, 10}, Right: Vec2{12, 11}}
	mid := a.Lerp(b, 0.5)
	if mid.Left != (Vec2{5, 5}) || mid.Right != (Vec2{7, 6}) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}

func TestHatStrip(t *testing.T) {
	a := HatAnchors{Left: Vec2{3, 14}, Right: Vec2{5, 14}}
	s := a.Strip(1, 2)
	want := []Vec2{{2, 14}, {6, 14}, {5, 14}, {5, 16}, {3, 16}, {3, 14}}
	if len(s) != len(want) {
		t.Fatalf("strip has %d points, want %d", len(s), len(want))
	}
	for i := range want {
		if !approxEqual(s[i].X, want[i].X, 1e-9) || !approxEqual(s[i].Y, want[i].Y, 1e-9) {
			t.Errorf("strip[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}
