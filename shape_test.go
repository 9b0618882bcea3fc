package mrbinaer

import (
	"errors"
	"testing"
)

func TestRestShapesShareLength(t *testing.T) {
	for _, name := range []ShapeName{ShapeFigure, ShapeTree} {
		s, err := GetSilhouette(name)
		if err != nil {
			t.Fatalf("GetSilhouette(%v): %v", name, err)
		}
		if len(s) != SilhouetteLen {
			t.Errorf("%v has %d points, want %d", name, len(s), SilhouetteLen)
		}
	}
}

func TestRestShapesShareAnatomy(t *testing.T) {
	fig := mustSilhouette(ShapeFigure)
	tree := mustSilhouette(ShapeTree)
	// The strip starts and the head closes on the neck point in both shapes.
	for _, i := range []int{0, 1, 9} {
		if fig[i] != tree[i] {
			t.Errorf("index %d: figure %v, tree %v, want the shared neck point", i, fig[i], tree[i])
		}
	}
	if fig.Top() <= fig[0].Y || tree.Top() <= tree[0].Y {
		t.Error("head and crown should rise above the neck")
	}
}

func TestGetSilhouetteReturnsCopy(t *testing.T) {
	a := mustSilhouette(ShapeFigure)
	a[0] = Vec2{99, 99}
	b := mustSilhouette(ShapeFigure)
	if b[0] == a[0] {
		t.Error("mutating a returned silhouette changed the rest shape")
	}
}

func TestGetSilhouetteUnknown(t *testing.T) {
	if _, err := GetSilhouette(ShapeName(42)); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
}

func TestSilhouetteAddSub(t *testing.T) {
	a := Silhouette{{1, 2}, {3, 4}}
	b := Silhouette{{1, 1}, {2, 2}}
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum[1] != (Vec2{5, 6}) {
		t.Errorf("sum[1] = %v, want {5 6}", sum[1])
	}
	diff, err := a.Sub(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff[0] != (Vec2{0, 1}) {
		t.Errorf("diff[0] = %v, want {0 1}", diff[0])
	}

	if _, err := a.Add(Silhouette{{0, 0}}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Add mismatch err = %v, want ErrLengthMismatch", err)
	}
	if _, err := a.Sub(nil); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Sub mismatch err = %v, want ErrLengthMismatch", err)
	}
}

func TestSilhouetteScale(t *testing.T) {
	s := Silhouette{{1, 2}, {-3, 4}}
	if got := s.Scale(2)[1]; got != (Vec2{-6, 8}) {
		t.Errorf("Scale(2)[1] = %v, want {-6 8}", got)
	}
	if got := s.ScaleXY(1, 0.5)[0]; got != (Vec2{1, 1}) {
		t.Errorf("ScaleXY(1, 0.5)[0] = %v, want {1 1}", got)
	}
	if s[0] != (Vec2{1, 2}) {
		t.Error("Scale mutated its receiver")
	}
}

func TestSilhouetteBounds(t *testing.T) {
	fig := mustSilhouette(ShapeFigure)
	want := Rect{X: 0, Y: 0, Width: 8, Height: 14}
	if got := fig.Bounds(); got != want {
		t.Errorf("figure bounds = %+v, want %+v", got, want)
	}
	if got := mustSilhouette(ShapeTree).Top(); got != 15 {
		t.Errorf("tree top = %v, want 15", got)
	}
	if got := (Silhouette{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty bounds = %+v, want zero", got)
	}
}
