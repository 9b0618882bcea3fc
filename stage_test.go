package mrbinaer

import "testing"

func TestStageScreenModelRoundTrip(t *testing.T) {
	st := NewStage(DefaultConfig())
	for _, p := range []Vec2{{0, 0}, {3, 14}, {-2.5, 7.25}} {
		back := st.ToModel(st.toScreen(p, 0, 0))
		if !approxEqual(back.X, p.X, 1e-9) || !approxEqual(back.Y, p.Y, 1e-9) {
			t.Errorf("round trip %v -> %v", p, back)
		}
	}
	// The head top is drawn at the figure's configured screen Y.
	cfg := DefaultConfig()
	if got := st.toScreen(Vec2{0, 14}, 0, 0).Y; got != cfg.Figure.Y {
		t.Errorf("top Y = %v, want %v", got, cfg.Figure.Y)
	}
}

func TestStageBodyScales(t *testing.T) {
	st := NewStage(DefaultConfig())
	fig := mustSilhouette(ShapeFigure)

	melted := st.Body(Melted{}, 0)
	for i, p := range melted {
		if p.Y != 0 || p.X != fig[i].X {
			t.Fatalf("melted index %d = %v, want flattened", i, p)
		}
	}

	big := st.Body(Big{Scale: 2}, 0)
	if big.Top() != 28 {
		t.Errorf("big top = %v, want 28", big.Top())
	}

	half := st.Body(Melting{Timed{0}}, 60)
	if !approxEqual(half.Top(), 7, 1e-9) {
		t.Errorf("half melted top = %v, want 7", half.Top())
	}
}

func TestStageGrowingOvershoots(t *testing.T) {
	st := NewStage(DefaultConfig())
	g := Growing{Timed: Timed{0}, From: 1, Target: 2}
	peak := 0.0
	for f := 0; f <= 120; f++ {
		peak = max(peak, st.Body(g, f).Top())
	}
	if peak <= 28 {
		t.Errorf("growing peak top = %v, want an overshoot past 28", peak)
	}
	if got := st.Body(g, 120).Top(); !approxEqual(got, 28, 1e-5) {
		t.Errorf("growing end top = %v, want 28", got)
	}
}

func TestStageMorphEndpoints(t *testing.T) {
	st := NewStage(DefaultConfig())
	tree := mustSilhouette(ShapeTree)
	end := st.Body(MorphingToTree{Timed{0}}, 120)
	for i := range tree {
		if end[i] != tree[i] {
			t.Fatalf("morph end index %d = %v, want %v", i, end[i], tree[i])
		}
	}
	start := st.Body(MorphingFromTree{Timed{0}}, 0)
	for i := range tree {
		if start[i] != tree[i] {
			t.Fatalf("reverse morph start index %d = %v, want %v", i, start[i], tree[i])
		}
	}
}

func TestStageDeformAvoidsPointer(t *testing.T) {
	st := NewStage(DefaultConfig())
	fig := mustSilhouette(ShapeFigure)
	// Pointer just left of the head: the head's left side is pushed right.
	at := st.toScreen(Vec2{-1, 11}, 0, 0)
	bent := st.Body(IsDeformedAt{At: at}, 0)
	if bent[3].X <= fig[3].X {
		t.Errorf("head side %v not pushed away from %v", bent[3], st.ToModel(at))
	}
	relaxed := st.Body(ReverseDeforming{Timed: Timed{0}, At: at}, 120)
	for i := range fig {
		if relaxed[i] != fig[i] {
			t.Fatalf("relaxed index %d = %v, want %v", i, relaxed[i], fig[i])
		}
	}
}

func TestStageJumpLiftsFigure(t *testing.T) {
	s, _ := newTestSession(5)
	rest := s.Step(nil)
	s.Step([]Event{keyEvent(KeyJ)})
	stepN(s, 59)
	mid := s.Step(nil) // frame 61, jump started at 1
	sway := func(f Frame) float64 {
		cfg := DefaultConfig()
		return Sway(f.Number, cfg.Figure.SwayAmplitude, cfg.Figure.SwaySpeed)
	}
	restY := rest.Figure[12].Y - sway(rest)
	midY := mid.Figure[12].Y - sway(mid)
	if midY >= restY {
		t.Errorf("mid-jump foot at %v, want above rest %v", midY, restY)
	}
}
