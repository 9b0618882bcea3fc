package mrbinaer

import "github.com/tanema/gween/ease"

// DigitSlot is one binary digit position shown under the secret.
type DigitSlot struct {
	Text      string // the confirmed digit, or "_" while open
	Hint      string // place value of the position
	Confirmed bool
}

// Frame is everything a frontend needs to draw one frame. Points are screen
// pixels with Y pointing down; Figure and Hat are line strips.
type Frame struct {
	Number      int
	State       Kind
	Figure      []Vec2
	Hat         []Vec2
	Secret      string
	Digits      []DigitSlot
	Screenshots []string
}

// Stage turns the session's animation state into drawable geometry. It owns
// the hat anchors, which are derived from what is drawn and carried from frame
// to frame; the state machine knows nothing about them.
type Stage struct {
	cfg     Config
	figure  Silhouette
	tree    Silhouette
	top     float64
	anchors HatAnchors
	hand    HatAnchors
}

// NewStage prepares a stage with the hat resting on the figure's head.
func NewStage(cfg Config) *Stage {
	figure := mustSilhouette(ShapeFigure)
	return &Stage{
		cfg:     cfg,
		figure:  figure,
		tree:    mustSilhouette(ShapeTree),
		top:     figure.Top(),
		anchors: NewHatAnchors(cfg.Hat.LeftX, cfg.Hat.RightX, figure),
		hand: HatAnchors{
			Left:  Vec2{cfg.Hat.HandX - 1, cfg.Hat.HandY},
			Right: Vec2{cfg.Hat.HandX + 1, cfg.Hat.HandY},
		},
	}
}

// Anchors returns the hat anchors as of the last composed frame.
func (st *Stage) Anchors() HatAnchors {
	return st.anchors
}

// ToModel converts a screen point into model units, ignoring the idle sway.
func (st *Stage) ToModel(p Vec2) Vec2 {
	f := st.cfg.Figure
	return Vec2{
		X: (p.X - f.X) / f.Unit,
		Y: st.top - (p.Y-f.Y)/f.Unit,
	}
}

// toScreen converts a model point into screen pixels, lifted by lift model
// units and offset vertically by sway pixels.
func (st *Stage) toScreen(p Vec2, lift, sway float64) Vec2 {
	f := st.cfg.Figure
	return Vec2{
		X: f.X + p.X*f.Unit,
		Y: f.Y + (st.top-p.Y-lift)*f.Unit + sway,
	}
}

// Body returns the figure's model-space outline for state s at frame: the
// morph or deformation first, then the vertical scale. This is the outline
// the hat rests on.
func (st *Stage) Body(s State, frame int) Silhouette {
	d := st.cfg.Animation.Duration
	t := Progress(s, frame, d)
	body := st.figure.Clone()

	switch v := s.(type) {
	case MorphingToTree:
		body, _ = Interpolate(st.figure, st.tree, t)
	case IsTree:
		body = st.tree.Clone()
	case MorphingFromTree:
		body, _ = Interpolate(st.tree, st.figure, t)
	case DeformingToAvoid:
		body = st.deform(v.At, t)
	case IsDeformedAt:
		body = st.deform(v.At, 1)
	case ReverseDeforming:
		body = st.deform(v.At, 1-t)
	case Waving:
		body = shear(st.figure, WaveShear(t, st.cfg.Figure.WaveShear))
	}

	switch v := s.(type) {
	case Big:
		body = body.ScaleXY(1, v.Scale)
	case Growing:
		body = st.rescale(body, v.From, v.Target, t)
	case Shrinking:
		body = st.rescale(body, v.From, v.Target, t)
	case Melting:
		body = body.ScaleXY(1, 1-t)
	case Melted:
		body = body.ScaleXY(1, 0)
	case Resurrecting:
		body = body.ScaleXY(1, t)
	}
	return body
}

func (st *Stage) deform(at Vec2, t float64) Silhouette {
	d := st.cfg.Deform
	return Deform(st.figure, st.ToModel(at), d.Radius, d.Strength, t)
}

// rescale blends between two vertical scales with an overshooting ease, so
// the figure wobbles past its target before settling.
func (st *Stage) rescale(body Silhouette, from, to, t float64) Silhouette {
	out, _ := Interpolate(body.ScaleXY(1, from), body.ScaleXY(1, to), Eased(ease.OutBack, t))
	return out
}

func shear(s Silhouette, k float64) Silhouette {
	out := s.Clone()
	for i, p := range out {
		out[i].X = p.X + p.Y*k
	}
	return out
}

// hat places the hat for this frame. While the hat is in hand the solved
// anchors are frozen and the drawn hat travels between head and hand.
func (st *Stage) hat(s State, frame int, body Silhouette) HatAnchors {
	t := Progress(s, frame, st.cfg.Animation.Duration)
	switch s.Kind() {
	case KindTakingHat:
		return st.anchors.Lerp(st.hand, t)
	case KindHoldingHat:
		return st.hand
	case KindPuttingHatBack:
		return st.hand.Lerp(st.anchors, t)
	}
	h := st.cfg.Hat
	st.anchors = st.anchors.Step(body, h.Epsilon, h.FallStep)
	return st.anchors
}

// Compose builds the Frame for the session's current state.
func (st *Stage) Compose(s *Session) Frame {
	state, frame := s.state, s.frame
	body := st.Body(state, frame)
	hat := st.hat(state, frame, body)

	var lift float64
	if j, ok := state.(Jumping); ok {
		lift = JumpHeight(Progress(j, frame, st.cfg.Animation.Duration), st.cfg.Figure.JumpHeight)
	}
	sway := Sway(frame, st.cfg.Figure.SwayAmplitude, st.cfg.Figure.SwaySpeed)

	out := Frame{
		Number: frame,
		State:  state.Kind(),
		Figure: make([]Vec2, len(body)),
		Secret: string(s.secret.Decimal),
		Digits: make([]DigitSlot, s.secret.Len()),
	}
	for i, p := range body {
		out.Figure[i] = st.toScreen(p, lift, sway)
	}
	for _, p := range hat.Strip(st.cfg.Hat.Brim, st.cfg.Hat.Crown) {
		out.Hat = append(out.Hat, st.toScreen(p, lift, sway))
	}
	for i := range out.Digits {
		slot := DigitSlot{Text: "_", Hint: s.secret.Hint(i)}
		if i < len(s.confirmed) {
			slot.Text = string(rune('0' + s.confirmed[i]))
			slot.Confirmed = true
		}
		out.Digits[i] = slot
	}
	if len(s.screenshots) > 0 {
		out.Screenshots = s.screenshots
		s.screenshots = nil
	}
	return out
}
