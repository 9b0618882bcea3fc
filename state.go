package mrbinaer

import "fmt"

// Kind names an animation state variant.
type Kind uint8

const (
	KindIdle Kind = iota
	KindMelted
	KindHoldingHat
	KindBig
	KindIsTree
	KindIsDeformedAt
	KindWaving
	KindJumping
	KindTakingHat
	KindPuttingHatBack
	KindMelting
	KindResurrecting
	KindShrinking
	KindGrowing
	KindMorphingToTree
	KindMorphingFromTree
	KindDeformingToAvoid
	KindReverseDeforming
)

var kindNames = [...]string{
	KindIdle:             "Idle",
	KindMelted:           "Melted",
	KindHoldingHat:       "HoldingHat",
	KindBig:              "Big",
	KindIsTree:           "IsTree",
	KindIsDeformedAt:     "IsDeformedAt",
	KindWaving:           "Waving",
	KindJumping:          "Jumping",
	KindTakingHat:        "TakingHat",
	KindPuttingHatBack:   "PuttingHatBack",
	KindMelting:          "Melting",
	KindResurrecting:     "Resurrecting",
	KindShrinking:        "Shrinking",
	KindGrowing:          "Growing",
	KindMorphingToTree:   "MorphingToTree",
	KindMorphingFromTree: "MorphingFromTree",
	KindDeformingToAvoid: "DeformingToAvoid",
	KindReverseDeforming: "ReverseDeforming",
}

// String returns the variant name, as used in logs.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// State is what the figure is doing right now. The set of implementations is
// closed; exactly one State is active per session and a transition always
// replaces it with a new value.
type State interface {
	Kind() Kind
	isState()
}

// Timed is embedded by every transitional state. Start is the frame the
// animation began on.
type Timed struct {
	Start int
}

// StartFrame returns the frame the animation began on.
func (t Timed) StartFrame() int { return t.Start }

// Animated is implemented by every transitional state.
type Animated interface {
	State
	StartFrame() int
}

// --- Resting states ---

// Idle is the figure standing at rest.
type Idle struct{}

// Melted is the figure flattened into a puddle.
type Melted struct{}

// HoldingHat is the figure holding its hat in hand.
type HoldingHat struct{}

// IsTree is the figure turned into a tree after the secret was solved.
type IsTree struct{}

// Big is the figure resting at a vertical scale multiplier.
type Big struct{ Scale float64 }

// IsDeformedAt is the figure resting bent away from a screen point.
type IsDeformedAt struct{ At Vec2 }

// --- Transitional states ---

// Waving sways the figure side to side.
type Waving struct{ Timed }

// Jumping lifts the figure and drops it back.
type Jumping struct{ Timed }

// TakingHat moves the hat from the head to the hand.
type TakingHat struct{ Timed }

// PuttingHatBack moves the hat from the hand to the head.
type PuttingHatBack struct{ Timed }

// Melting shrinks the figure's height to zero.
type Melting struct{ Timed }

// Resurrecting grows a melted figure back to full height.
type Resurrecting struct{ Timed }

// MorphingToTree turns the figure into a tree once the secret is solved.
type MorphingToTree struct{ Timed }

// MorphingFromTree reverts the tree. Its completion ends the session as a win.
type MorphingFromTree struct{ Timed }

// Shrinking animates the vertical scale from From down to Target.
type Shrinking struct {
	Timed
	From, Target float64
}

// Growing animates the vertical scale from From up to Target.
type Growing struct {
	Timed
	From, Target float64
}

// DeformingToAvoid bends the figure away from the screen point At.
type DeformingToAvoid struct {
	Timed
	At Vec2
}

// ReverseDeforming relaxes a deformation around At back to rest.
type ReverseDeforming struct {
	Timed
	At Vec2
}

// Kind methods implement State.

func (Idle) Kind() Kind             { return KindIdle }
func (Melted) Kind() Kind           { return KindMelted }
func (HoldingHat) Kind() Kind       { return KindHoldingHat }
func (Big) Kind() Kind              { return KindBig }
func (IsTree) Kind() Kind           { return KindIsTree }
func (IsDeformedAt) Kind() Kind     { return KindIsDeformedAt }
func (Waving) Kind() Kind           { return KindWaving }
func (Jumping) Kind() Kind          { return KindJumping }
func (TakingHat) Kind() Kind        { return KindTakingHat }
func (PuttingHatBack) Kind() Kind   { return KindPuttingHatBack }
func (Melting) Kind() Kind          { return KindMelting }
func (Resurrecting) Kind() Kind     { return KindResurrecting }
func (Shrinking) Kind() Kind        { return KindShrinking }
func (Growing) Kind() Kind          { return KindGrowing }
func (MorphingToTree) Kind() Kind   { return KindMorphingToTree }
func (MorphingFromTree) Kind() Kind { return KindMorphingFromTree }
func (DeformingToAvoid) Kind() Kind { return KindDeformingToAvoid }
func (ReverseDeforming) Kind() Kind { return KindReverseDeforming }

func (Idle) isState()             {}
func (Melted) isState()           {}
func (HoldingHat) isState()       {}
func (Big) isState()              {}
func (IsTree) isState()           {}
func (IsDeformedAt) isState()     {}
func (Waving) isState()           {}
func (Jumping) isState()          {}
func (TakingHat) isState()        {}
func (PuttingHatBack) isState()   {}
func (Melting) isState()          {}
func (Resurrecting) isState()     {}
func (Shrinking) isState()        {}
func (Growing) isState()          {}
func (MorphingToTree) isState()   {}
func (MorphingFromTree) isState() {}
func (DeformingToAvoid) isState() {}
func (ReverseDeforming) isState() {}

// Advance moves s forward to frame. A transitional state whose duration has
// elapsed (frame-start >= duration) is replaced by its resting successor;
// every other state is returned unchanged. Advance is pure.
func Advance(s State, frame, duration int) State {
	a, ok := s.(Animated)
	if !ok || frame-a.StartFrame() < duration {
		return s
	}
	switch v := s.(type) {
	case Waving, Jumping, PuttingHatBack, Resurrecting, ReverseDeforming, MorphingFromTree:
		return Idle{}
	case TakingHat:
		return HoldingHat{}
	case Melting:
		return Melted{}
	case Shrinking:
		return Big{Scale: v.Target}
	case Growing:
		return Big{Scale: v.Target}
	case MorphingToTree:
		return IsTree{}
	case DeformingToAvoid:
		return IsDeformedAt{At: v.At}
	}
	return s
}

// Completes reports whether the step from prev to next is the reverse tree
// morph finishing, which is the authoritative win signal for a session.
func Completes(prev, next State) bool {
	return prev.Kind() == KindMorphingFromTree && next.Kind() == KindIdle
}

// Progress returns how far a transitional state is through its animation,
// clamped to [0, 1]. Resting states report 1.
func Progress(s State, frame, duration int) float64 {
	a, ok := s.(Animated)
	if !ok {
		return 1
	}
	if duration <= 0 {
		return 1
	}
	t := float64(frame-a.StartFrame()) / float64(duration)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// VerticalScale returns the resting vertical scale multiplier a state implies.
// Only Big carries one; everything else stands at 1.
func VerticalScale(s State) float64 {
	if b, ok := s.(Big); ok {
		return b.Scale
	}
	return 1
}
