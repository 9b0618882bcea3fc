package mrbinaer

import "testing"

func TestAdvanceCompletions(t *testing.T) {
	const d = 120
	at := Vec2{10, 20}
	tests := []struct {
		from State
		want State
	}{
		{Waving{Timed{0}}, Idle{}},
		{Jumping{Timed{0}}, Idle{}},
		{TakingHat{Timed{0}}, HoldingHat{}},
		{PuttingHatBack{Timed{0}}, Idle{}},
		{Melting{Timed{0}}, Melted{}},
		{Resurrecting{Timed{0}}, Idle{}},
		{Shrinking{Timed: Timed{0}, From: 2, Target: 1.5}, Big{Scale: 1.5}},
		{Growing{Timed: Timed{0}, From: 1, Target: 1.25}, Big{Scale: 1.25}},
		{MorphingToTree{Timed{0}}, IsTree{}},
		{MorphingFromTree{Timed{0}}, Idle{}},
		{DeformingToAvoid{Timed: Timed{0}, At: at}, IsDeformedAt{At: at}},
		{ReverseDeforming{Timed: Timed{0}, At: at}, Idle{}},
	}
	for _, tt := range tests {
		t.Run(tt.from.Kind().String(), func(t *testing.T) {
			if got := Advance(tt.from, d-1, d); got != tt.from {
				t.Errorf("one frame early: %v, want unchanged", got.Kind())
			}
			if got := Advance(tt.from, d, d); got != tt.want {
				t.Errorf("at duration: %#v, want %#v", got, tt.want)
			}
			if got := Advance(tt.from, d+50, d); got != tt.want {
				t.Errorf("past duration: %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAdvanceRestingStatesUnchanged(t *testing.T) {
	for _, s := range []State{Idle{}, Melted{}, HoldingHat{}, Big{Scale: 2}, IsTree{}, IsDeformedAt{At: Vec2{1, 1}}} {
		if got := Advance(s, 1000, 120); got != s {
			t.Errorf("Advance(%v) = %v, want unchanged", s.Kind(), got.Kind())
		}
	}
}

func TestAdvanceIdempotentWithinFrame(t *testing.T) {
	s := State(MorphingToTree{Timed{5}})
	once := Advance(s, 125, 120)
	twice := Advance(once, 125, 120)
	if once != twice {
		t.Errorf("advancing twice at one frame: %v then %v", once.Kind(), twice.Kind())
	}
}

func TestCompletes(t *testing.T) {
	tests := []struct {
		prev, next State
		want       bool
	}{
		{MorphingFromTree{Timed{0}}, Idle{}, true},
		{MorphingFromTree{Timed{0}}, MorphingFromTree{Timed{0}}, false},
		{Waving{Timed{0}}, Idle{}, false},
		{MorphingToTree{Timed{0}}, IsTree{}, false},
	}
	for _, tt := range tests {
		if got := Completes(tt.prev, tt.next); got != tt.want {
			t.Errorf("Completes(%v, %v) = %v, want %v", tt.prev.Kind(), tt.next.Kind(), got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	s := Melting{Timed{10}}
	tests := []struct {
		frame int
		want  float64
	}{
		{5, 0},
		{10, 0},
		{70, 0.5},
		{130, 1},
		{500, 1},
	}
	for _, tt := range tests {
		if got := Progress(s, tt.frame, 120); got != tt.want {
			t.Errorf("Progress at %d = %v, want %v", tt.frame, got, tt.want)
		}
	}
	if got := Progress(Idle{}, 0, 120); got != 1 {
		t.Errorf("resting Progress = %v, want 1", got)
	}
	if got := Progress(s, 10, 0); got != 1 {
		t.Errorf("zero duration Progress = %v, want 1", got)
	}
}

func TestVerticalScale(t *testing.T) {
	if got := VerticalScale(Big{Scale: 1.5}); got != 1.5 {
		t.Errorf("Big = %v, want 1.5", got)
	}
	if got := VerticalScale(Idle{}); got != 1 {
		t.Errorf("Idle = %v, want 1", got)
	}
}

func TestKindString(t *testing.T) {
	if got := KindMorphingFromTree.String(); got != "MorphingFromTree" {
		t.Errorf("String = %q", got)
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("unknown String = %q", got)
	}
}
