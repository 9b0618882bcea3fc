package mrbinaer

import (
	"math"
	"strconv"
)

// SecretBits is the bit width of every secret; values range over [0, 255].
const SecretBits = 8

// Secret is the number the player has to type in binary. Bits are most
// significant first, which is also the order digits are typed and shown in.
type Secret struct {
	Value   uint8
	Decimal []rune
	Bits    []int
}

// NewSecret derives the display and bit sequences of v.
func NewSecret(v uint8) Secret {
	bits := make([]int, SecretBits)
	for i := range bits {
		bits[i] = int(v>>(SecretBits-1-i)) & 1
	}
	return Secret{
		Value:   v,
		Decimal: []rune(strconv.Itoa(int(v))),
		Bits:    bits,
	}
}

// Len returns the number of digits the player must confirm.
func (s Secret) Len() int {
	return len(s.Bits)
}

// Expect returns the bit expected at index i. ok is false past the end.
func (s Secret) Expect(i int) (bit int, ok bool) {
	if i < 0 || i >= len(s.Bits) {
		return 0, false
	}
	return s.Bits[i], true
}

// Hint returns the place value label shown under digit slot i ("128" ... "1").
func (s Secret) Hint(i int) string {
	return strconv.Itoa(1 << (len(s.Bits) - 1 - i))
}

// Reconstruct folds MSB-first bits back into their value.
func Reconstruct(bits []int) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | b
	}
	return v
}

// Feedback receives observable puzzle events. Frontends use it for sounds;
// none of it affects game state.
type Feedback interface {
	DigitConfirmed(index, digit int)
	WrongGuess(digit int)
	Won()
}

// NopFeedback ignores every event.
type NopFeedback struct{}

// DigitConfirmed does nothing.
func (NopFeedback) DigitConfirmed(int, int) {}

// WrongGuess does nothing.
func (NopFeedback) WrongGuess(int) {}

// Won does nothing.
func (NopFeedback) Won() {}

// Controller turns raw input events into puzzle moves and state
// transitions. It keeps no state of its own: everything it changes lives on
// the Session passed to Apply.
type Controller struct {
	grow     GrowConfig
	duration int
	feedback Feedback
	settings *SettingsStore
	log      *Logger
}

// Apply handles one input event against s. Events with no game meaning are
// ignored.
func (c *Controller) Apply(s *Session, ev Event) {
	switch ev.Type {
	case EventClose:
		s.quit(ReasonClosed)
	case EventKeyPressed:
		c.key(s, ev.Key)
	case EventPointerDown:
		if ev.Button == MouseButtonLeft {
			c.press(s, Vec2{ev.X, ev.Y})
		}
	case EventPointerUp:
		if ev.Button == MouseButtonLeft {
			c.release(s)
		}
	case EventWheel:
		c.scroll(s, ev.Delta)
	}
}

func (c *Controller) key(s *Session, k Key) {
	if d, ok := k.Digit(); ok {
		c.digit(s, d)
		return
	}
	f := s.frame
	switch k {
	case KeyEscape:
		s.quit(ReasonQuit)
	case KeyR:
		s.finish(ReasonRestart)
	case KeyW:
		if s.state.Kind() == KindIdle {
			s.setState(Waving{Timed{f}})
		}
	case KeyJ:
		if s.state.Kind() == KindIdle {
			s.setState(Jumping{Timed{f}})
		}
	case KeyH:
		switch s.state.Kind() {
		case KindIdle:
			s.setState(TakingHat{Timed{f}})
		case KindHoldingHat:
			s.setState(PuttingHatBack{Timed{f}})
		}
	case KeyM:
		switch s.state.Kind() {
		case KindIdle:
			s.setState(Melting{Timed{f}})
		case KindMelted:
			s.setState(Resurrecting{Timed{f}})
		}
	case KeyS:
		if c.settings != nil {
			on := c.settings.ToggleSound()
			c.log.Printf("sound enabled: %v", on)
		}
	case KeyF12:
		s.RequestScreenshot("key")
	}
}

// digit checks a typed digit against the next expected bit. Once every bit is
// confirmed further digits are ignored without feedback.
func (c *Controller) digit(s *Session, d int) {
	n := len(s.confirmed)
	if n >= s.secret.Len() {
		return
	}
	want, _ := s.secret.Expect(n)
	if d != want || s.state.Kind() == KindIsTree {
		c.log.Printf("wrong guess %d at position %d", d, n)
		c.feedback.WrongGuess(d)
		return
	}
	s.confirmed = append(s.confirmed, d)
	c.feedback.DigitConfirmed(n, d)
	if len(s.confirmed) == s.secret.Len() {
		c.log.Printf("secret %d solved", s.secret.Value)
		s.setState(MorphingToTree{Timed{s.frame}})
	}
}

// press bends the figure away from the pointer, or reverts the tree. Only a
// figure standing at rest, or one already bending, can be bent: every other
// animation owns the outline or the hat and would snap if replaced.
func (c *Controller) press(s *Session, at Vec2) {
	switch s.state.Kind() {
	case KindIsTree:
		s.setState(MorphingFromTree{Timed{s.frame}})
	case KindIdle, KindIsDeformedAt, KindDeformingToAvoid, KindReverseDeforming:
		s.setState(DeformingToAvoid{Timed: Timed{s.frame}, At: at})
	}
}

// release relaxes a deformation. A deformation still bending in reverses from
// the point it reached instead of snapping to fully bent.
func (c *Controller) release(s *Session) {
	switch st := s.state.(type) {
	case DeformingToAvoid:
		elapsed := min(s.frame-st.Start, c.duration)
		s.setState(ReverseDeforming{Timed: Timed{s.frame - (c.duration - elapsed)}, At: st.At})
	case IsDeformedAt:
		s.setState(ReverseDeforming{Timed: Timed{s.frame}, At: st.At})
	}
}

func (c *Controller) scroll(s *Session, delta float64) {
	k := s.state.Kind()
	if delta == 0 || (k != KindIdle && k != KindBig) {
		return
	}
	from := VerticalScale(s.state)
	if delta > 0 {
		to := math.Min(from*c.grow.Factor, c.grow.Max)
		if to > from {
			s.setState(Growing{Timed: Timed{s.frame}, From: from, Target: to})
		}
		return
	}
	to := math.Max(from/c.grow.Factor, 1)
	if to < from {
		s.setState(Shrinking{Timed: Timed{s.frame}, From: from, Target: to})
	}
}
