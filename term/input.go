package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/mrbinaer"
)

var runeKeys = map[rune]mrbinaer.Key{
	'0': mrbinaer.Key0, '1': mrbinaer.Key1, '2': mrbinaer.Key2,
	'3': mrbinaer.Key3, '4': mrbinaer.Key4, '5': mrbinaer.Key5,
	'6': mrbinaer.Key6, '7': mrbinaer.Key7, '8': mrbinaer.Key8,
	'9': mrbinaer.Key9,
	'r': mrbinaer.KeyR, 'R': mrbinaer.KeyR,
	'w': mrbinaer.KeyW, 'W': mrbinaer.KeyW,
	'j': mrbinaer.KeyJ, 'J': mrbinaer.KeyJ,
	'h': mrbinaer.KeyH, 'H': mrbinaer.KeyH,
	'm': mrbinaer.KeyM, 'M': mrbinaer.KeyM,
	's': mrbinaer.KeyS, 'S': mrbinaer.KeyS,
}

// KeyFromTcell maps a tcell key event to a game key. Terminals cannot tell
// numpad digits from top-row digits, so both arrive as Key0..Key9.
func KeyFromTcell(ev *tcell.EventKey) mrbinaer.Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return runeKeys[ev.Rune()]
	case tcell.KeyEscape:
		return mrbinaer.KeyEscape
	case tcell.KeyF12:
		return mrbinaer.KeyF12
	}
	return mrbinaer.KeyUnknown
}

// Translator turns tcell events into game events. Mouse positions are
// converted from cells to screen pixels through the canvas, and button
// state is tracked so that presses and releases come out as edges.
type Translator struct {
	canvas  *Canvas
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator that maps cells through c.
func NewTranslator(c *Canvas) *Translator {
	return &Translator{canvas: c}
}

// Translate appends the game events for ev to dst. Ctrl-C counts as closing
// the terminal.
func (t *Translator) Translate(dst []mrbinaer.Event, ev tcell.Event) []mrbinaer.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return append(dst, mrbinaer.Event{Type: mrbinaer.EventClose})
		}
		if k := KeyFromTcell(ev); k != mrbinaer.KeyUnknown {
			dst = append(dst, mrbinaer.Event{Type: mrbinaer.EventKeyPressed, Key: k})
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := t.canvas.ToScreen(col, row)
		btns := ev.Buttons()
		switch {
		case btns&tcell.WheelUp != 0:
			dst = append(dst, mrbinaer.Event{Type: mrbinaer.EventWheel, X: p.X, Y: p.Y, Delta: 1})
		case btns&tcell.WheelDown != 0:
			dst = append(dst, mrbinaer.Event{Type: mrbinaer.EventWheel, X: p.X, Y: p.Y, Delta: -1})
		}
		dst = t.edge(dst, btns, tcell.Button1, mrbinaer.MouseButtonLeft, p)
		dst = t.edge(dst, btns, tcell.Button2, mrbinaer.MouseButtonRight, p)
		dst = t.edge(dst, btns, tcell.Button3, mrbinaer.MouseButtonMiddle, p)
		t.buttons = btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	}
	return dst
}

func (t *Translator) edge(dst []mrbinaer.Event, now, mask tcell.ButtonMask, b mrbinaer.MouseButton, p mrbinaer.Vec2) []mrbinaer.Event {
	was := t.buttons&mask != 0
	is := now&mask != 0
	switch {
	case is && !was:
		dst = append(dst, mrbinaer.Event{Type: mrbinaer.EventPointerDown, Button: b, X: p.X, Y: p.Y})
	case was && !is:
		dst = append(dst, mrbinaer.Event{Type: mrbinaer.EventPointerUp, Button: b, X: p.X, Y: p.Y})
	}
	return dst
}
