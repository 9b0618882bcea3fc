package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/mrbinaer"
)

var keyMap = map[ebiten.Key]mrbinaer.Key{
	ebiten.KeyDigit0:  mrbinaer.Key0,
	ebiten.KeyDigit1:  mrbinaer.Key1,
	ebiten.KeyDigit2:  mrbinaer.Key2,
	ebiten.KeyDigit3:  mrbinaer.Key3,
	ebiten.KeyDigit4:  mrbinaer.Key4,
	ebiten.KeyDigit5:  mrbinaer.Key5,
	ebiten.KeyDigit6:  mrbinaer.Key6,
	ebiten.KeyDigit7:  mrbinaer.Key7,
	ebiten.KeyDigit8:  mrbinaer.Key8,
	ebiten.KeyDigit9:  mrbinaer.Key9,
	ebiten.KeyNumpad0: mrbinaer.KeyNumpad0,
	ebiten.KeyNumpad1: mrbinaer.KeyNumpad1,
	ebiten.KeyNumpad2: mrbinaer.KeyNumpad2,
	ebiten.KeyNumpad3: mrbinaer.KeyNumpad3,
	ebiten.KeyNumpad4: mrbinaer.KeyNumpad4,
	ebiten.KeyNumpad5: mrbinaer.KeyNumpad5,
	ebiten.KeyNumpad6: mrbinaer.KeyNumpad6,
	ebiten.KeyNumpad7: mrbinaer.KeyNumpad7,
	ebiten.KeyNumpad8: mrbinaer.KeyNumpad8,
	ebiten.KeyNumpad9: mrbinaer.KeyNumpad9,
	ebiten.KeyEscape:  mrbinaer.KeyEscape,
	ebiten.KeyR:       mrbinaer.KeyR,
	ebiten.KeyW:       mrbinaer.KeyW,
	ebiten.KeyJ:       mrbinaer.KeyJ,
	ebiten.KeyH:       mrbinaer.KeyH,
	ebiten.KeyM:       mrbinaer.KeyM,
	ebiten.KeyS:       mrbinaer.KeyS,
	ebiten.KeyF12:     mrbinaer.KeyF12,
}

// KeyFromEbiten translates an Ebitengine key. Keys the game does not use map
// to KeyUnknown.
func KeyFromEbiten(k ebiten.Key) mrbinaer.Key {
	return keyMap[k]
}

var buttonMap = [...]struct {
	eb  ebiten.MouseButton
	own mrbinaer.MouseButton
}{
	{ebiten.MouseButtonLeft, mrbinaer.MouseButtonLeft},
	{ebiten.MouseButtonRight, mrbinaer.MouseButtonRight},
	{ebiten.MouseButtonMiddle, mrbinaer.MouseButtonMiddle},
}

// Input turns Ebitengine's per-tick input state into discrete events.
type Input struct {
	keys   []ebiten.Key
	events []mrbinaer.Event
}

// Poll returns the events of the current tick in a stable order: close,
// keys, buttons, wheel. It implements mrbinaer.EventSource.
func (in *Input) Poll() []mrbinaer.Event {
	in.events = in.events[:0]

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, mrbinaer.Event{Type: mrbinaer.EventClose})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		in.events = append(in.events, mrbinaer.Event{Type: mrbinaer.EventKeyPressed, Key: KeyFromEbiten(k)})
	}

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			in.events = append(in.events, mrbinaer.Event{Type: mrbinaer.EventPointerDown, Button: b.own, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			in.events = append(in.events, mrbinaer.Event{Type: mrbinaer.EventPointerUp, Button: b.own, X: x, Y: y})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		in.events = append(in.events, mrbinaer.Event{Type: mrbinaer.EventWheel, Delta: dy, X: x, Y: y})
	}
	return in.events
}
