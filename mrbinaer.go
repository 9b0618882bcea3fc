package mrbinaer

import "errors"

// Vec2 is a 2D vector used for silhouette points, anchors and pointer
// positions. Model-space vectors have Y pointing up; screen-space vectors
// (pointer events, composed frames) have Y pointing down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by k.
func (v Vec2) Mul(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

var (
	// ErrLengthMismatch is returned when two silhouettes of different
	// cardinality are combined index by index.
	ErrLengthMismatch = errors.New("mrbinaer: silhouette length mismatch")
	// ErrUnknownShape is returned for a shape name with no rest silhouette.
	ErrUnknownShape = errors.New("mrbinaer: unknown shape")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("mrbinaer: invalid config")
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Key identifies a key the game reacts to. Frontends translate their native
// key codes into these; anything else arrives as KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyEscape // quit
	KeyR      // restart
	KeyW      // wave
	KeyJ      // jump
	KeyH      // take or put back the hat
	KeyM      // melt or resurrect
	KeyS      // toggle sound
	KeyF12    // screenshot
)

// Digit returns the decimal digit a key types. Top-row and numpad digits map
// identically. ok is false for non-digit keys.
func (k Key) Digit() (digit int, ok bool) {
	switch {
	case k >= Key0 && k <= Key9:
		return int(k - Key0), true
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return int(k - KeyNumpad0), true
	}
	return 0, false
}

var keyNames = map[string]Key{
	"0": Key0, "1": Key1, "2": Key2, "3": Key3, "4": Key4,
	"5": Key5, "6": Key6, "7": Key7, "8": Key8, "9": Key9,
	"escape": KeyEscape, "r": KeyR, "w": KeyW, "j": KeyJ,
	"h": KeyH, "m": KeyM, "s": KeyS, "f12": KeyF12,
}

// ParseKey resolves a lowercase key name as used in test scripts.
func ParseKey(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// EventType identifies a kind of input event.
type EventType uint8

const (
	EventClose         EventType = iota // window or terminal closed
	EventPointerDown                    // a pointer button was pressed
	EventPointerUp                      // a pointer button was released
	EventWheel                          // the mouse wheel scrolled
	EventKeyPressed                     // a key was pressed
)

// Event is one raw input event delivered by a frontend. X and Y are screen
// coordinates.
type Event struct {
	Type   EventType
	Button MouseButton
	Key    Key
	X, Y   float64
	Delta  float64 // wheel delta, positive is away from the user
}
