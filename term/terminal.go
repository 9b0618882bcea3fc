package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/mrbinaer"
)

var (
	styleOutline = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSecret  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDigit   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const (
	slotWidth = 5
	// Rows from the bottom edge.
	digitRow = 4
	hintRow  = 3
)

// Terminal draws frames on a tcell screen and collects its input. It
// implements both mrbinaer.Renderer and mrbinaer.EventSource.
type Terminal struct {
	screen        tcell.Screen
	width, height int // game screen size in pixels
	canvas        *Canvas
	translate     *Translator
	events        chan tcell.Event
	quit          chan struct{}
	clock         *mrbinaer.FrameClock
	buf           []mrbinaer.Event
}

// Open initializes screen, enables the mouse and starts reading its events.
// width and height are the game's screen size in pixels.
func Open(screen tcell.Screen, width, height int) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	cols, rows := screen.Size()
	c := NewCanvas(cols, rows, width, height)
	t := &Terminal{
		screen:    screen,
		width:     width,
		height:    height,
		canvas:    c,
		translate: NewTranslator(c),
		events:    make(chan tcell.Event, 100),
		quit:      make(chan struct{}),
		clock:     mrbinaer.NewFrameClock(time.Now()),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until Close.
func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Poll drains the events that arrived since the last call.
func (t *Terminal) Poll() []mrbinaer.Event {
	t.buf = t.buf[:0]
	for {
		select {
		case ev := <-t.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				cols, rows := t.screen.Size()
				t.canvas.Resize(cols, rows, t.width, t.height)
				t.screen.Sync()
				continue
			}
			t.buf = t.translate.Translate(t.buf, ev)
		default:
			return t.buf
		}
	}
}

// Render draws f: the secret and the digit slots, the figure and the hat,
// and a status line with the frame time.
func (t *Terminal) Render(f mrbinaer.Frame) error {
	t.screen.Clear()
	cols, rows := t.canvas.Cols, t.canvas.Rows

	t.text((cols-len(f.Secret))/2, 1, f.Secret, styleSecret)

	left := (cols - slotWidth*len(f.Digits)) / 2
	for i, d := range f.Digits {
		x := left + i*slotWidth + slotWidth/2
		st := styleOpen
		if d.Confirmed {
			st = styleDigit
		}
		t.text(x, rows-digitRow, d.Text, st)
		t.text(x-len(d.Hint)/2, rows-hintRow, d.Hint, styleHint)
	}

	t.canvas.Clear()
	t.canvas.Strip(f.Figure)
	t.canvas.Strip(f.Hat)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if t.canvas.Inked(col, row) {
				t.screen.SetContent(col, row, '█', nil, styleOutline)
			}
		}
	}

	status := mrbinaer.Title(t.clock.Tick(time.Now()))
	t.text(0, rows-1, status+"  "+f.State.String(), styleStatus)

	t.screen.Show()
	return nil
}

func (t *Terminal) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

// Close stops reading events and restores the terminal.
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}
