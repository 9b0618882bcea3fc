package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/mrbinaer"
)

const sampleRate = beep.SampleRate(48000)

// note is one tone of a cue.
type note struct {
	freq float64
	d    time.Duration
}

var (
	cueConfirm = []note{{880, 50 * time.Millisecond}}
	cueWrong   = []note{{120, 150 * time.Millisecond}}
	cueWon     = []note{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}}
)

// Beeper plays puzzle feedback through the speaker. It implements
// mrbinaer.Feedback and stays silent while sound is disabled in settings.
type Beeper struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	settings *mrbinaer.SettingsStore
	log      *mrbinaer.Logger
}

// NewBeeper initializes the speaker and starts its mixer. settings may be
// nil, in which case sound is always on.
func NewBeeper(settings *mrbinaer.SettingsStore, log *mrbinaer.Logger) (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("term: init speaker: %w", err)
	}
	b := &Beeper{mixer: &beep.Mixer{}, settings: settings, log: log}
	speaker.Play(b.mixer)
	return b, nil
}

// DigitConfirmed plays a short high blip.
func (b *Beeper) DigitConfirmed(int, int) { b.play(cueConfirm) }

// WrongGuess plays a low buzz.
func (b *Beeper) WrongGuess(int) { b.play(cueWrong) }

// Won plays a rising three-note chime.
func (b *Beeper) Won() { b.play(cueWon) }

func (b *Beeper) play(cue []note) {
	if b.settings != nil && !b.settings.Settings().SoundEnabled {
		return
	}
	s, err := cueStreamer(cue)
	if err != nil {
		b.log.Printf("sound: %v", err)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// cueStreamer chains the notes of a cue into one streamer at reduced volume.
func cueStreamer(cue []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cue))
	for _, n := range cue {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.d), tone))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.7}, nil
}

// Close silences the mixer and closes the speaker.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	speaker.Clear()
	speaker.Close()
}
