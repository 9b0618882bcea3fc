package window

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/phanxgames/mrbinaer"
)

const sampleRate = 48000

// Sounds plays short synthesized cues for puzzle feedback. It implements
// mrbinaer.Feedback and stays silent while sound is disabled in settings.
type Sounds struct {
	ctx      *audio.Context
	settings *mrbinaer.SettingsStore
	confirm  []byte
	wrong    []byte
	won      []byte
}

// NewSounds renders the cues once up front. settings may be nil, in which
// case sound is always on.
func NewSounds(settings *mrbinaer.SettingsStore) *Sounds {
	return &Sounds{
		ctx:      audio.NewContext(sampleRate),
		settings: settings,
		confirm:  tone(880, 50*time.Millisecond, 0.3),
		wrong:    tone(120, 150*time.Millisecond, 0.4),
		won: append(append(
			tone(523, 120*time.Millisecond, 0.3),
			tone(659, 120*time.Millisecond, 0.3)...),
			tone(784, 240*time.Millisecond, 0.3)...),
	}
}

// DigitConfirmed plays a short high blip.
func (s *Sounds) DigitConfirmed(int, int) { s.play(s.confirm) }

// WrongGuess plays a low buzz.
func (s *Sounds) WrongGuess(int) { s.play(s.wrong) }

// Won plays a rising three-note chime.
func (s *Sounds) Won() { s.play(s.won) }

func (s *Sounds) play(pcm []byte) {
	if s.settings != nil && !s.settings.Settings().SoundEnabled {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}

// tone renders a sine wave as 16-bit little-endian stereo PCM with a short
// linear fade at both ends to avoid clicks.
func tone(freq float64, d time.Duration, volume float64) []byte {
	n := int(d.Seconds() * sampleRate)
	fade := sampleRate / 200
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * env * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
