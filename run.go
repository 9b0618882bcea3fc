package mrbinaer

import (
	"context"
	"math/rand/v2"
	"time"
)

// EventSource delivers the input that arrived since the last poll.
type EventSource interface {
	Poll() []Event
}

// Renderer draws composed frames.
type Renderer interface {
	Render(f Frame) error
}

// Run drives s frame by frame until it stops. When tick is non-nil each frame
// waits for it; a nil tick runs unpaced. Cancellation is cooperative: ctx is
// checked once at the end of each frame.
func Run(ctx context.Context, s *Session, src EventSource, r Renderer, tick <-chan time.Time) error {
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		f := s.Step(src.Poll())
		if err := r.Render(f); err != nil {
			return err
		}
		if s.Stopped() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// GameOptions configures a Game. Zero fields fall back to the same defaults
// as SessionOptions; a nil Rand is seeded from the clock.
type GameOptions struct {
	Config   *Config
	Feedback Feedback
	Settings *SettingsStore
	Log      *Logger
	Rand     *rand.Rand
}

// Game hands out one session per play-through, each with a freshly drawn
// secret, until the player quits.
type Game struct {
	opts     SessionOptions
	rng      *rand.Rand
	sessions int
	wins     int
}

// NewGame prepares a game.
func NewGame(opts GameOptions) *Game {
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Game{
		rng: rng,
		opts: SessionOptions{
			Config:   opts.Config,
			Feedback: opts.Feedback,
			Settings: opts.Settings,
			Log:      opts.Log,
			Rand:     rng,
		},
	}
}

// NewSession starts the next play-through with a random secret in [0, 255].
func (g *Game) NewSession() *Session {
	g.sessions++
	return NewSession(NewSecret(uint8(g.rng.IntN(256))), g.opts)
}

// Finish records how a session ended and reports whether another one should
// follow.
func (g *Game) Finish(s *Session) (again bool) {
	if s.Reason() == ReasonWon {
		g.wins++
	}
	g.opts.Log.Printf("session %d ended (%v), %d won so far", g.sessions, s.Reason(), g.wins)
	return !s.UserQuit()
}

// Stats returns how many sessions were started and how many were won.
func (g *Game) Stats() (sessions, wins int) {
	return g.sessions, g.wins
}

// Play runs sessions back to back until the player quits or ctx is done.
// It returns the reason the last session ended.
func (g *Game) Play(ctx context.Context, src EventSource, r Renderer, tick <-chan time.Time) (Reason, error) {
	for {
		s := g.NewSession()
		if err := Run(ctx, s, src, r, tick); err != nil {
			return s.Reason(), err
		}
		if !g.Finish(s) {
			return s.Reason(), nil
		}
	}
}
