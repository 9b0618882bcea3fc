package mrbinaer

import "math/rand/v2"

// Reason says why a session ended.
type Reason uint8

const (
	ReasonNone    Reason = iota // still running
	ReasonWon                   // the tree was clicked back into the figure
	ReasonQuit                  // the quit key was pressed
	ReasonRestart               // the restart key was pressed
	ReasonClosed                // the window or terminal was closed
)

// String returns the reason in lower case, as used in logs.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonWon:
		return "won"
	case ReasonQuit:
		return "quit"
	case ReasonRestart:
		return "restart"
	case ReasonClosed:
		return "closed"
	}
	return "unknown"
}

// SessionOptions configures a new Session. Zero fields fall back to defaults:
// DefaultConfig, NopFeedback, no settings, no logging and no random source.
type SessionOptions struct {
	Config   *Config
	Feedback Feedback
	Settings *SettingsStore
	Log      *Logger
	// Rand drives the idle random melt. It is only consulted when
	// Config.Melt.RandomChance > 0.
	Rand *rand.Rand
}

// Session is one play-through: a secret, the digits confirmed so far, the
// figure's animation state and the frame counter. It is owned by a single
// goroutine and mutated only inside Step.
type Session struct {
	secret    Secret
	confirmed []int
	state     State
	frame     int
	duration  int
	stopped   bool
	userQuit  bool
	reason    Reason

	meltChance  float64
	rng         *rand.Rand
	ctrl        *Controller
	stage       *Stage
	log         *Logger
	screenshots []string
}

// NewSession starts a play-through for secret.
func NewSession(secret Secret, opts SessionOptions) *Session {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	fb := opts.Feedback
	if fb == nil {
		fb = NopFeedback{}
	}
	s := &Session{
		secret:     secret,
		confirmed:  make([]int, 0, secret.Len()),
		state:      Idle{},
		duration:   cfg.Animation.Duration,
		meltChance: cfg.Melt.RandomChance,
		rng:        opts.Rand,
		stage:      NewStage(cfg),
		log:        opts.Log,
		ctrl: &Controller{
			grow:     cfg.Grow,
			duration: cfg.Animation.Duration,
			feedback: fb,
			settings: opts.Settings,
			log:      opts.Log,
		},
	}
	s.log.Printf("new session, secret %d", secret.Value)
	return s
}

// Step runs one frame: advance the animation, apply every pending event in
// order, compose the frame to draw, then move the frame counter on.
func (s *Session) Step(events []Event) Frame {
	s.advance()
	for _, ev := range events {
		s.ctrl.Apply(s, ev)
	}
	out := s.stage.Compose(s)
	s.frame++
	return out
}

func (s *Session) advance() {
	prev := s.state
	next := Advance(prev, s.frame, s.duration)
	s.log.logTransition(s.frame, prev, next)
	s.state = next
	if Completes(prev, next) {
		s.ctrl.feedback.Won()
		s.finish(ReasonWon)
		return
	}
	if s.meltChance > 0 && s.rng != nil && next.Kind() == KindIdle && s.rng.Float64() < s.meltChance {
		s.setState(Melting{Timed{s.frame}})
	}
}

func (s *Session) setState(next State) {
	s.log.logTransition(s.frame, s.state, next)
	s.state = next
}

// finish stops the session. The first reason recorded wins.
func (s *Session) finish(r Reason) {
	if s.stopped {
		return
	}
	s.stopped = true
	s.reason = r
	s.log.Printf("session finished: %v", r)
}

// quit stops the session on the player's request. It overrides an earlier
// reason so the process knows to exit.
func (s *Session) quit(r Reason) {
	s.stopped = true
	s.userQuit = true
	s.reason = r
	s.log.Printf("session finished: %v", r)
}

// RequestScreenshot asks the frontend to capture the next composed frame.
func (s *Session) RequestScreenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// Secret returns the number being guessed.
func (s *Session) Secret() Secret { return s.secret }

// Confirmed returns a copy of the digits accepted so far.
func (s *Session) Confirmed() []int {
	out := make([]int, len(s.confirmed))
	copy(out, s.confirmed)
	return out
}

// State returns the current animation state.
func (s *Session) State() State { return s.state }

// Frame returns the number of the next frame to run.
func (s *Session) Frame() int { return s.frame }

// Stopped reports whether the session has ended.
func (s *Session) Stopped() bool { return s.stopped }

// UserQuit reports whether the player asked to leave the game altogether.
func (s *Session) UserQuit() bool { return s.userQuit }

// Reason reports why the session ended.
func (s *Session) Reason() Reason { return s.reason }

// Stage returns the session's render-side stage.
func (s *Session) Stage() *Stage { return s.stage }
