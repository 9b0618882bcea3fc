package mrbinaer

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner feeds a scripted sequence of inputs into a Queue, one step per
// frame, for demos and automated play-throughs.
//
// Actions: "type" (Text digits, one key each), "key" (Key name), "press",
// "release" and "click" (X, Y), "scroll" (Delta, X, Y), "wait" (Frames) and
// "screenshot" (Label).
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON script. Unknown actions and key names are
// rejected up front rather than skipped at play time.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("mrbinaer: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("mrbinaer: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "type":
			for _, r := range st.Text {
				if _, ok := ParseKey(string(r)); !ok {
					return nil, fmt.Errorf("mrbinaer: parse script: step %d: cannot type %q", i, r)
				}
			}
		case "key":
			if _, ok := ParseKey(st.Key); !ok {
				return nil, fmt.Errorf("mrbinaer: parse script: step %d: unknown key %q", i, st.Key)
			}
		case "press", "release", "click", "scroll", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("mrbinaer: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing this frame's input on q.
// Screenshot steps are requested on s.
func (r *TestRunner) Step(q *Queue, s *Session) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "type":
		for _, c := range st.Text {
			k, _ := ParseKey(string(c))
			q.InjectKey(k)
		}
	case "key":
		k, _ := ParseKey(st.Key)
		q.InjectKey(k)
	case "press":
		q.InjectPress(st.X, st.Y)
	case "release":
		q.InjectRelease(st.X, st.Y)
	case "click":
		q.InjectClick(st.X, st.Y)
	case "scroll":
		q.InjectScroll(st.Delta, st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.RequestScreenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
