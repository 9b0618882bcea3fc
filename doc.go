// Package mrbinaer is the engine of a binary-guessing puzzle starring an
// animated snowman.
//
// A round draws a secret in [0, 255] and shows it in decimal. The player
// types its binary digits, most significant first. Every correct digit is
// kept; a wrong one is rejected with feedback. Once all digits are in, the
// snowman morphs into a tree, and clicking the tree morphs it back and wins
// the round.
//
// # Shapes and morphing
//
// Both shapes are [Silhouette] values of equal length whose points share
// index meaning, so [Interpolate] can blend them point by point. Transitions
// are eased with gween's ease functions.
//
// # States
//
// The figure's animation is a [State]. [Advance] is a pure function of the
// state, the frame number and the animation duration; input changes state
// through the [Controller].
//
// # Sessions
//
// A [Session] runs one round frame by frame:
//
//	s := mrbinaer.NewSession(mrbinaer.NewSecret(5), mrbinaer.SessionOptions{})
//	for !s.Stopped() {
//		f := s.Step(events)
//		// draw f
//	}
//
// [Game] hands out sessions until the player quits, and [Run] drives one for
// frontends that own their loop. The window and term packages are such
// frontends.
//
// # Hat
//
// The hat rests on whatever is drawn under its two anchors. [HatAnchors.Step]
// snaps them up onto the outline and lets them fall a little each frame when
// the outline drops away.
package mrbinaer
