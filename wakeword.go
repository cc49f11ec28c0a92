package echoai

import "strings"

// ──────────────────────────────────────────────
// Wake-Word Gate — two-state latch, single-use grant
// ──────────────────────────────────────────────

type wakeDecision int

const (
	// wakeDrop: dormant and no wake word — the utterance is discarded silently.
	wakeDrop wakeDecision = iota
	// wakeAck: wake word detected — acknowledge, do not dispatch this utterance.
	wakeAck
	// wakeForward: the one granted command — dispatch, then revert to dormant.
	wakeForward
)

// wakeGate gates utterances behind a wake word. One wake grants exactly one
// subsequent command: the gate reverts to dormant on the next utterance
// regardless of its content, wake word included. Callers serialize access;
// the engine holds its turn lock around admit.
type wakeGate struct {
	word     string
	awakened bool
}

func newWakeGate(word string) *wakeGate {
	return &wakeGate{word: strings.ToLower(word)}
}

func (g *wakeGate) admit(normalized string) wakeDecision {
	if g.awakened {
		g.awakened = false
		return wakeForward
	}
	if strings.Contains(normalized, g.word) {
		g.awakened = true
		return wakeAck
	}
	return wakeDrop
}
