package echoai

import "testing"

func TestWakeGate_OneShotGrant(t *testing.T) {
	g := newWakeGate("echo")

	// U1: wake word detected, acknowledged, not forwarded.
	if d := g.admit("hey echo"); d != wakeAck {
		t.Fatalf("U1: got %v, want ack", d)
	}
	// U2: the single granted command, forwarded.
	if d := g.admit("open home"); d != wakeForward {
		t.Fatalf("U2: got %v, want forward", d)
	}
	// U3: identical to U2, gated again.
	if d := g.admit("open home"); d != wakeDrop {
		t.Fatalf("U3: got %v, want drop", d)
	}
}

func TestWakeGate_GrantConsumedEvenByWakeWord(t *testing.T) {
	g := newWakeGate("echo")
	g.admit("echo")
	// The granted command contains the wake word; it is still forwarded
	// and the grant is spent, not renewed.
	if d := g.admit("echo open home"); d != wakeForward {
		t.Fatalf("expected forward, got %v", d)
	}
	if d := g.admit("open home"); d != wakeDrop {
		t.Fatalf("expected drop after grant spent, got %v", d)
	}
}

func TestWakeGate_DormantDrop(t *testing.T) {
	g := newWakeGate("echo")
	for _, text := range []string{"hello", "open home", "tell me a story"} {
		if d := g.admit(text); d != wakeDrop {
			t.Fatalf("admit(%q) = %v, want drop", text, d)
		}
	}
}
