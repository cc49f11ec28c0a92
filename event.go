package echoai

import "github.com/google/uuid"

// ──────────────────────────────────────────────
// Response Events — the single structured output of one turn
// ──────────────────────────────────────────────

// EventKind classifies a ResponseEvent for the rendering collaborators.
type EventKind string

const (
	// EventSpeak is a spoken/displayed reply (greeting, question, generic, suggestion).
	EventSpeak EventKind = "speak"
	// EventNavigate asks the host to switch screens and carries the spoken acknowledgment.
	EventNavigate EventKind = "navigate"
	// EventStory carries a story body for progressive reveal plus its audio reference.
	EventStory EventKind = "story"
	// EventControlStop instructs the speech-capture collaborator to stop listening.
	EventControlStop EventKind = "control_stop"
	// EventWakeAck acknowledges a detected wake word; the utterance itself is not dispatched.
	EventWakeAck EventKind = "wake_ack"
	// EventWelcomeBack is emitted once at bootstrap for returning sessions.
	EventWelcomeBack EventKind = "welcome_back"
)

// PageID identifies a navigable screen in the host UI.
type PageID string

const (
	PageHome      PageID = "home"
	PageDashboard PageID = "dashboard"
	PageMessages  PageID = "messages"
	PageFriends   PageID = "friends"
	PageProfile   PageID = "profile"
)

// ResponseEvent is the single output of processing one utterance.
// Rendering (speech synthesis, chat log, screen switch, audio) is the
// consumer's job; the engine performs no I/O of its own.
type ResponseEvent struct {
	ID      string    `json:"id"`
	Kind    EventKind `json:"kind"`
	Text    string    `json:"text"`
	Emotion Emotion   `json:"emotion"`
	Rate    float64   `json:"rate"`

	// Navigation events only.
	Page PageID `json:"page,omitempty"`

	// Story events only.
	Story  *Story  `json:"story,omitempty"`
	Volume float64 `json:"volume,omitempty"`
	Loop   bool    `json:"loop,omitempty"`
}

func newEvent(kind EventKind, text string, emotion Emotion) *ResponseEvent {
	return &ResponseEvent{
		ID:      uuid.NewString(),
		Kind:    kind,
		Text:    text,
		Emotion: emotion,
		Rate:    emotion.Rate(),
	}
}
