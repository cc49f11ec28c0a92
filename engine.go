// Package echoai is the command/dialogue interpretation core of the EchoAI
// voice assistant. It takes one utterance at a time (transcribed speech or
// typed text), classifies its emotion and intent, updates persisted session
// state, and emits a single ResponseEvent for the host's rendering
// collaborators. The engine performs no I/O beyond its MemoryStore; speech
// capture, speech synthesis, screen switching, and audio playback live
// behind the interfaces in collaborators.go.
package echoai

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrEmptyInput is returned when an utterance trims to nothing. No event is
// emitted and no state is touched.
var ErrEmptyInput = errors.New("echoai: empty utterance")

const (
	defaultNamespace     = "echoai:default"
	defaultWakeWord      = "echo"
	defaultWakeAck       = "Yes Joshua"
	defaultTranscriptCap = 200

	welcomeBackText  = "Welcome back"
	stopAnnouncement = "Voice control stopped"
)

// Config controls engine construction.
type Config struct {
	// Store is the persistence backend. Nil means in-memory only.
	Store MemoryStore
	// Namespace scopes this session's keys in the store.
	Namespace string

	// Profile is the content library to sample from. Nil means DefaultLibrary.
	Profile *Library

	// WakeWordEnabled gates every utterance behind the wake word. When
	// false (the default profile) every utterance goes straight to the
	// intent matcher.
	WakeWordEnabled bool
	// WakeWord is the trigger token, matched as a substring. Default "echo".
	WakeWord string
	// WakeAck is the spoken acknowledgment on wake. Default "Yes Joshua".
	WakeAck string

	// TranscriptCap bounds the persisted chat transcript. Default 200 lines.
	TranscriptCap int

	// Logger receives diagnostics (storage fallback, dropped utterances).
	// Default zap.NewNop.
	Logger *zap.Logger

	// Rand is the sampling source for content selection. Default is
	// time-seeded; tests inject a fixed seed.
	Rand *rand.Rand
}

// DefaultConfig returns the simple no-wake-word profile.
func DefaultConfig() Config {
	return Config{
		Namespace:     defaultNamespace,
		WakeWord:      defaultWakeWord,
		WakeAck:       defaultWakeAck,
		TranscriptCap: defaultTranscriptCap,
	}
}

// Engine is the dialogue orchestrator. One utterance is handled to
// completion before the next is accepted; concurrent callers serialize on
// the turn lock, which keeps per-turn state updates atomic and preserves
// the wake gate's single-use grant.
type Engine struct {
	mu sync.Mutex

	store      MemoryStore
	namespace  string
	library    *Library
	classifier *Classifier
	matcher    *Matcher
	gate       *wakeGate
	wakeAck    string

	transcriptCap int
	state         SessionState
	rng           *rand.Rand
	log           *zap.Logger
}

// New constructs an engine and runs the session bootstrap: load state (or
// defaults), increment the visit counter, persist. For a returning session
// (visits > 1 after increment) the returned event is a welcome-back
// greeting the host should render before any utterance is processed; for a
// fresh session it is nil.
func New(cfg Config) (*Engine, *ResponseEvent) {
	if cfg.Store == nil {
		cfg.Store = NewInMemoryStore()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = defaultNamespace
	}
	if cfg.Profile == nil {
		cfg.Profile = DefaultLibrary()
	}
	if cfg.WakeWord == "" {
		cfg.WakeWord = defaultWakeWord
	}
	if cfg.WakeAck == "" {
		cfg.WakeAck = defaultWakeAck
	}
	if cfg.TranscriptCap <= 0 {
		cfg.TranscriptCap = defaultTranscriptCap
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		store:         cfg.Store,
		namespace:     cfg.Namespace,
		library:       cfg.Profile,
		classifier:    NewClassifier(),
		matcher:       NewMatcher(),
		wakeAck:       cfg.WakeAck,
		transcriptCap: cfg.TranscriptCap,
		rng:           cfg.Rand,
		log:           cfg.Logger,
	}
	if cfg.WakeWordEnabled {
		e.gate = newWakeGate(cfg.WakeWord)
	}

	state, err := loadState(e.store, e.namespace)
	if err != nil {
		e.log.Warn("session store unavailable, falling back to in-memory state",
			zap.String("namespace", e.namespace), zap.Error(err))
		e.store = NewInMemoryStore()
	}
	e.state = state
	e.state.Visits++
	e.persist()

	if e.state.Visits > 1 {
		return e, newEvent(EventWelcomeBack, welcomeBackText, EmotionNeutral)
	}
	return e, nil
}

// HandleUtterance processes one utterance and returns its ResponseEvent.
//
// Returns (nil, ErrEmptyInput) for blank input and (nil, nil) when the wake
// gate silently drops a dormant-mode utterance. Every other outcome is
// exactly one event.
func (e *Engine) HandleUtterance(raw string) (*ResponseEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	normalized := strings.ToLower(trimmed)

	if e.gate != nil {
		switch e.gate.admit(normalized) {
		case wakeDrop:
			e.log.Debug("dormant, utterance dropped", zap.String("text", trimmed))
			return nil, nil
		case wakeAck:
			ev := newEvent(EventWakeAck, e.wakeAck, EmotionNeutral)
			e.appendTranscript(trimmed, ev.Text)
			return ev, nil
		}
		// wakeForward: the granted command continues through the pipeline.
	}

	emotion := e.classifier.Classify(normalized)
	e.state.LastEmotion = emotion

	intent := e.matcher.Match(normalized)
	ev := e.dispatch(intent, emotion)

	e.appendTranscript(trimmed, ev.Text)
	e.persist()
	return ev, nil
}

func (e *Engine) dispatch(intent Intent, emotion Emotion) *ResponseEvent {
	switch intent.Kind {
	case IntentNavigate:
		e.state.CommandCounts[intent.Page]++
		e.state.FavoritePage = intent.Page
		ev := newEvent(EventNavigate, "Opening "+string(intent.Page), emotion)
		ev.Page = intent.Page
		return ev

	case IntentTellStory:
		story := e.library.PickStory(e.rng)
		ev := newEvent(EventStory, story.Body, emotion)
		ev.Story = &story
		ev.Volume = 1.0
		return ev

	case IntentSuggest:
		return newEvent(EventSpeak, e.library.PickPhrase(e.rng, e.library.Suggestions), emotion)

	case IntentStopVoice:
		// Session state is deliberately left intact; stopping capture is
		// not a reset.
		return newEvent(EventControlStop, stopAnnouncement, emotion)

	case IntentGreeting:
		return newEvent(EventSpeak, e.library.PickPhrase(e.rng, e.library.Greetings), emotion)

	case IntentQuestion:
		return newEvent(EventSpeak, e.library.PickPhrase(e.rng, e.library.Questions), emotion)

	default:
		return newEvent(EventSpeak, e.library.PickPhrase(e.rng, e.library.Generics), emotion)
	}
}

// Shutdown persists the session and returns the control event instructing
// the speech-capture collaborator to stop. Call on graceful host shutdown.
func (e *Engine) Shutdown() *ResponseEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.persist()
	return newEvent(EventControlStop, stopAnnouncement, e.state.LastEmotion)
}

// State returns a copy of the current session state.
func (e *Engine) State() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Transcript returns up to limit of the most recent transcript lines
// (limit <= 0 means all retained lines).
func (e *Engine) Transcript(limit int) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.GetList(e.namespace, transcriptKey, limit)
}

func (e *Engine) persist() {
	if err := saveState(e.store, e.namespace, e.state); err != nil {
		e.log.Warn("session store unavailable, keeping state in memory",
			zap.String("namespace", e.namespace), zap.Error(err))
		e.store = NewInMemoryStore()
		if err := saveState(e.store, e.namespace, e.state); err != nil {
			e.log.Error("in-memory fallback save failed", zap.Error(err))
		}
	}
}

func (e *Engine) appendTranscript(userText, replyText string) {
	ns := e.namespace
	if err := e.store.Append(ns, transcriptKey, "you: "+userText); err != nil {
		e.log.Debug("transcript append failed", zap.Error(err))
		return
	}
	if replyText != "" {
		if err := e.store.Append(ns, transcriptKey, "echo: "+replyText); err != nil {
			e.log.Debug("transcript append failed", zap.Error(err))
		}
	}
	if err := e.store.TrimList(ns, transcriptKey, e.transcriptCap); err != nil {
		e.log.Debug("transcript trim failed", zap.Error(err))
	}
}
