package echoai

import "encoding/json"

// ──────────────────────────────────────────────
// Session State — the only entity with cross-turn persistence
// ──────────────────────────────────────────────

const (
	sessionStateKey = "session_state"
	transcriptKey   = "transcript"
)

// SessionState is the persisted per-session memory, owned exclusively by
// the DialogueEngine. Invariant: CommandCounts[FavoritePage] >= 1 whenever
// FavoritePage is non-empty, because FavoritePage is only ever set by a
// navigation that also increments the counter.
type SessionState struct {
	Visits        int            `json:"visits"`
	LastEmotion   Emotion        `json:"last_emotion"`
	FavoritePage  PageID         `json:"favorite_page,omitempty"`
	CommandCounts map[PageID]int `json:"command_counts"`
}

func defaultSessionState() SessionState {
	return SessionState{
		LastEmotion:   EmotionNeutral,
		CommandCounts: make(map[PageID]int),
	}
}

// clone returns a deep copy so callers can't mutate engine-owned state.
func (s SessionState) clone() SessionState {
	out := s
	out.CommandCounts = make(map[PageID]int, len(s.CommandCounts))
	for k, v := range s.CommandCounts {
		out.CommandCounts[k] = v
	}
	return out
}

// loadState reads SessionState from the store. Absent or corrupt data
// yields defaults; only a store failure is reported as an error so the
// engine can fall back to an in-memory backend.
func loadState(store MemoryStore, namespace string) (SessionState, error) {
	raw, err := store.Get(namespace, sessionStateKey)
	if err != nil {
		return defaultSessionState(), err
	}
	if raw == "" {
		return defaultSessionState(), nil
	}
	var state SessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// Corrupt data is treated as absent, never fatal.
		return defaultSessionState(), nil
	}
	if state.CommandCounts == nil {
		state.CommandCounts = make(map[PageID]int)
	}
	if state.LastEmotion == "" {
		state.LastEmotion = EmotionNeutral
	}
	return state, nil
}

func saveState(store MemoryStore, namespace string, state SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return store.Set(namespace, sessionStateKey, string(data))
}
