package echoai

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ──────────────────────────────────────────────
// Content Profiles — YAML-loadable catalogs
// ──────────────────────────────────────────────

// LoadProfile parses a YAML content profile into a Library. Pools left
// empty in the profile fall back to the built-in defaults, so a profile
// can override just the catalogs it cares about.
func LoadProfile(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse content profile: %w", err)
	}
	for i, st := range lib.Stories {
		if st.Body == "" {
			return nil, fmt.Errorf("content profile: story %q (index %d) has an empty body", st.Title, i)
		}
	}
	defaults := DefaultLibrary()
	if len(lib.Stories) == 0 {
		lib.Stories = defaults.Stories
	}
	if len(lib.Greetings) == 0 {
		lib.Greetings = defaults.Greetings
	}
	if len(lib.Questions) == 0 {
		lib.Questions = defaults.Questions
	}
	if len(lib.Generics) == 0 {
		lib.Generics = defaults.Generics
	}
	if len(lib.Suggestions) == 0 {
		lib.Suggestions = defaults.Suggestions
	}
	if len(lib.FollowUps) == 0 {
		lib.FollowUps = defaults.FollowUps
	}
	if len(lib.Whispers) == 0 {
		lib.Whispers = defaults.Whispers
	}
	if len(lib.Sounds) == 0 {
		lib.Sounds = defaults.Sounds
	}
	return &lib, nil
}
