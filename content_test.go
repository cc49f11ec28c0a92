package echoai

import (
	"math/rand"
	"testing"
)

func TestDefaultLibrary_PoolsPopulated(t *testing.T) {
	lib := DefaultLibrary()
	if len(lib.Stories) == 0 {
		t.Fatal("no stories")
	}
	for _, st := range lib.Stories {
		if st.Body == "" {
			t.Fatalf("story %q has empty body", st.Title)
		}
	}
	pools := map[string][]string{
		"greetings":   lib.Greetings,
		"questions":   lib.Questions,
		"generics":    lib.Generics,
		"suggestions": lib.Suggestions,
		"follow_ups":  lib.FollowUps,
		"whispers":    lib.Whispers,
	}
	for name, pool := range pools {
		if len(pool) == 0 {
			t.Fatalf("pool %s is empty", name)
		}
	}
}

func TestPickStory_ReturnsLibraryEntry(t *testing.T) {
	lib := DefaultLibrary()
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		st := lib.PickStory(r)
		found := false
		for _, candidate := range lib.Stories {
			if candidate.Title == st.Title && candidate.Body == st.Body {
				found = true
			}
		}
		if !found {
			t.Fatalf("picked story not in library: %+v", st)
		}
	}
}

func TestPickPhrase_EmptyPool(t *testing.T) {
	lib := DefaultLibrary()
	r := rand.New(rand.NewSource(1))
	if got := lib.PickPhrase(r, nil); got != "" {
		t.Fatalf("expected empty string for empty pool, got %q", got)
	}
}

func TestLoadProfile_OverridesAndDefaults(t *testing.T) {
	profile := []byte(`
greetings:
  - "Hello, commander."
stories:
  - title: "Tiny"
    body: "A very short story."
    audio_ref: "audio/tiny.mp3"
`)
	lib, err := LoadProfile(profile)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if len(lib.Greetings) != 1 || lib.Greetings[0] != "Hello, commander." {
		t.Fatalf("greetings not overridden: %v", lib.Greetings)
	}
	if len(lib.Stories) != 1 || lib.Stories[0].AudioRef != "audio/tiny.mp3" {
		t.Fatalf("stories not overridden: %+v", lib.Stories)
	}
	// Untouched pools fall back to defaults.
	if len(lib.Generics) == 0 || len(lib.Suggestions) == 0 {
		t.Fatal("expected default pools for unset sections")
	}
}

func TestLoadProfile_RejectsEmptyStoryBody(t *testing.T) {
	profile := []byte(`
stories:
  - title: "Hollow"
    body: ""
`)
	if _, err := LoadProfile(profile); err == nil {
		t.Fatal("expected error for empty story body")
	}
}

func TestLoadProfile_RejectsBadYAML(t *testing.T) {
	if _, err := LoadProfile([]byte("stories: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
