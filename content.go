package echoai

import "math/rand"

// ──────────────────────────────────────────────
// Content Library — static catalogs sampled at response time
// ──────────────────────────────────────────────

// Story is a narrated piece of content with an optional audio backing track.
type Story struct {
	Title    string `json:"title" yaml:"title"`
	Body     string `json:"body" yaml:"body"`
	AudioRef string `json:"audio_ref,omitempty" yaml:"audio_ref"`
}

// SoundRef is an opaque locator for the audio collaborator, with playback
// hints.
type SoundRef struct {
	Ref    string  `json:"ref" yaml:"ref"`
	Volume float64 `json:"volume" yaml:"volume"`
	Loop   bool    `json:"loop" yaml:"loop"`
}

// Library holds the immutable content catalogs the engine samples from.
// Selection is uniform random with no repetition-avoidance; an immediate
// repeat of the previous pick is possible and accepted.
type Library struct {
	Stories []Story `yaml:"stories"`

	Greetings   []string `yaml:"greetings"`
	Questions   []string `yaml:"questions"`
	Generics    []string `yaml:"generics"`
	Suggestions []string `yaml:"suggestions"`
	FollowUps   []string `yaml:"follow_ups"`
	Whispers    []string `yaml:"whispers"`

	Sounds []SoundRef `yaml:"sounds"`
}

// DefaultLibrary returns the built-in content profile.
func DefaultLibrary() *Library {
	return &Library{
		Stories: []Story{
			{
				Title:    "The Lighthouse",
				Body:     "Once, a lighthouse keeper found a bottle on the rocks. Inside was a map of his own island, drawn by someone who had never been there. He spent the rest of his life looking for the artist, and the light never went out once.",
				AudioRef: "audio/waves.mp3",
			},
			{
				Title:    "The Night Train",
				Body:     "A night train stopped at a station that wasn't on any timetable. One passenger stepped off, bought a coffee from a machine that took no coins, and got back on. The station was gone by morning, but the coffee was real.",
				AudioRef: "audio/rain.mp3",
			},
			{
				Title:    "The Gardener's Clock",
				Body:     "There was a gardener whose clock ran on seasons instead of hours. People laughed until they noticed her tomatoes were never late. She said time listens, if you plant it right.",
				AudioRef: "audio/wind.mp3",
			},
		},
		Greetings: []string{
			"Hello Joshua",
			"Hi there, I'm listening.",
			"Hey! Good to hear your voice.",
		},
		Questions: []string{
			"That's a good question.",
			"Let me think about that one.",
			"Hmm, I'm not sure, but I like that you asked.",
		},
		Generics: []string{
			"I heard you",
			"Okay.",
			"Got it.",
			"Interesting. Tell me more.",
		},
		Suggestions: []string{
			"You could check your messages.",
			"How about a look at the dashboard?",
			"Maybe say hello to a friend.",
		},
		FollowUps: []string{
			"Anything else?",
			"What would you like next?",
		},
		Whispers: []string{
			"I'm still here...",
			"psst... say my name.",
			"Did you hear that?",
		},
		Sounds: []SoundRef{
			{Ref: "audio/chime.mp3", Volume: 0.6},
			{Ref: "audio/ambient.mp3", Volume: 0.3, Loop: true},
		},
	}
}

// PickStory samples one story uniformly at random.
func (l *Library) PickStory(r *rand.Rand) Story {
	if len(l.Stories) == 0 {
		return Story{}
	}
	return l.Stories[r.Intn(len(l.Stories))]
}

// PickPhrase samples one phrase uniformly at random from pool.
func (l *Library) PickPhrase(r *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.Intn(len(pool))]
}
