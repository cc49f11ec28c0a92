package echoai

import "strings"

// ──────────────────────────────────────────────
// Emotion Classifier — rule-based keyword matching
// ──────────────────────────────────────────────

// Emotion is the detected mood of an utterance.
type Emotion string

const (
	EmotionHappy   Emotion = "Happy"
	EmotionSad     Emotion = "Sad"
	EmotionAngry   Emotion = "Angry"
	EmotionNeutral Emotion = "Neutral"
)

// Rate returns the speech rate the rendering collaborator should use for
// this emotion. Happy speeds up slightly, Sad slows down, everything else
// is the synthesizer default.
func (e Emotion) Rate() float64 {
	switch e {
	case EmotionHappy:
		return 1.05
	case EmotionSad:
		return 0.9
	default:
		return 1.0
	}
}

type emotionRule struct {
	emotion  Emotion
	keywords []string
}

// Classifier maps raw text to an Emotion via ordered keyword rules.
// First matching rule wins; a text hitting both a Happy and a Sad keyword
// resolves to Happy because Happy is checked first.
type Classifier struct {
	rules []emotionRule
}

// NewClassifier creates a classifier with the built-in keyword sets.
func NewClassifier() *Classifier {
	return &Classifier{
		rules: []emotionRule{
			{EmotionHappy, []string{"happy", "great", "awesome", "excited", "good"}},
			{EmotionSad, []string{"sad", "tired", "down", "lonely", "upset"}},
			{EmotionAngry, []string{"angry", "mad", "hate", "stressed", "annoyed"}},
		},
	}
}

// Classify returns the emotion of text. Case-insensitive substring search,
// total over any input; unmatched text is Neutral.
func (c *Classifier) Classify(text string) Emotion {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.emotion
			}
		}
	}
	return EmotionNeutral
}
