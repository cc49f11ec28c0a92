package echoai

import "strings"

// ──────────────────────────────────────────────
// Intent Matcher — ordered keyword rules, first match wins
// ──────────────────────────────────────────────

// IntentKind classifies the purpose of an utterance.
type IntentKind string

const (
	IntentNavigate  IntentKind = "navigate"
	IntentTellStory IntentKind = "tell_story"
	IntentSuggest   IntentKind = "suggest"
	IntentStopVoice IntentKind = "stop_voice"
	IntentGreeting  IntentKind = "greeting"
	IntentQuestion  IntentKind = "question"
	IntentGeneric   IntentKind = "generic"
)

// Intent is the matched purpose of an utterance. Page is set only for
// IntentNavigate.
type Intent struct {
	Kind IntentKind
	Page PageID
}

type pageRule struct {
	page     PageID
	keywords []string
}

// Matcher maps normalized text to an Intent. Rule precedence: navigation
// commands pre-empt everything, then story, suggestion, stop-voice,
// greeting, question words, and finally the generic fallback. The fallback
// makes the mapping total for any non-empty input.
type Matcher struct {
	pages     []pageRule
	story     []string
	suggest   []string
	stopVoice []string
	greeting  []string
	question  []string
}

// NewMatcher creates a matcher with the built-in rule set.
func NewMatcher() *Matcher {
	return &Matcher{
		pages: []pageRule{
			{PageHome, []string{"home"}},
			{PageDashboard, []string{"dashboard", "explore"}},
			{PageMessages, []string{"messages"}},
			{PageFriends, []string{"friends"}},
			{PageProfile, []string{"profile"}},
		},
		story:     []string{"story"},
		suggest:   []string{"suggest", "recommend"},
		stopVoice: []string{"stop"},
		greeting:  []string{"hello", "hi"},
		question:  []string{"how", "what", "why"},
	}
}

// Match returns the intent of normalized text (lowercased, trimmed).
// Never fails: unmatched text falls through to IntentGeneric.
func (m *Matcher) Match(normalized string) Intent {
	for _, rule := range m.pages {
		if containsAny(normalized, rule.keywords) {
			return Intent{Kind: IntentNavigate, Page: rule.page}
		}
	}
	switch {
	case containsAny(normalized, m.story):
		return Intent{Kind: IntentTellStory}
	case containsAny(normalized, m.suggest):
		return Intent{Kind: IntentSuggest}
	case containsAny(normalized, m.stopVoice):
		return Intent{Kind: IntentStopVoice}
	case containsAny(normalized, m.greeting):
		return Intent{Kind: IntentGreeting}
	case containsAny(normalized, m.question):
		return Intent{Kind: IntentQuestion}
	}
	return Intent{Kind: IntentGeneric}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
