package echoai

import "testing"

func TestClassify_Categories(t *testing.T) {
	c := NewClassifier()
	cases := map[string]Emotion{
		"I feel happy today":     EmotionHappy,
		"that was AWESOME":       EmotionHappy,
		"I'm so tired":           EmotionSad,
		"feeling lonely tonight": EmotionSad,
		"this makes me angry":    EmotionAngry,
		"I hate mondays":         EmotionAngry,
		"open the pod bay doors": EmotionNeutral,
		"":                       EmotionNeutral,
	}
	for text, want := range cases {
		if got := c.Classify(text); got != want {
			t.Fatalf("Classify(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestClassify_PriorityHappyBeatsSad(t *testing.T) {
	c := NewClassifier()
	if got := c.Classify("great but also sad"); got != EmotionHappy {
		t.Fatalf("expected Happy to win over Sad, got %s", got)
	}
	if got := c.Classify("sad and angry"); got != EmotionSad {
		t.Fatalf("expected Sad to win over Angry, got %s", got)
	}
}

func TestEmotion_RateContract(t *testing.T) {
	if r := EmotionHappy.Rate(); r != 1.05 {
		t.Fatalf("Happy rate = %v", r)
	}
	if r := EmotionSad.Rate(); r != 0.9 {
		t.Fatalf("Sad rate = %v", r)
	}
	if r := EmotionAngry.Rate(); r != 1.0 {
		t.Fatalf("Angry rate = %v", r)
	}
	if r := EmotionNeutral.Rate(); r != 1.0 {
		t.Fatalf("Neutral rate = %v", r)
	}
}
