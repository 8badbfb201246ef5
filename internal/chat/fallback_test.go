package chat

import (
	"strings"
	"testing"
)

func TestFallbackReply_KeywordSelection(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"experience", "What work experience does he have?", fallbackExperience},
		{"internship", "Tell me about the internship", fallbackExperience},
		{"skills", "Which programming skills?", fallbackSkills},
		{"projects", "Show me your portfolio projects", fallbackProjects},
		{"education", "Where did he study?", fallbackEducation},
		{"contact", "How can I reach him to hire?", fallbackContact},
		{"greeting", "hey", fallbackGreeting},
		{"case insensitive", "EXPERIENCE?", fallbackExperience},
		{"default", "random question about the weather", fallbackDefault},
		{"empty", "", fallbackDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FallbackReply(tc.message)
			if got != tc.want {
				t.Fatalf("FallbackReply(%q) picked wrong topic:\n got: %.60s\nwant: %.60s", tc.message, got, tc.want)
			}
		})
	}
}

func TestFallbackReply_FirstTopicWins(t *testing.T) {
	// message matching both experience and skills keywords
	got := FallbackReply("his work and tech skills")
	if got != fallbackExperience {
		t.Fatalf("expected experience topic to take precedence, got %.60s", got)
	}
}

func TestFallbackReply_NeverEmpty(t *testing.T) {
	for _, msg := range []string{"", " ", "?", strings.Repeat("x", 10_000)} {
		if FallbackReply(msg) == "" {
			t.Fatalf("empty reply for %q", msg)
		}
	}
}
