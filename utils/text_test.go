package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses space runs",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "removes space before punctuation",
			input: "hello , world",
			want:  "hello, world",
		},
		{
			name:  "adds space after punctuation",
			input: "hello,world!done",
			want:  "hello, world! done",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  hello world \t",
			want:  "hello world",
		},
		{
			name:  "already clean text is untouched",
			input: "I want to book a banquet.",
			want:  "I want to book a banquet.",
		},
		{
			name:  "sentence period before a capital gains a space",
			input: "Done.Next we pick a time.",
			want:  "Done. Next we pick a time.",
		},
		{
			name:  "email addresses pass through intact",
			input: "my email is guest@example.com thanks",
			want:  "my email is guest@example.com thanks",
		},
		{
			name:  "dotted phone numbers pass through intact",
			input: "call 330.422.3304 anytime",
			want:  "call 330.422.3304 anytime",
		},
		{
			name:  "preserves a single interior newline",
			input: "Options include:\n- Birthday Party",
			want:  "Options include:\n- Birthday Party",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanText(tc.input))
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"hello   , world !next",
		"Dinner at 6pm , please.",
		"What time ?We open at 5.",
		"Options:\n- one\n- two",
	}
	for _, in := range inputs {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once), "cleaning cleaned text must be a no-op for %q", in)
	}
}
