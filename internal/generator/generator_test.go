package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/verte-zerg/neontype/internal/model"
)

func TestTextWordsModeCount(t *testing.T) {
	g := New(WithSeed(1))
	text := string(g.Text(model.TestConfig{Mode: model.ModeWords, Words: 10}))
	if got := len(strings.Fields(text)); got != 10 {
		t.Fatalf("expected 10 words, got %d", got)
	}
	if strings.Contains(text, "  ") {
		t.Fatalf("words must be joined by single spaces: %q", text)
	}
}

func TestTextTimeModeHasEnoughWords(t *testing.T) {
	g := New(WithSeed(1))
	text := string(g.Text(model.TestConfig{Mode: model.ModeTime}))
	if got := len(strings.Fields(text)); got != timedWords {
		t.Fatalf("expected %d words, got %d", timedWords, got)
	}
}

func TestTextNumbersModeIsDigits(t *testing.T) {
	g := New(WithSeed(2))
	for _, r := range g.Text(model.TestConfig{Mode: model.ModeNumbers}) {
		if r != ' ' && !unicode.IsDigit(r) {
			t.Fatalf("unexpected rune %q in numbers mode", r)
		}
	}
}

func TestTextCustomNormalizesSpaces(t *testing.T) {
	g := New()
	got := string(g.Text(model.TestConfig{Mode: model.ModeCustom, Text: "  hello \n\t world "}))
	if got != "hello world" {
		t.Fatalf("unexpected custom text %q", got)
	}
}

func TestTextQuoteFromPool(t *testing.T) {
	g := New(WithSeed(3))
	got := string(g.Text(model.TestConfig{Mode: model.ModeQuote}))
	for _, q := range Quotes {
		if q == got {
			return
		}
	}
	t.Fatalf("quote %q not from pool", got)
}

func TestWithWordsReplacesVocabulary(t *testing.T) {
	g := New(WithSeed(4), WithWords([]string{"go"}))
	for _, w := range g.Generate(5) {
		if w != "go" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestOptionsPunctuation(t *testing.T) {
	g := New(WithSeed(5), WithWords([]string{"go"}))
	g.SetOptions(Options{Punct: true})
	seen := false
	for _, w := range g.Generate(200) {
		if w != "go" {
			seen = true
			break
		}
	}
	if !seen {
		t.Fatalf("expected punctuation or caps to alter some words")
	}
}
