// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/neontype/internal/model"
)

const (
	// timedWords is enough text that a timed test never runs out.
	timedWords    = 220
	defaultWords  = 25
	numberPct     = 0.15
	punctPct      = 0.25
	capsPct       = 0.25
	maxNumberSize = 4
)

var defaultPunctSet = []rune(".,!?;:")

// DefaultWords is the built-in vocabulary.
var DefaultWords = strings.Fields(`future neon focus orbit vector pixel synth pulse drift quantum cyber lumen glide prism byte core mono echo flux nova zen logic ether wave scale frame node mesh code shift glyph array modal rapid cloud spark circuit render engine solar noir apex chrono atlas kinetic sigma`)

// Quotes is the built-in quote pool.
var Quotes = []string{
	"The quieter you become, the more you are able to hear.",
	"Simplicity is prerequisite for reliability.",
	"Make it work, make it right, make it fast.",
	"Programs must be written for people to read, and only incidentally for machines to execute.",
	"The best way to predict the future is to invent it.",
	"Clear is better than clever.",
	"A little copying is better than a little dependency.",
}

// Options toggles extra tokens in generated word text.
type Options struct {
	Numbers bool
	Punct   bool
}

// Generator produces randomized typing text.
type Generator struct {
	rnd    *rand.Rand
	words  []string
	quotes []string
	opts   Options
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rnd = rand.New(rand.NewSource(seed)) }
}

// WithWords replaces the vocabulary. An empty list keeps the default.
func WithWords(words []string) Option {
	return func(g *Generator) {
		if len(words) > 0 {
			g.words = words
		}
	}
}

// New returns a Generator seeded with the current time.
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		words:  DefaultWords,
		quotes: Quotes,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetOptions changes the token toggles for subsequent texts.
func (g *Generator) SetOptions(opts Options) {
	g.opts = opts
}

// Text returns a fresh target text for cfg.
func (g *Generator) Text(cfg model.TestConfig) []rune {
	var words []string
	switch cfg.Mode {
	case model.ModeWords:
		count := cfg.Words
		if count <= 0 {
			count = defaultWords
		}
		words = g.Generate(count)
	case model.ModeQuote:
		return []rune(g.quotes[g.rnd.Intn(len(g.quotes))])
	case model.ModeNumbers:
		words = g.Numbers(timedWords)
	case model.ModeCustom:
		words = strings.Fields(cfg.Text)
	default:
		words = g.Generate(timedWords)
	}
	return []rune(strings.Join(words, " "))
}

// Generate selects count words uniformly and applies the token options.
func (g *Generator) Generate(count int) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := g.words[g.rnd.Intn(len(g.words))]
		if g.opts.Numbers && g.rnd.Float64() < numberPct {
			word = g.number()
		}
		if g.opts.Punct {
			word = applyCaps(g.rnd, word, capsPct)
			word = applyPunct(g.rnd, word, punctPct, defaultPunctSet)
		}
		result = append(result, word)
	}
	return result
}

// Numbers returns count numeric tokens.
func (g *Generator) Numbers(count int) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.number())
	}
	return result
}

func (g *Generator) number() string {
	digits := 1 + g.rnd.Intn(maxNumberSize)
	upper := 1
	for i := 0; i < digits; i++ {
		upper *= 10
	}
	return strconv.Itoa(g.rnd.Intn(upper))
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
