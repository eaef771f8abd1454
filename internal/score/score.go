// Package score computes per-character correctness and speed metrics.
package score

import (
	"math"
	"time"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5

// MinElapsed floors the elapsed time (0.001 minutes) so speed never divides by zero.
const MinElapsed = 60 * time.Millisecond

// Class is the correctness of one input position.
type Class int

// Character classes.
const (
	Pending Class = iota
	Correct
	Wrong
	// Extra marks input typed past the end of the target. It counts as a mistake.
	Extra
)

// Snapshot is a derived view of one run at one instant.
type Snapshot struct {
	Typed    int
	Mistakes int
	Correct  int
	// Accuracy is kept at full precision; use AccuracyPercent for display.
	Accuracy float64
	WPM      int
	RawWPM   int
}

// AccuracyPercent returns accuracy rounded to the nearest integer.
func (s Snapshot) AccuracyPercent() int {
	return int(math.Round(s.Accuracy))
}

// Evaluate scores input against target after elapsed time spent typing.
func Evaluate(target, input []rune, elapsed time.Duration) Snapshot {
	typed := len(input)
	mistakes := Mistakes(target, input)
	correct := typed - mistakes
	if correct < 0 {
		correct = 0
	}
	accuracy := 100.0
	if typed > 0 {
		accuracy = 100 * float64(correct) / float64(typed)
	}
	return Snapshot{
		Typed:    typed,
		Mistakes: mistakes,
		Correct:  correct,
		Accuracy: accuracy,
		WPM:      WPM(correct, elapsed),
		RawWPM:   WPM(typed, elapsed),
	}
}

// WPM converts a character count over elapsed time into rounded words per minute.
func WPM(chars int, elapsed time.Duration) int {
	if elapsed < MinElapsed {
		elapsed = MinElapsed
	}
	words := math.Max(0, float64(chars)/CharsPerWord)
	return int(math.Round(words / elapsed.Minutes()))
}

// Mistakes counts positions that cannot be correct.
func Mistakes(target, input []rune) int {
	n := 0
	for i := range input {
		if c := classAt(target, input, i); c == Wrong || c == Extra {
			n++
		}
	}
	return n
}

// Classify returns a class for every target and input position.
func Classify(target, input []rune) []Class {
	n := len(target)
	if len(input) > n {
		n = len(input)
	}
	out := make([]Class, n)
	for i := range out {
		out[i] = classAt(target, input, i)
	}
	return out
}

func classAt(target, input []rune, i int) Class {
	switch {
	case i >= len(input):
		return Pending
	case i >= len(target):
		return Extra
	case input[i] == target[i]:
		return Correct
	default:
		return Wrong
	}
}
