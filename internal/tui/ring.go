package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const ringWidth = 20

// progressBar renders progress in [0, 1] as a fixed-width bar.
func progressBar(st styles, progress float64) string {
	progress = math.Min(1, math.Max(0, progress))
	filled := int(math.Round(progress * ringWidth))
	return st.accented.Render(strings.Repeat("━", filled)) + st.muted.Render(strings.Repeat("─", ringWidth-filled))
}

// secondsLeft shows remaining time rounded up, like a countdown display.
func secondsLeft(remaining time.Duration) string {
	return fmt.Sprintf("%ds", int(math.Ceil(remaining.Seconds())))
}
