// Package stats renders finished results and speed traces.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/neontype/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders values as a single-line ASCII sparkline, resampled to
// at most width cells. A width <= 0 keeps one cell per value.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	values = resample(values, width)
	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// resample averages values into width buckets when there are more values than cells.
func resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	out := make([]float64, width)
	for i := range out {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// RenderResult prints a result card with an optional WPM trace.
func RenderResult(w io.Writer, res model.Result, trace []float64, width int) error {
	if _, err := fmt.Fprintf(w, "result  %d WPM\n", res.WPM); err != nil {
		return err
	}
	headers := []string{"acc", "raw", "chars", "mistakes", "time", "mode"}
	row := []string{
		fmt.Sprintf("%d%%", res.Accuracy),
		fmt.Sprintf("%d", res.RawWPM),
		fmt.Sprintf("%d", res.Characters),
		fmt.Sprintf("%d", res.Mistakes),
		formatElapsed(res.Elapsed),
		string(res.Mode),
	}
	rightAlign := map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, [][]string{row}, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(trace) > 1 {
		line := Sparkline(MovingAverage(trace, 3), width)
		if _, err := fmt.Fprintf(w, "wpm     %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
