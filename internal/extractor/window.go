package extractor

import "time"

// extractionWindow is the (offset, duration) sub-range of content selected
// for sampling. Both values are whole seconds, non-negative, and
// Start+Duration never exceeds the content duration it was planned from.
type extractionWindow struct {
	Start    int
	Duration int
}

// planWindow centers a sample of at most maxDuration seconds inside content
// of contentDuration seconds. Content shorter than the cap is taken whole.
// A non-positive content duration is a hard error: fabricating a window from
// unknown timing produces garbage samples.
func planWindow(contentDuration, maxDuration int) (extractionWindow, error) {
	if contentDuration <= 0 {
		return extractionWindow{}, ErrUnknownDuration
	}

	start := (contentDuration - maxDuration) / 2
	if start < 0 {
		start = 0
	}
	end := start + maxDuration
	if end > contentDuration {
		end = contentDuration
	}

	return extractionWindow{Start: start, Duration: end - start}, nil
}

// transcodeTimeout budgets the external transcode: a base allowance plus
// extra time proportional to how deep the seek is and how long the window
// runs. Later and longer segments get strictly more time.
func transcodeTimeout(w extractionWindow, base time.Duration) time.Duration {
	extra := time.Duration(w.Start)*time.Second/1000 + time.Duration(w.Duration)*time.Second/60
	return base + extra
}
