package kiosk

import (
	"math"
	"strings"
)

// Accuracy scores how closely the final (possibly edited) text matches the
// original dictated transcript: whitespace tokens compared
// case-insensitively at each position, as a percentage of the original's
// token count, rounded to two decimals. Positional matching means an
// inserted or dropped word shifts everything after it out of alignment;
// that is the agreed behavior, not an alignment score.
func Accuracy(original, final string) float64 {
	originalWords := strings.Fields(original)
	if len(originalWords) == 0 {
		return 0
	}
	finalWords := strings.Fields(final)

	matches := 0
	for i, word := range originalWords {
		if i < len(finalWords) && strings.EqualFold(finalWords[i], word) {
			matches++
		}
	}
	pct := float64(matches) / float64(len(originalWords)) * 100
	return math.Round(pct*100) / 100
}
