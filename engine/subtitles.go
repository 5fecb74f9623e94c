package engine

import (
	"math"
	"strings"
	"unicode"

	"viralreel/config"
	"viralreel/types"
)

// Tokenize splits narration into display words, stripping surrounding
// punctuation but keeping inner apostrophes and hyphens. Case is preserved.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// TimeWords spreads the words of text over [0, total] seconds, weighting each
// word by its length with a per-word floor of config.MinWordSeconds. Words are
// laid end to end so start[i+1] == end[i] and the last word ends at total.
// A non-positive total or text without words yields an empty slice.
func TimeWords(text string, total float64) []types.SubtitleWord {
	words := Tokenize(text)
	if len(words) == 0 || !(total > 0) || math.IsInf(total, 0) {
		return []types.SubtitleWord{}
	}

	durations := wordDurations(words, total)

	out := make([]types.SubtitleWord, len(words))
	start := 0.0
	for i, w := range words {
		end := start + durations[i]
		if i == len(words)-1 || end > total {
			end = total
		}
		out[i] = types.SubtitleWord{Word: w, Start: start, End: end}
		start = end
	}
	return out
}

// wordDurations shares total between words by rune count. Words whose share
// falls under the floor are pinned to it and the rest is re-shared; when the
// floors alone would overrun total every word gets an equal slice instead.
func wordDurations(words []string, total float64) []float64 {
	n := len(words)
	durations := make([]float64, n)

	floor := config.MinWordSeconds
	if float64(n)*floor >= total {
		for i := range durations {
			durations[i] = total / float64(n)
		}
		return durations
	}

	weights := make([]float64, n)
	weightSum := 0.0
	for i, w := range words {
		weights[i] = float64(runeLen(w))
		weightSum += weights[i]
	}

	pinned := make([]bool, n)
	budget := total
	for changed := true; changed; {
		changed = false
		for i := range words {
			if pinned[i] {
				continue
			}
			if budget*weights[i]/weightSum < floor {
				pinned[i] = true
				durations[i] = floor
				budget -= floor
				weightSum -= weights[i]
				changed = true
			}
		}
	}

	for i := range words {
		if !pinned[i] {
			durations[i] = budget * weights[i] / weightSum
		}
	}
	return durations
}
