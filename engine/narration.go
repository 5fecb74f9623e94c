package engine

import (
	"fmt"
	"math"
	"strings"

	"viralreel/config"
	"viralreel/types"
)

func (e *Engine) buildNarration(script []types.ScriptSegment, v vocab) []types.NarrationLine {
	lines := make([]types.NarrationLine, len(script))
	for i, seg := range script {
		tmpl := e.bank.Segments[i]
		budget := wordBudget(seg.DurationSeconds)
		text := fitWords(v.fill(pick(tmpl.Narration, v.category, "narration."+seg.Label)), budget)
		words := len(strings.Fields(text))

		lines[i] = types.NarrationLine{
			SegmentType:  seg.Label,
			Text:         text,
			VoiceProfile: pick(tmpl.VoiceProfiles, v.category, "voice."+seg.Label),
			Pacing:       fmt.Sprintf("%s (~%.1f words/sec)", tmpl.Pacing, float64(words)/seg.DurationSeconds),
			Notes: fmt.Sprintf("%s Keep it to %d words in %.1fs.",
				v.fill(pick(tmpl.Notes, v.category, "notes."+seg.Label)), budget, seg.DurationSeconds),
		}
	}
	return lines
}

// wordBudget is the most words that can be spoken in the given time
func wordBudget(durationSeconds float64) int {
	n := int(math.Floor(durationSeconds * config.MaxWordsPerSecond))
	if n < 1 {
		return 1
	}
	return n
}

// fitWords cuts text down to limit words and closes the sentence
func fitWords(text string, limit int) string {
	words := strings.Fields(text)
	if len(words) <= limit {
		return strings.Join(words, " ")
	}

	trimmed := strings.TrimRight(strings.Join(words[:limit], " "), ",;:-")
	if !strings.HasSuffix(trimmed, ".") && !strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
		trimmed += "."
	}
	return trimmed
}
