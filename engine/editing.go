package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"viralreel/templates"
	"viralreel/types"
)

// buildEditingPlan places an opening beat at every segment boundary, an
// accent beat at each segment midpoint and a closing beat at the total, all
// taken from the clamped timeline.
func (e *Engine) buildEditingPlan(script []types.ScriptSegment, durations timeline, v vocab) []types.EditingBeat {
	beats := make([]types.EditingBeat, 0, 2*len(script)+1)
	for i, seg := range script {
		tmpl := e.bank.Segments[i]
		start := durations.start(i)

		open := pickBeat(tmpl.OpenBeats, v.category, "open."+seg.Label)
		beats = append(beats, beatAt(start, seg.Label, open, v))

		if len(tmpl.AccentBeats) > 0 {
			accent := pickBeat(tmpl.AccentBeats, v.category, "accent."+seg.Label)
			beats = append(beats, beatAt(start+durations[i]/2, seg.Label, accent, v))
		}
	}

	if len(script) > 0 {
		last := script[len(script)-1].Label
		closing := pickBeat(e.bank.ClosingBeats, v.category, "closing")
		beats = append(beats, beatAt(durations.total(), last, closing, v))
	}
	return beats
}

func pickBeat(pool []templates.Beat, category, field string) templates.Beat {
	if len(pool) == 0 {
		return templates.Beat{}
	}
	return pool[variant(category, field, len(pool))]
}

func beatAt(ds int, label string, b templates.Beat, v vocab) types.EditingBeat {
	return types.EditingBeat{
		Timestamp: FormatTimestamp(seconds(ds)),
		Action:    v.fill(b.Action),
		Detail:    label + ": " + v.fill(b.Detail),
	}
}

// FormatTimestamp renders seconds as m:ss.cc
func FormatTimestamp(sec float64) string {
	cs := int(math.Round(sec * 100))
	if cs < 0 {
		cs = 0
	}
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs%6000)/100, cs%100)
}

// ParseTimestamp reads a m:ss.cc timestamp back into seconds
func ParseTimestamp(ts string) (float64, error) {
	mins, secs, ok := strings.Cut(ts, ":")
	if !ok {
		return 0, fmt.Errorf("timestamp %q is not m:ss.cc", ts)
	}
	m, err := strconv.Atoi(mins)
	if err != nil {
		return 0, fmt.Errorf("timestamp %q has invalid minutes: %w", ts, err)
	}
	s, err := strconv.ParseFloat(secs, 64)
	if err != nil {
		return 0, fmt.Errorf("timestamp %q has invalid seconds: %w", ts, err)
	}
	if m < 0 || s < 0 || s >= 60 {
		return 0, fmt.Errorf("timestamp %q is out of range", ts)
	}
	return float64(m)*60 + s, nil
}
