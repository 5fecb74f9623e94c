package engine

import (
	"math"

	"viralreel/config"
	"viralreel/templates"
	"viralreel/types"
)

// Durations are handled in deciseconds so clamping keeps exact sums.
const (
	stepDeciseconds = 5
	minSegmentDs    = int(config.MinSegmentSeconds * 10)
	minTotalDs      = int(config.MinTotalSeconds * 10)
	maxTotalDs      = int(config.MaxTotalSeconds * 10)
)

// timeline holds per-segment durations in deciseconds
type timeline []int

func (t timeline) start(i int) int {
	s := 0
	for _, d := range t[:i] {
		s += d
	}
	return s
}

func (t timeline) total() int {
	return t.start(len(t))
}

func seconds(ds int) float64 {
	return float64(ds) / 10
}

func (e *Engine) buildScript(v vocab) ([]types.ScriptSegment, timeline) {
	durations := make(timeline, len(e.bank.Segments))
	for i, seg := range e.bank.Segments {
		durations[i] = drawDuration(seg, v.category)
	}
	durations = clampDurations(durations)

	script := make([]types.ScriptSegment, len(e.bank.Segments))
	for i, seg := range e.bank.Segments {
		script[i] = types.ScriptSegment{
			Order:           i,
			Label:           seg.Label,
			DurationSeconds: seconds(durations[i]),
			Text:            v.fill(pick(seg.Texts, v.category, "text."+seg.Label)),
			Objective:       v.fill(seg.Objective),
		}
	}
	return script, durations
}

// drawDuration picks a duration from the segment's range in half-second steps.
// The range is capped to the window so later arithmetic stays small.
func drawDuration(seg templates.Segment, category string) int {
	lo := boundDs(seg.MinSeconds)
	hi := boundDs(seg.MaxSeconds)
	if hi < lo {
		hi = lo
	}
	steps := (hi-lo)/stepDeciseconds + 1
	d := lo + variant(category, "duration."+seg.Label, steps)*stepDeciseconds
	if d > hi {
		d = hi
	}
	return d
}

// boundDs converts seconds to deciseconds within [minSegmentDs, maxTotalDs]
func boundDs(sec float64) int {
	if math.IsNaN(sec) {
		return minSegmentDs
	}
	ds := math.Round(sec * 10)
	switch {
	case ds < float64(minSegmentDs):
		return minSegmentDs
	case ds > float64(maxTotalDs):
		return maxTotalDs
	}
	return int(ds)
}

// clampDurations forces every segment to at least the minimum readable
// duration and the sum into the short-form window. Excess is taken from
// later segments first, proportionally to their slack; a shortfall is spread
// over later segments proportionally to their length.
func clampDurations(ds timeline) timeline {
	out := make(timeline, len(ds))
	copy(out, ds)
	if len(out) == 0 {
		return out
	}

	for i := range out {
		if out[i] < minSegmentDs {
			out[i] = minSegmentDs
		}
	}

	from := 1
	if len(out) == 1 {
		from = 0
	}

	total := out.total()
	switch {
	case total > maxTotalDs:
		excess := trimProportional(out, from, total-maxTotalDs)
		if excess > 0 && from > 0 {
			trimProportional(out, 0, excess)
		}
	case total < minTotalDs:
		extendProportional(out, from, minTotalDs-total)
	}
	return out
}

// trimProportional removes up to excess from ds[from:] without dropping any
// segment below the minimum, and returns what could not be removed.
func trimProportional(ds timeline, from, excess int) int {
	slack := 0
	for _, d := range ds[from:] {
		slack += d - minSegmentDs
	}
	if slack <= 0 {
		return excess
	}

	take := excess
	if take > slack {
		take = slack
	}

	removed := 0
	for i := from; i < len(ds); i++ {
		share := take * (ds[i] - minSegmentDs) / slack
		ds[i] -= share
		removed += share
	}

	// integer remainders, taken from the end of the arc
	for left := take - removed; left > 0; {
		for i := len(ds) - 1; i >= from && left > 0; i-- {
			if ds[i] > minSegmentDs {
				ds[i]--
				left--
			}
		}
	}
	return excess - take
}

func extendProportional(ds timeline, from, deficit int) {
	weight := 0
	for _, d := range ds[from:] {
		weight += d
	}

	added := 0
	for i := from; i < len(ds); i++ {
		share := deficit * ds[i] / weight
		ds[i] += share
		added += share
	}

	for left := deficit - added; left > 0; {
		for i := from; i < len(ds) && left > 0; i++ {
			ds[i]++
			left--
		}
	}
}
