package engine

import (
	"fmt"

	"viralreel/config"
	"viralreel/types"
)

const timingEpsilon = 1e-6

// Validate cross-checks the timing and structure invariants of a package and
// returns the first violation found. A package from Generate always passes;
// callers use it to catch defects before publishing.
func Validate(p types.Package) error {
	if p.Category == "" {
		return fmt.Errorf("package has an empty category")
	}
	if len(p.Script) == 0 {
		return fmt.Errorf("package has no script segments")
	}

	total := 0.0
	for i, seg := range p.Script {
		if seg.Order != i {
			return fmt.Errorf("segment %d has order %d", i, seg.Order)
		}
		if !(seg.DurationSeconds > 0) {
			return fmt.Errorf("segment %d (%s) has non-positive duration %.2f", i, seg.Label, seg.DurationSeconds)
		}
		total += seg.DurationSeconds
	}
	if total < config.MinTotalSeconds-timingEpsilon || total > config.MaxTotalSeconds+timingEpsilon {
		return fmt.Errorf("script runs %.2fs, outside [%.0f, %.0f]", total, config.MinTotalSeconds, config.MaxTotalSeconds)
	}

	if len(p.Narration) != len(p.Script) {
		return fmt.Errorf("%d narration lines for %d segments", len(p.Narration), len(p.Script))
	}
	if len(p.Scenes) != len(p.Script) {
		return fmt.Errorf("%d scenes for %d segments", len(p.Scenes), len(p.Script))
	}
	for i, seg := range p.Script {
		if p.Narration[i].SegmentType != seg.Label {
			return fmt.Errorf("narration %d is for %q, segment is %q", i, p.Narration[i].SegmentType, seg.Label)
		}
		if p.Scenes[i].SegmentType != seg.Label {
			return fmt.Errorf("scene %d is for %q, segment is %q", i, p.Scenes[i].SegmentType, seg.Label)
		}
	}

	prev := 0.0
	for i, beat := range p.EditingPlan {
		at, err := ParseTimestamp(beat.Timestamp)
		if err != nil {
			return fmt.Errorf("editing beat %d: %w", i, err)
		}
		if at < prev {
			return fmt.Errorf("editing beat %d at %s goes back in time", i, beat.Timestamp)
		}
		if at > total+timingEpsilon {
			return fmt.Errorf("editing beat %d at %s is past the end (%.2fs)", i, beat.Timestamp, total)
		}
		prev = at
	}

	prevEnd := 0.0
	for i, w := range p.Subtitles {
		if w.Start < 0 || !(w.End > w.Start) {
			return fmt.Errorf("subtitle %d (%q) has invalid span [%.3f, %.3f]", i, w.Word, w.Start, w.End)
		}
		if w.Start < prevEnd-timingEpsilon {
			return fmt.Errorf("subtitle %d (%q) overlaps the previous word", i, w.Word)
		}
		prevEnd = w.End
	}
	if prevEnd > total+timingEpsilon {
		return fmt.Errorf("subtitles end at %.3fs, past the script end %.2fs", prevEnd, total)
	}

	return nil
}
