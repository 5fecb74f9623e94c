package templates

import (
	"fmt"
	"math"
	"strings"

	"viralreel/config"
)

// Bank holds every template table the engine selects from.
// Strings may contain the placeholders {category}, {Category} and {tag}.
type Bank struct {
	Version string `yaml:"version"`

	Insights         []string `yaml:"insights"`
	InsightSummaries []string `yaml:"insightSummaries"`
	HookFormulas     []string `yaml:"hookFormulas"`

	Segments     []Segment `yaml:"segments"`
	ClosingBeats []Beat    `yaml:"closingBeats"`

	Titles           []string `yaml:"titles"`
	Captions         []string `yaml:"captions"`
	FixedHashtags    []string `yaml:"fixedHashtags"`
	KeywordPatterns  []string `yaml:"keywordPatterns"`
	ThumbnailPrompts []string `yaml:"thumbnailPrompts"`
	PostTimes        []string `yaml:"postTimes"`
	CallsToAction    []string `yaml:"callsToAction"`
	AutoReplies      []string `yaml:"autoReplies"`
}

// Segment is the template for one beat of the script arc
type Segment struct {
	Label      string  `yaml:"label"`
	Objective  string  `yaml:"objective"`
	MinSeconds float64 `yaml:"minSeconds"`
	MaxSeconds float64 `yaml:"maxSeconds"`

	Texts         []string `yaml:"texts"`
	Narration     []string `yaml:"narration"`
	VoiceProfiles []string `yaml:"voiceProfiles"`
	Pacing        string   `yaml:"pacing"`
	Notes         []string `yaml:"notes"`

	Visuals  []string `yaml:"visuals"`
	Motions  []string `yaml:"motions"`
	Broll    []string `yaml:"broll"`
	Overlays []string `yaml:"overlays"`

	OpenBeats   []Beat `yaml:"openBeats"`
	AccentBeats []Beat `yaml:"accentBeats"`
}

// Beat is an edit action template
type Beat struct {
	Action string `yaml:"action"`
	Detail string `yaml:"detail"`
}

// Validate reports the first structural problem that would stop the engine
// from producing a complete package.
func (b *Bank) Validate() error {
	if b == nil {
		return fmt.Errorf("template bank is nil")
	}
	if len(b.Segments) == 0 {
		return fmt.Errorf("template bank has no segments")
	}
	if float64(len(b.Segments))*config.MinSegmentSeconds > config.MaxTotalSeconds {
		return fmt.Errorf("template bank has %d segments; at most %d fit the %.0fs window",
			len(b.Segments), int(config.MaxTotalSeconds/config.MinSegmentSeconds), config.MaxTotalSeconds)
	}

	seen := make(map[string]bool, len(b.Segments))
	for i, seg := range b.Segments {
		label := strings.TrimSpace(seg.Label)
		if label == "" {
			return fmt.Errorf("segment %d has no label", i)
		}
		if label != seg.Label {
			return fmt.Errorf("segment %d label %q has surrounding whitespace", i, seg.Label)
		}
		if seen[label] {
			return fmt.Errorf("segment %d reuses label %q", i, label)
		}
		seen[label] = true

		if !finite(seg.MinSeconds) || !finite(seg.MaxSeconds) ||
			seg.MinSeconds <= 0 || seg.MaxSeconds < seg.MinSeconds {
			return fmt.Errorf("segment %q has invalid duration range [%.1f, %.1f]", label, seg.MinSeconds, seg.MaxSeconds)
		}
		if seg.MaxSeconds > config.MaxTotalSeconds {
			return fmt.Errorf("segment %q range [%.1f, %.1f] exceeds the %.0fs window",
				label, seg.MinSeconds, seg.MaxSeconds, config.MaxTotalSeconds)
		}

		pools := map[string][]string{
			"texts":         seg.Texts,
			"narration":     seg.Narration,
			"voiceProfiles": seg.VoiceProfiles,
			"notes":         seg.Notes,
			"visuals":       seg.Visuals,
			"motions":       seg.Motions,
			"broll":         seg.Broll,
			"overlays":      seg.Overlays,
		}
		for name, pool := range pools {
			if len(pool) == 0 {
				return fmt.Errorf("segment %q has an empty %s pool", label, name)
			}
		}
		if len(seg.OpenBeats) == 0 {
			return fmt.Errorf("segment %q has no open beats", label)
		}
	}

	pools := map[string][]string{
		"insights":         b.Insights,
		"insightSummaries": b.InsightSummaries,
		"hookFormulas":     b.HookFormulas,
		"titles":           b.Titles,
		"captions":         b.Captions,
		"thumbnailPrompts": b.ThumbnailPrompts,
		"postTimes":        b.PostTimes,
		"callsToAction":    b.CallsToAction,
		"autoReplies":      b.AutoReplies,
	}
	for name, pool := range pools {
		if len(pool) == 0 {
			return fmt.Errorf("template bank has an empty %s pool", name)
		}
	}
	if len(b.ClosingBeats) == 0 {
		return fmt.Errorf("template bank has no closing beats")
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Labels returns the segment labels in arc order
func (b *Bank) Labels() []string {
	labels := make([]string, len(b.Segments))
	for i, seg := range b.Segments {
		labels[i] = seg.Label
	}
	return labels
}
