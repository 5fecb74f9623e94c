package render

import (
	"fmt"
	"math"
	"strings"

	"viralreel/types"
)

// Headline is the one-line summary shown above a package
func Headline(p types.Package) string {
	return fmt.Sprintf("Ready-to-post %ds viral reel blueprint for %q", int(math.Round(p.TotalDuration())), p.Category)
}

// Text renders every section of a package as plain text. Empty lists are
// rendered as "(none)" so partial packages still display.
func Text(p types.Package) string {
	var b strings.Builder

	b.WriteString(Headline(p))
	b.WriteString("\n\n")

	section(&b, "Trending Angles & Insights")
	list(&b, p.TrendInsights)
	fmt.Fprintf(&b, "Summary: %s\n", p.InsightSummary)
	fmt.Fprintf(&b, "Hook formula: %s\n\n", p.HookFormula)

	section(&b, "Viral Script (12-19s)")
	if len(p.Script) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, seg := range p.Script {
		fmt.Fprintf(&b, "  %d. [%s] %.1fs  %s\n", seg.Order+1, strings.ToUpper(seg.Label), seg.DurationSeconds, seg.Text)
		fmt.Fprintf(&b, "     Objective: %s\n", seg.Objective)
	}
	b.WriteString("\n")

	section(&b, "AI Voice Narration (SSML-ready)")
	if len(p.Narration) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, line := range p.Narration {
		fmt.Fprintf(&b, "  [%s] %q\n", line.SegmentType, line.Text)
		fmt.Fprintf(&b, "     Voice: %s | Pacing: %s\n", line.VoiceProfile, line.Pacing)
		fmt.Fprintf(&b, "     Notes: %s\n", line.Notes)
	}
	b.WriteString("\n")

	section(&b, "Scene Plan")
	if len(p.Scenes) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, scene := range p.Scenes {
		fmt.Fprintf(&b, "  [%s] %s\n", scene.SegmentType, scene.VisualPrompt)
		fmt.Fprintf(&b, "     Motion: %s | B-roll: %s | Overlay: %q\n", scene.MotionDirection, scene.SupportingBroll, scene.OverlayText)
	}
	b.WriteString("\n")

	section(&b, "Editing Timeline")
	if len(p.EditingPlan) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, beat := range p.EditingPlan {
		fmt.Fprintf(&b, "  %s  %s: %s\n", beat.Timestamp, beat.Action, beat.Detail)
	}
	b.WriteString("\n")

	section(&b, "Word-by-Word Subtitles")
	if len(p.Subtitles) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, w := range p.Subtitles {
		fmt.Fprintf(&b, "  %.2f-%.2f  %s\n", w.Start, w.End, w.Word)
	}
	b.WriteString("\n")

	section(&b, "Distribution Toolkit")
	b.WriteString("Titles:\n")
	list(&b, p.ViralTitles)
	b.WriteString("Captions:\n")
	list(&b, p.Captions)
	fmt.Fprintf(&b, "SEO hashtags: %s\n", strings.Join(p.Hashtags, " "))
	fmt.Fprintf(&b, "Keywords: %s\n\n", strings.Join(p.Keywords, ", "))

	section(&b, "Thumbnail & Posting")
	fmt.Fprintf(&b, "Thumbnail prompt: %s\n", p.ThumbnailPrompt)
	fmt.Fprintf(&b, "Best time to post: %s\n\n", p.BestPostTime)

	section(&b, "CTA & Comment Strategy")
	fmt.Fprintf(&b, "Call to action: %s\n", p.CallToAction)
	b.WriteString("Auto replies:\n")
	list(&b, p.AutoReplyComments)

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString("== ")
	b.WriteString(title)
	b.WriteString(" ==\n")
}

func list(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
