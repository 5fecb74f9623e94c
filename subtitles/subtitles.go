package subtitles

import (
	"fmt"
	"io"
	"math"
	"strings"

	"viralreel/config"
	"viralreel/engine"
	"viralreel/types"
)

// Format is a subtitle file format
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// ParseFormat accepts srt, vtt or ass in any case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSRT, FormatVTT, FormatASS:
		return f, nil
	case "":
		return FormatSRT, nil
	default:
		return "", fmt.Errorf("unsupported subtitle format %q (want srt, vtt or ass)", s)
	}
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatVTT:
		return "text/vtt; charset=utf-8"
	case FormatASS:
		return "text/x-ssa; charset=utf-8"
	default:
		return "application/x-subrip; charset=utf-8"
	}
}

// Line is a group of words shown together on screen
type Line struct {
	Words []types.SubtitleWord
	Start float64
	End   float64
}

// Text joins the words of the line
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Word
	}
	return strings.Join(parts, " ")
}

// GroupLines batches one run of words into lines of at most maxWordsPerLine words
func GroupLines(words []types.SubtitleWord, maxWordsPerLine int) []Line {
	if maxWordsPerLine < 1 {
		maxWordsPerLine = 1
	}

	lines := []Line{}
	current := Line{}
	for i, w := range words {
		if len(current.Words) == 0 {
			current.Start = w.Start
		}
		current.Words = append(current.Words, w)
		current.End = w.End

		if len(current.Words) >= maxWordsPerLine || i == len(words)-1 {
			lines = append(lines, current)
			current = Line{}
		}
	}
	return lines
}

// Lines splits the package subtitles into on-screen cues. A cue never
// crosses a sentence end or the boundary between two narration lines and
// holds at most config.SubtitleMaxWordsLine words.
func Lines(p types.Package) []Line {
	words := p.Subtitles
	lines := []Line{}
	for _, n := range runLengths(p.Narration) {
		n = min(n, len(words))
		lines = append(lines, GroupLines(words[:n], config.SubtitleMaxWordsLine)...)
		words = words[n:]
	}
	// words not accounted for by the narration stay in one run
	return append(lines, GroupLines(words, config.SubtitleMaxWordsLine)...)
}

// runLengths counts subtitle words per sentence of each narration line,
// tokenizing field by field exactly as the word timer does
func runLengths(narration []types.NarrationLine) []int {
	var runs []int
	for _, line := range narration {
		n := 0
		for _, field := range strings.Fields(line.Text) {
			n += len(engine.Tokenize(field))
			if n > 0 && strings.ContainsAny(field[len(field)-1:], ".!?") {
				runs = append(runs, n)
				n = 0
			}
		}
		if n > 0 {
			runs = append(runs, n)
		}
	}
	return runs
}

// Render writes the cues to w in the given format
func Render(w io.Writer, format Format, lines []Line, title string) error {
	var out string
	switch format {
	case FormatSRT:
		out = SRT(lines)
	case FormatVTT:
		out = VTT(lines)
	case FormatASS:
		out = ASS(lines, title)
	default:
		return fmt.Errorf("unsupported subtitle format %q", format)
	}
	_, err := io.WriteString(w, out)
	return err
}

// SRT renders lines as SubRip cues
func SRT(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", formatSRTTimestamp(line.Start), formatSRTTimestamp(line.End))
		fmt.Fprintf(&b, "%s\n\n", line.Text())
	}
	return b.String()
}

// VTT renders lines as WebVTT cues
func VTT(lines []Line) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s --> %s\n", formatVTTTimestamp(line.Start), formatVTTTimestamp(line.End))
		fmt.Fprintf(&b, "%s\n\n", line.Text())
	}
	return b.String()
}

// assEscaper keeps words from opening override blocks
var assEscaper = strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`)

// ASS renders an Advanced SubStation script with word-by-word highlighting
// for a 1080x1920 vertical canvas
func ASS(lines []Line, title string) string {
	var b strings.Builder

	fmt.Fprintln(&b, "[Script Info]")
	fmt.Fprintf(&b, "Title: %s\n", strings.Join(strings.Fields(title), " "))
	fmt.Fprintln(&b, "ScriptType: v4.00+")
	fmt.Fprintf(&b, "PlayResX: %d\n", config.SubtitlePlayResX)
	fmt.Fprintf(&b, "PlayResY: %d\n", config.SubtitlePlayResY)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "[V4+ Styles]")
	fmt.Fprintln(&b, "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding")

	// MarginV=768 keeps captions 40% up from the bottom edge
	fmt.Fprintf(&b, "Style: Default,Arial Black,%d,&H00FFFFFF,&H00FFFFFF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,4,0,2,60,60,768,1\n", config.SubtitleFontSize)
	fmt.Fprintf(&b, "Style: Highlight,Arial Black,%d,&H0000FFFF,&H0000FFFF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,4,0,2,60,60,768,1\n", config.SubtitleFontSize)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "[Events]")
	fmt.Fprintln(&b, "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text")

	for _, line := range lines {
		for idx, current := range line.Words {
			parts := make([]string, len(line.Words))
			for i, w := range line.Words {
				word := assEscaper.Replace(w.Word)
				if i == idx {
					parts[i] = fmt.Sprintf("{\\c&H0000FFFF&}%s{\\c&H00FFFFFF&}", word)
				} else {
					parts[i] = word
				}
			}

			fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
				formatASSTimestamp(current.Start),
				formatASSTimestamp(current.End),
				strings.Join(parts, " "))
		}
	}

	return b.String()
}

// formatSRTTimestamp converts seconds to hh:mm:ss,mmm
func formatSRTTimestamp(seconds float64) string {
	h, m, s, ms := split(seconds, 1000)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// formatVTTTimestamp converts seconds to hh:mm:ss.mmm
func formatVTTTimestamp(seconds float64) string {
	h, m, s, ms := split(seconds, 1000)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// formatASSTimestamp converts seconds to h:mm:ss.cc
func formatASSTimestamp(seconds float64) string {
	h, m, s, cs := split(seconds, 100)
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// split rounds seconds to 1/unit and breaks it into clock fields
func split(seconds float64, unit int) (hours, minutes, secs, frac int) {
	total := int(math.Round(seconds * float64(unit)))
	if total < 0 {
		total = 0
	}
	frac = total % unit
	whole := total / unit
	return whole / 3600, (whole % 3600) / 60, whole % 60, frac
}
