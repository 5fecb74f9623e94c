package render

import (
	"bytes"
	"encoding/xml"
	"strings"

	"viralreel/types"
)

// segmentBreak is the pause inserted between narration lines
const segmentBreak = "250ms"

var pacingRates = map[string]string{
	"fast":     "fast",
	"quick":    "fast",
	"steady":   "medium",
	"building": "medium",
	"slow":     "slow",
}

// SSML renders the narration as a single <speak> document with one prosody
// block per segment, ready for a text-to-speech service
func SSML(p types.Package) string {
	var b strings.Builder
	b.WriteString("<speak>")
	for i, line := range p.Narration {
		if i > 0 {
			b.WriteString(`<break time="` + segmentBreak + `"/>`)
		}
		b.WriteString(`<prosody rate="` + prosodyRate(line.Pacing) + `">`)
		b.WriteString(escape(line.Text))
		b.WriteString("</prosody>")
	}
	b.WriteString("</speak>")
	return b.String()
}

// prosodyRate maps the first word of a pacing descriptor to an SSML rate
func prosodyRate(pacing string) string {
	fields := strings.FieldsFunc(strings.ToLower(pacing), func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) > 0 {
		if rate, ok := pacingRates[fields[0]]; ok {
			return rate
		}
	}
	return "medium"
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
