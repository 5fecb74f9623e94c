package render

import (
	"encoding/xml"
	"strings"
	"testing"

	"viralreel/engine"
	"viralreel/types"
)

func TestTextContainsEverySection(t *testing.T) {
	p := engine.Generate("skincare routines")
	out := Text(p)

	for _, want := range []string{
		"Ready-to-post",
		"\"skincare routines\"",
		"== Trending Angles & Insights ==",
		"== Viral Script (12-19s) ==",
		"== AI Voice Narration (SSML-ready) ==",
		"== Editing Timeline ==",
		"== Distribution Toolkit ==",
		"== Thumbnail & Posting ==",
		"== CTA & Comment Strategy ==",
		"SEO hashtags: " + strings.Join(p.Hashtags, " "),
		"Keywords: " + strings.Join(p.Keywords, ", "),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Text() missing %q", want)
		}
	}
}

func TestTextHandlesEmptyPackage(t *testing.T) {
	out := Text(types.Package{Category: "empty"})
	if !strings.Contains(out, "(none)") {
		t.Fatalf("empty lists should render as (none)")
	}
	if !strings.Contains(out, "Ready-to-post 0s") {
		t.Fatalf("unexpected headline in %q", out)
	}
}

func TestSSMLIsWellFormed(t *testing.T) {
	p := engine.Generate("fitness coaching")
	p.Narration[0].Text = "Tips & tricks <fast>"

	doc := SSML(p)
	if !strings.HasPrefix(doc, "<speak>") || !strings.HasSuffix(doc, "</speak>") {
		t.Fatalf("SSML not wrapped in <speak>: %s", doc)
	}
	if !strings.Contains(doc, "Tips &amp; tricks &lt;fast&gt;") {
		t.Fatalf("SSML text not escaped: %s", doc)
	}
	if n := strings.Count(doc, "<break"); n != len(p.Narration)-1 {
		t.Fatalf("got %d breaks for %d lines", n, len(p.Narration))
	}

	var node struct {
		XMLName xml.Name
	}
	if err := xml.Unmarshal([]byte(doc), &node); err != nil {
		t.Fatalf("SSML does not parse as XML: %v", err)
	}
}

func TestProsodyRate(t *testing.T) {
	cases := []struct {
		pacing string
		want   string
	}{
		{"fast, punchy (~2.8 words/sec)", "fast"},
		{"steady, clear", "medium"},
		{"quick, upbeat", "fast"},
		{"", "medium"},
		{"languid", "medium"},
	}
	for _, c := range cases {
		if got := prosodyRate(c.pacing); got != c.want {
			t.Fatalf("prosodyRate(%q) = %q; want %q", c.pacing, got, c.want)
		}
	}
}
