package engine

import (
	"strings"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00.00"},
		{3.5, "0:03.50"},
		{19, "0:19.00"},
		{75.25, "1:15.25"},
		{-2, "0:00.00"},
	}
	for _, c := range cases {
		if got := FormatTimestamp(c.seconds); got != c.want {
			t.Fatalf("FormatTimestamp(%v) = %q; want %q", c.seconds, got, c.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0:00.00", 0, false},
		{"0:03.50", 3.5, false},
		{"1:15.25", 75.25, false},
		{"soon", 0, true},
		{"x:01.00", 0, true},
		{"0:ab", 0, true},
		{"0:75.00", 0, true},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseTimestamp(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestEditingPlanFollowsScriptBoundaries(t *testing.T) {
	for _, c := range sampleCategories {
		p := Generate(c)
		plan := p.EditingPlan

		if plan[0].Timestamp != "0:00.00" {
			t.Fatalf("Generate(%q) first beat at %s", c, plan[0].Timestamp)
		}
		if last := plan[len(plan)-1].Timestamp; last != FormatTimestamp(p.TotalDuration()) {
			t.Fatalf("Generate(%q) last beat at %s; total is %.2f", c, last, p.TotalDuration())
		}

		// every segment start has a beat tagged with that segment
		start := 0.0
		for _, seg := range p.Script {
			ts := FormatTimestamp(start)
			found := false
			for _, b := range plan {
				if b.Timestamp == ts && strings.HasPrefix(b.Detail, seg.Label+":") {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("Generate(%q) has no beat for %s at %s", c, seg.Label, ts)
			}
			start += seg.DurationSeconds
		}

		prev := -1.0
		for _, b := range plan {
			at, err := ParseTimestamp(b.Timestamp)
			if err != nil {
				t.Fatalf("bad timestamp %q: %v", b.Timestamp, err)
			}
			if at < prev {
				t.Fatalf("Generate(%q) beats go backwards at %s", c, b.Timestamp)
			}
			prev = at
		}
	}
}
