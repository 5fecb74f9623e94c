package templates

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultBankIsValid(t *testing.T) {
	bank := Default()
	if err := bank.Validate(); err != nil {
		t.Fatalf("default bank invalid: %v", err)
	}

	labels := bank.Labels()
	if len(labels) < 3 {
		t.Fatalf("expected at least 3 segments, got %v", labels)
	}
	if labels[0] != "hook" || labels[len(labels)-1] != "cta" {
		t.Fatalf("arc should run hook -> cta, got %v", labels)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Titles[0] = "mutated"
	a.Segments[0].Label = "mutated"

	b := Default()
	if b.Titles[0] == "mutated" || b.Segments[0].Label == "mutated" {
		t.Fatalf("Default() shares state between calls")
	}
}

func TestValidateRejectsBrokenBanks(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(b *Bank)
		wantErr string
	}{
		{"nil segments", func(b *Bank) { b.Segments = nil }, "no segments"},
		{"blank label", func(b *Bank) { b.Segments[1].Label = "  " }, "no label"},
		{"duplicate label", func(b *Bank) { b.Segments[1].Label = b.Segments[0].Label }, "reuses label"},
		{"inverted range", func(b *Bank) { b.Segments[0].MinSeconds, b.Segments[0].MaxSeconds = 4, 2 }, "invalid duration range"},
		{"zero range", func(b *Bank) { b.Segments[0].MinSeconds = 0 }, "invalid duration range"},
		{"nan range", func(b *Bank) { b.Segments[1].MinSeconds, b.Segments[1].MaxSeconds = math.NaN(), math.NaN() }, "invalid duration range"},
		{"infinite max", func(b *Bank) { b.Segments[1].MaxSeconds = math.Inf(1) }, "invalid duration range"},
		{"huge range", func(b *Bank) { b.Segments[0].MinSeconds, b.Segments[0].MaxSeconds = 3e9, 3e9 }, "exceeds the"},
		{"padded label", func(b *Bank) { b.Segments[0].Label = " " + b.Segments[0].Label }, "surrounding whitespace"},
		{"empty narration", func(b *Bank) { b.Segments[2].Narration = nil }, "empty narration pool"},
		{"no open beats", func(b *Bank) { b.Segments[3].OpenBeats = nil }, "no open beats"},
		{"empty titles", func(b *Bank) { b.Titles = nil }, "empty titles pool"},
		{"no closing beats", func(b *Bank) { b.ClosingBeats = nil }, "no closing beats"},
		{"too many segments", func(b *Bank) {
			for len(b.Segments) < 20 {
				seg := b.Segments[0]
				seg.Label = seg.Label + "x"
				b.Segments = append(b.Segments, seg)
			}
		}, "fit the"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bank := Default()
			c.mutate(bank)
			err := bank.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", c.wantErr)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not contain %q", err.Error(), c.wantErr)
			}
		})
	}

	var nilBank *Bank
	if err := nilBank.Validate(); err == nil {
		t.Fatalf("nil bank should not validate")
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")

	original := Default()
	if err := Write(original, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("bank changed across YAML round trip")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("segments: [this is: not valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Fatalf("expected parse error")
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("version: empty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil || !strings.Contains(err.Error(), "invalid template bank") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	bank, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\"): %v", err)
	}
	if bank.Version != DefaultVersion {
		t.Fatalf("expected builtin bank, got version %q", bank.Version)
	}
}
