package batch

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"viralreel/engine"
	"viralreel/publish"
	"viralreel/types"
)

type fakePublisher struct {
	mu    sync.Mutex
	seen  map[string]bool
	calls int
	err   error
}

func (f *fakePublisher) Publish(ctx context.Context, bankVersion string, pkg types.Package) (publish.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return publish.Result{}, f.err
	}
	f.calls++
	if f.seen[pkg.Category] {
		return publish.Result{Skipped: true}, nil
	}
	f.seen[pkg.Category] = true
	return publish.Result{}, nil
}

func TestParseCategories(t *testing.T) {
	input := "fitness coaching\n\n# comment\n  Fitness   Coaching \nhome cooking\r\n"
	got, err := ParseCategories(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCategories: %v", err)
	}
	want := []string{"fitness coaching", "home cooking"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q; want %q", got, want)
	}
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(engine.Default(), Config{OutputDir: filepath.Join(dir, "out"), Concurrency: 2}, nil)

	summary, err := r.Run(context.Background(), []string{"fitness coaching", "home cooking", "skincare routines"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RunID == "" {
		t.Fatalf("missing run id")
	}
	if len(summary.Files) != 6 {
		t.Fatalf("expected 6 files, got %v", summary.Files)
	}

	path := filepath.Join(dir, "out", types.PackageID("home cooking")+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var pkg types.Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if pkg.Category != "home cooking" {
		t.Fatalf("category = %q", pkg.Category)
	}

	srt, err := os.ReadFile(filepath.Join(dir, "out", types.PackageID("home cooking")+".srt"))
	if err != nil || !strings.HasPrefix(string(srt), "1\n") {
		t.Fatalf("missing or malformed srt: %v", err)
	}
}

func TestRunPublishes(t *testing.T) {
	pub := &fakePublisher{seen: map[string]bool{"fitness coaching": true}}
	r := NewRunner(engine.Default(), Config{OutputDir: t.TempDir()}, pub)

	summary, err := r.Run(context.Background(), []string{"fitness coaching", "home cooking"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Published != 1 || summary.Skipped != 1 || pub.calls != 2 {
		t.Fatalf("unexpected summary %+v (calls %d)", summary, pub.calls)
	}
}

func TestRunPublishFailure(t *testing.T) {
	pub := &fakePublisher{seen: map[string]bool{}, err: errors.New("bucket missing")}
	r := NewRunner(engine.Default(), Config{OutputDir: t.TempDir(), Concurrency: 1}, pub)

	if _, err := r.Run(context.Background(), []string{"fitness coaching"}); err == nil || !strings.Contains(err.Error(), "bucket missing") {
		t.Fatalf("expected publish error, got %v", err)
	}
}

func TestRunFileMissing(t *testing.T) {
	r := NewRunner(engine.Default(), Config{OutputDir: t.TempDir()}, nil)
	if _, err := r.RunFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BATCH_FILE", "cats.txt")
	t.Setenv("BATCH_OUTPUT_DIR", "")
	t.Setenv("BATCH_CONCURRENCY", "abc")

	cfg := ConfigFromEnv()
	if cfg.File != "cats.txt" || cfg.OutputDir != "output" || cfg.Concurrency != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	t.Setenv("BATCH_CONCURRENCY", "9")
	if ConfigFromEnv().Concurrency != 9 {
		t.Fatalf("concurrency override not applied")
	}
}
