package batch

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"viralreel/config"
	"viralreel/engine"
	"viralreel/publish"
	"viralreel/subtitles"
	"viralreel/types"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// PackagePublisher stores finished packages (publish.Publisher in production)
type PackagePublisher interface {
	Publish(ctx context.Context, bankVersion string, pkg types.Package) (publish.Result, error)
}

// Config controls a batch run
type Config struct {
	File        string // categories, one per line
	OutputDir   string
	Concurrency int
}

// ConfigFromEnv reads BATCH_FILE, BATCH_OUTPUT_DIR and BATCH_CONCURRENCY
func ConfigFromEnv() Config {
	cfg := Config{
		File:        os.Getenv("BATCH_FILE"),
		OutputDir:   os.Getenv("BATCH_OUTPUT_DIR"),
		Concurrency: config.DefaultBatchConcurrency,
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultBatchOutputDir
	}
	if c := os.Getenv("BATCH_CONCURRENCY"); c != "" {
		if v, err := strconv.Atoi(c); err == nil && v > 0 {
			cfg.Concurrency = v
		}
	}
	return cfg
}

// Runner generates packages for many categories and writes them to disk
type Runner struct {
	engine      *engine.Engine
	outDir      string
	concurrency int
	publisher   PackagePublisher
}

// Summary reports what a run produced
type Summary struct {
	RunID     string
	Files     []string // sorted paths of written files
	Published int
	Skipped   int // already in object storage
}

// NewRunner creates a runner. publisher may be nil.
func NewRunner(eng *engine.Engine, cfg Config, publisher PackagePublisher) *Runner {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = config.DefaultBatchConcurrency
	}
	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = config.DefaultBatchOutputDir
	}
	return &Runner{engine: eng, outDir: outDir, concurrency: concurrency, publisher: publisher}
}

// ReadCategories loads a category file
func ReadCategories(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open category file: %w", err)
	}
	defer f.Close()
	return ParseCategories(f)
}

// ParseCategories reads one category per line. Blank lines and lines
// starting with # are ignored; categories that normalize to the same
// value are kept once, first occurrence wins.
func ParseCategories(r io.Reader) ([]string, error) {
	var out []string
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		norm := engine.Normalize(line)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	return out, nil
}

// RunFile runs the batch for every category in path
func (r *Runner) RunFile(ctx context.Context, path string) (Summary, error) {
	categories, err := ReadCategories(path)
	if err != nil {
		return Summary{}, err
	}
	return r.Run(ctx, categories)
}

// Run generates every category with bounded concurrency. The first failure
// cancels the remaining work.
func (r *Runner) Run(ctx context.Context, categories []string) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return summary, fmt.Errorf("failed to create output dir: %w", err)
	}

	log.Printf("🚀 Batch %s: %d categories (concurrency %d)", summary.RunID, len(categories), r.concurrency)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, category := range categories {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			files, res, err := r.generateOne(ctx, category)
			if err != nil {
				return fmt.Errorf("category %q: %w", category, err)
			}
			log.Printf("[%d/%d] ✅ %s", i+1, len(categories), category)

			mu.Lock()
			defer mu.Unlock()
			summary.Files = append(summary.Files, files...)
			if res != nil {
				if res.Skipped {
					summary.Skipped++
				} else {
					summary.Published++
				}
			}
			return nil
		})
	}

	err := g.Wait()
	sort.Strings(summary.Files)
	if err != nil {
		log.Printf("❌ Batch %s failed: %v", summary.RunID, err)
		return summary, err
	}

	log.Printf("✅ Batch %s complete: %d files, %d published, %d skipped",
		summary.RunID, len(summary.Files), summary.Published, summary.Skipped)
	return summary, nil
}

func (r *Runner) generateOne(ctx context.Context, category string) ([]string, *publish.Result, error) {
	pkg := r.engine.Generate(category)
	if err := engine.Validate(pkg); err != nil {
		return nil, nil, fmt.Errorf("generated package is invalid: %w", err)
	}

	id := types.PackageID(pkg.Category)
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, nil, err
	}

	jsonPath := filepath.Join(r.outDir, id+".json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return nil, nil, fmt.Errorf("failed to write package: %w", err)
	}
	srtPath := filepath.Join(r.outDir, id+".srt")
	if err := os.WriteFile(srtPath, []byte(subtitles.SRT(subtitles.Lines(pkg))), 0o644); err != nil {
		return nil, nil, fmt.Errorf("failed to write subtitles: %w", err)
	}

	files := []string{jsonPath, srtPath}
	if r.publisher == nil {
		return files, nil, nil
	}

	res, err := r.publisher.Publish(ctx, r.engine.BankVersion(), pkg)
	if err != nil {
		return files, nil, err
	}
	return files, &res, nil
}
