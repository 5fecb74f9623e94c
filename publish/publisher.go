package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"viralreel/common"
	"viralreel/subtitles"
	"viralreel/types"
)

// ObjectStore is the subset of common.S3 the publisher uses
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
}

// Publisher uploads packages and their subtitle files to object storage
type Publisher struct {
	store  ObjectStore
	bucket string
	prefix string
}

// Result lists the keys written for one package
type Result struct {
	PackageKey  string `json:"packageKey"`
	SubtitleKey string `json:"subtitleKey"`
	Skipped     bool   `json:"skipped"` // already published under this bank version
}

// New creates a publisher writing under prefix in bucket
func New(store ObjectStore, bucket, prefix string) *Publisher {
	return &Publisher{store: store, bucket: bucket, prefix: prefix}
}

// NewFromEnv returns a publisher configured from S3_* variables, or nil when
// S3_BUCKET is unset so callers can skip publishing
func NewFromEnv(ctx context.Context) (*Publisher, error) {
	cfg := common.S3ConfigFromEnv()
	if cfg.Bucket == "" {
		return nil, nil
	}

	client, err := common.NewS3(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}
	return New(client, cfg.Bucket, cfg.Prefix), nil
}

// Keys returns the object keys for a package under a bank version
func (p *Publisher) Keys(bankVersion string, pkg types.Package) (packageKey, subtitleKey string) {
	base := p.prefix + "packages/" + bankVersion + "/" + types.PackageID(pkg.Category)
	return base + ".json", base + ".srt"
}

// Publish uploads the package JSON and its SRT subtitles. Packages are
// deterministic per bank version and category, so existing objects are left alone.
func (p *Publisher) Publish(ctx context.Context, bankVersion string, pkg types.Package) (Result, error) {
	packageKey, subtitleKey := p.Keys(bankVersion, pkg)
	res := Result{PackageKey: packageKey, SubtitleKey: subtitleKey}

	exists, err := p.store.Exists(ctx, p.bucket, packageKey)
	if err != nil {
		return res, fmt.Errorf("failed to check %s: %w", packageKey, err)
	}
	if exists {
		res.Skipped = true
		return res, nil
	}

	body, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return res, err
	}

	// subtitles first so a visible package always has its captions
	srt := subtitles.SRT(subtitles.Lines(pkg))
	if err := p.store.Put(ctx, p.bucket, subtitleKey, bytes.NewReader([]byte(srt)), subtitles.FormatSRT.ContentType(), "public, max-age=300"); err != nil {
		return res, fmt.Errorf("failed to upload %s: %w", subtitleKey, err)
	}
	if err := p.store.Put(ctx, p.bucket, packageKey, bytes.NewReader(body), "application/json", "public, max-age=300"); err != nil {
		return res, fmt.Errorf("failed to upload %s: %w", packageKey, err)
	}

	log.Printf("📤 Published %q to s3://%s/%s", pkg.Category, p.bucket, packageKey)
	return res, nil
}
