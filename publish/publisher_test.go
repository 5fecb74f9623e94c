package publish

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"viralreel/engine"
	"viralreel/types"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	ctypes  map[string]string
	putErr  error
	headErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, ctypes: map[string]string{}}
}

func (f *fakeStore) Put(ctx context.Context, bucket, key string, body io.Reader, contentType, cacheControl string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[bucket+"/"+key] = data
	f.ctypes[bucket+"/"+key] = contentType
	return nil
}

func (f *fakeStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	if f.headErr != nil {
		return false, f.headErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[bucket+"/"+key]
	return ok, nil
}

func TestPublishWritesPackageAndSubtitles(t *testing.T) {
	store := newFakeStore()
	pub := New(store, "reels", "daily/")
	pkg := engine.Generate("home cooking")

	res, err := pub.Publish(context.Background(), "builtin-1", pkg)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if res.Skipped {
		t.Fatalf("first publish should not be skipped")
	}

	wantBase := "daily/packages/builtin-1/" + types.PackageID("home cooking")
	if res.PackageKey != wantBase+".json" || res.SubtitleKey != wantBase+".srt" {
		t.Fatalf("unexpected keys %+v", res)
	}

	var got types.Package
	if err := json.Unmarshal(store.objects["reels/"+res.PackageKey], &got); err != nil {
		t.Fatalf("stored package is not JSON: %v", err)
	}
	if got.Category != "home cooking" || len(got.Script) != len(pkg.Script) {
		t.Fatalf("stored package mismatch: %+v", got)
	}
	if ct := store.ctypes["reels/"+res.PackageKey]; ct != "application/json" {
		t.Fatalf("package content type = %q", ct)
	}

	srt := string(store.objects["reels/"+res.SubtitleKey])
	if !strings.HasPrefix(srt, "1\n00:00:00,000 --> ") {
		t.Fatalf("subtitle object is not SRT: %q", srt)
	}
}

func TestPublishSkipsExisting(t *testing.T) {
	store := newFakeStore()
	pub := New(store, "reels", "")
	pkg := engine.Generate("home cooking")

	if _, err := pub.Publish(context.Background(), "v1", pkg); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	res, err := pub.Publish(context.Background(), "v1", pkg)
	if err != nil {
		t.Fatalf("second Publish: %v", err)
	}
	if !res.Skipped {
		t.Fatalf("second publish should be skipped")
	}

	res, err = pub.Publish(context.Background(), "v2", pkg)
	if err != nil || res.Skipped {
		t.Fatalf("new bank version should publish again: %+v, %v", res, err)
	}
}

func TestPublishErrors(t *testing.T) {
	pkg := engine.Generate("home cooking")

	store := newFakeStore()
	store.headErr = errors.New("denied")
	if _, err := New(store, "reels", "").Publish(context.Background(), "v1", pkg); err == nil || !strings.Contains(err.Error(), "denied") {
		t.Fatalf("expected head error, got %v", err)
	}

	store = newFakeStore()
	store.putErr = errors.New("quota")
	if _, err := New(store, "reels", "").Publish(context.Background(), "v1", pkg); err == nil || !strings.Contains(err.Error(), "quota") {
		t.Fatalf("expected put error, got %v", err)
	}
}

func TestNewFromEnvDisabledWithoutBucket(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	pub, err := NewFromEnv(context.Background())
	if err != nil || pub != nil {
		t.Fatalf("NewFromEnv() = %v, %v; want nil, nil", pub, err)
	}
}
