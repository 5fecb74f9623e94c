package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"viralreel/engine"
	"viralreel/publish"
	"viralreel/types"
)

type fakeProducer struct {
	keys    []string
	results []types.GenerationResult
	err     error
}

func (f *fakeProducer) PublishJSON(key string, v any) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.results = append(f.results, v.(types.GenerationResult))
	return nil
}

type fakePublisher struct {
	versions []string
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, bankVersion string, pkg types.Package) (publish.Result, error) {
	if f.err != nil {
		return publish.Result{}, f.err
	}
	f.versions = append(f.versions, bankVersion)
	return publish.Result{PackageKey: pkg.Category}, nil
}

func newTestWorker(results ResultProducer, pub PackagePublisher) *Worker {
	w := New(engine.Default(), results, pub)
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return w
}

func TestHandleProducesResult(t *testing.T) {
	prod := &fakeProducer{}
	pub := &fakePublisher{}
	w := newTestWorker(prod, pub)

	req := &types.GenerationRequest{RequestID: "req-1", Category: "  Skincare Routines "}
	if err := w.Handle(context.Background(), req); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(prod.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(prod.results))
	}
	res := prod.results[0]
	wantID := types.PackageID("skincare routines")
	if res.RequestID != "req-1" || res.PackageID != wantID || prod.keys[0] != wantID {
		t.Fatalf("unexpected envelope %+v (key %s)", res, prod.keys[0])
	}
	if res.Status != StatusSuccess || res.Error != "" || res.Package == nil {
		t.Fatalf("expected success with package, got %+v", res)
	}
	if res.Package.Category != "skincare routines" {
		t.Fatalf("category = %q", res.Package.Category)
	}
	if !res.GeneratedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("generatedAt = %v", res.GeneratedAt)
	}
	if len(pub.versions) != 1 || pub.versions[0] != engine.Default().BankVersion() {
		t.Fatalf("publisher calls = %v", pub.versions)
	}
}

func TestHandleAssignsRequestID(t *testing.T) {
	prod := &fakeProducer{}
	w := newTestWorker(prod, nil)

	req := &types.GenerationRequest{Category: ""}
	if err := w.Handle(context.Background(), req); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if req.RequestID == "" || prod.results[0].RequestID != req.RequestID {
		t.Fatalf("request id not assigned: %+v", prod.results[0])
	}
	if prod.results[0].Package.Category != "viral content" {
		t.Fatalf("blank category should fall back, got %q", prod.results[0].Package.Category)
	}
}

func TestHandleErrors(t *testing.T) {
	cases := []struct {
		name string
		prod *fakeProducer
		pub  PackagePublisher
	}{
		{"producer fails", &fakeProducer{err: errors.New("broker down")}, nil},
		{"publisher fails", &fakeProducer{}, &fakePublisher{err: errors.New("access denied")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorker(c.prod, c.pub)
			err := w.Handle(context.Background(), &types.GenerationRequest{RequestID: "r", Category: "fitness"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if len(c.prod.results) != 0 {
				t.Fatalf("no result should be produced on failure")
			}
		})
	}
}
