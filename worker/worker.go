package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"viralreel/engine"
	"viralreel/publish"
	sharedKafka "viralreel/shared/kafka"
	"viralreel/types"

	"github.com/google/uuid"
)

const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
)

// ResultProducer sends result envelopes, keyed by package id
type ResultProducer interface {
	PublishJSON(key string, v any) error
}

// PackagePublisher stores finished packages (publish.Publisher in production)
type PackagePublisher interface {
	Publish(ctx context.Context, bankVersion string, pkg types.Package) (publish.Result, error)
}

// Worker turns generation requests into result envelopes
type Worker struct {
	engine    *engine.Engine
	results   ResultProducer
	publisher PackagePublisher
	now       func() time.Time
}

// New creates a worker. publisher may be nil to skip object storage.
func New(eng *engine.Engine, results ResultProducer, publisher PackagePublisher) *Worker {
	return &Worker{
		engine:    eng,
		results:   results,
		publisher: publisher,
		now:       time.Now,
	}
}

// Handle generates the package for one request and produces its result.
// A returned error means the request should be retried.
func (w *Worker) Handle(ctx context.Context, req *types.GenerationRequest) error {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	pkg := w.engine.Generate(req.Category)
	res := types.GenerationResult{
		RequestID:   req.RequestID,
		PackageID:   types.PackageID(pkg.Category),
		GeneratedAt: w.now().UTC(),
	}

	if err := engine.Validate(pkg); err != nil {
		// a broken package is a bank defect; retrying would fail the same way
		log.Printf("❌ Package for %q failed validation: %v", pkg.Category, err)
		res.Status = StatusInvalid
		res.Error = err.Error()
	} else {
		if w.publisher != nil {
			if _, err := w.publisher.Publish(ctx, w.engine.BankVersion(), pkg); err != nil {
				return fmt.Errorf("failed to publish package %s: %w", res.PackageID, err)
			}
		}
		res.Status = StatusSuccess
		res.Package = &pkg
	}

	if err := w.results.PublishJSON(res.PackageID, res); err != nil {
		return fmt.Errorf("failed to produce result for %s: %w", req.RequestID, err)
	}

	log.Printf("✅ Generated package %s for %q (request %s)", res.PackageID, pkg.Category, req.RequestID)
	return nil
}

// ConsumerConfig holds the Kafka settings for the worker
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// NewConsumer wires Handle into a shared Kafka consumer
func (w *Worker) NewConsumer(cfg ConsumerConfig) (*sharedKafka.Consumer, error) {
	handler := &sharedKafka.TypedMessageHandler[types.GenerationRequest]{
		Process: func(ctx context.Context, msg *types.GenerationRequest) error {
			log.Printf("🎬 Generating package: request=%s category=%q", msg.RequestID, msg.Category)
			return w.Handle(ctx, msg)
		},
		AlwaysMark: true, // undecodable requests are dropped, failed ones retried
	}

	return sharedKafka.NewConsumer(sharedKafka.ConsumerConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
		Handler: handler,
	})
}

// Run consumes requests until ctx is canceled, then closes the consumer
func (w *Worker) Run(ctx context.Context, cfg ConsumerConfig) error {
	consumer, err := w.NewConsumer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	if err := consumer.Start(ctx); err != nil {
		_ = consumer.Close()
		return err
	}

	<-ctx.Done()
	log.Println("Received termination signal")

	// let in-flight messages finish
	time.Sleep(2 * time.Second)

	return consumer.Close()
}
