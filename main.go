package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viralreel/api"
	"viralreel/batch"
	"viralreel/engine"
	"viralreel/shared/kafka"
	"viralreel/templates"
	"viralreel/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	kafkaMode := flag.Bool("kafka", false, "Run as a Kafka worker (consume generation requests)")
	batchMode := flag.Bool("batch", false, "Generate every category in BATCH_FILE and exit")
	cronSchedule := flag.String("cron", "", "Cron schedule for BATCH_FILE runs while serving (e.g. \"0 * * * *\")")
	port := flag.String("port", api.PortFromEnv(), "HTTP API port")
	flag.Parse()

	log.Println("🎬 viralreel - Starting...")

	bank, err := templates.LoadOrDefault(os.Getenv("TEMPLATES_FILE"))
	if err != nil {
		log.Fatalf("❌ Failed to load templates: %v", err)
	}
	eng, err := engine.New(bank)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("📋 Template bank %s (%d segments)", eng.BankVersion(), len(bank.Segments))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher := initPublisher(ctx)
	batchCfg := batch.ConfigFromEnv()

	if *batchMode {
		log.Println("📁 Running in BATCH mode")
		if batchCfg.File == "" {
			log.Fatalf("❌ BATCH_FILE is required in batch mode")
		}
		runner := batch.NewRunner(eng, batchCfg, publisher)
		if _, err := runner.RunFile(ctx, batchCfg.File); err != nil {
			log.Fatalf("❌ Batch failed: %v", err)
		}
		return
	}

	if *kafkaMode {
		log.Println("📨 Running in KAFKA worker mode")
		runWorker(ctx, eng, publisher)
		return
	}

	log.Println("🌐 Running in API mode")
	respCache, closeCache := initCache()
	defer closeCache()

	router := api.NewRouter(api.Deps{Engine: eng, Bank: bank, Cache: respCache})
	server := api.NewServer(router, *port)
	if err := server.Start(); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}

	log.Println("📌 Endpoints:")
	log.Println("   GET  /api/health")
	log.Println("   POST /api/generate         - {\"category\": \"...\"}")
	log.Println("   GET  /api/generate?category=")
	log.Println("   GET  /api/subtitles?category=&format=srt|vtt|ass")
	log.Println("   GET  /api/templates")

	if *cronSchedule != "" {
		if batchCfg.File == "" {
			log.Fatalf("❌ BATCH_FILE is required with -cron")
		}
		runner := batch.NewRunner(eng, batchCfg, publisher)
		err := server.StartCron(*cronSchedule, func(ctx context.Context) error {
			_, err := runner.RunFile(ctx, batchCfg.File)
			return err
		})
		if err != nil {
			log.Fatalf("❌ Failed to start cron: %v", err)
		}
	}

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

func runWorker(ctx context.Context, eng *engine.Engine, publisher batch.PackagePublisher) {
	cfg := worker.ConsumerConfig{
		Brokers: kafka.GetKafkaBrokers(),
		Topic:   kafka.GetRequestsTopic(),
		GroupID: kafka.GetKafkaGroupID(),
	}
	resultsTopic := kafka.GetResultsTopic()

	log.Printf("🔗 Kafka Brokers: %v", cfg.Brokers)
	log.Printf("📋 Requests: %s -> Results: %s", cfg.Topic, resultsTopic)
	log.Printf("👥 Consumer Group: %s", cfg.GroupID)

	producer, err := kafka.NewProducer(cfg.Brokers, resultsTopic)
	if err != nil {
		log.Fatalf("❌ Failed to create Kafka producer: %v", err)
	}
	defer producer.Close()

	w := worker.New(eng, producer, publisher)
	if err := w.Run(ctx, cfg); err != nil {
		log.Fatalf("❌ Kafka worker failed: %v", err)
	}
}
