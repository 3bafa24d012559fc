package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"pawfectfind/internal/config"
	"pawfectfind/internal/database"
	"pawfectfind/internal/otel"
	"pawfectfind/internal/queue"
	"pawfectfind/internal/repository/sqlserver"
	"pawfectfind/internal/service"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc := time.UTC

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry tracing (no-op when disabled or misconfigured)
	shutdownTracing, err := otel.Init(ctx, loc, "pawfectfind-worker")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize Azure SQL connection (with pooling via database/sql)
	db, err := database.NewSQLServer(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	processor := service.NewBookingProcessor(sqlserver.NewBookingSQLServer(db))

	receiveWait := time.Duration(cfg.ServiceBus.ReceiveWaitSec) * time.Second
	restartBackoff := time.Duration(cfg.ServiceBus.RestartBackoffSec) * time.Second

	logEvent(loc, map[string]any{
		"event":       "worker_starting",
		"queue":       cfg.ServiceBus.QueueName,
		"concurrency": cfg.Worker.Concurrency,
	})

	// The consumer is restarted with a backoff after transport failures so a
	// Service Bus hiccup never takes the worker down for good.
	for {
		if err := runConsumer(ctx, cfg, processor, receiveWait, loc); err != nil && !errors.Is(err, context.Canceled) {
			logEvent(loc, map[string]any{
				"event":         "consumer_failed",
				"level":         "error",
				"error_message": err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			logEvent(loc, map[string]any{"event": "worker_stopped"})
			return
		case <-time.After(restartBackoff):
		}
	}
}

func runConsumer(ctx context.Context, cfg *config.AppConfig, processor *service.BookingProcessor, receiveWait time.Duration, loc *time.Location) error {
	receiver, err := queue.NewServiceBusReceiver(cfg.ServiceBus.ConnectionString, cfg.ServiceBus.QueueName)
	if err != nil {
		return err
	}
	defer receiver.Close(context.Background())

	consumer := queue.NewConsumer(receiver, processor.Process, cfg.Worker.Concurrency, receiveWait, loc)
	return consumer.Run(ctx)
}

func logEvent(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	data["component"] = "worker"
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	if b, err := json.Marshal(data); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
