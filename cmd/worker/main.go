// Command worker runs the fiscal document queue worker: it connects
// to RabbitMQ, consumes descriptor messages, fetches the referenced
// XML from object storage, decodes and republishes the JSON result.
// Grounded on original_source/src/main.rs's startup sequence (dotenv,
// logger init, then connect), adapted to zap and amqp091-go. Logger
// construction terminates the process with exit code 101 if the
// executable's own path cannot be resolved for the file sink, mirroring
// main.rs's exit(101) on env::current_exe() failure.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/biel-despair/fiscal-doc-worker/broker"
	"github.com/biel-despair/fiscal-doc-worker/common"
	"github.com/biel-despair/fiscal-doc-worker/logging"
	"github.com/biel-despair/fiscal-doc-worker/storage"
	"github.com/biel-despair/fiscal-doc-worker/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := common.LoadConfig()
	if err != nil {
		zap.S().Fatalf("could not load configuration: %v", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		zap.S().Fatalf("could not build logger: %v", err)
	}
	defer log.Sync()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal("could not build storage client", zap.Error(err))
	}

	w := worker.New(store, log)

	var sup *broker.ConsumerSupervisor
	sup = broker.New(cfg.Broker, log, func(d broker.Delivery) {
		w.Handle(sup.Publisher())(d)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("starting worker", zap.String("consume_queue", cfg.Broker.ConsumeQueue))
	if err := sup.Run(ctx); err != nil && err != context.Canceled {
		log.Error("supervisor stopped", zap.Error(err))
	}
}
