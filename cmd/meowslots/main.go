package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikmy/meowslots/internal/api"
	"github.com/nikmy/meowslots/internal/events"
	"github.com/nikmy/meowslots/internal/repo"
	"github.com/nikmy/meowslots/internal/scheduling"
	"github.com/nikmy/meowslots/pkg/errors"
	"github.com/nikmy/meowslots/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	store, err := repo.NewMongoClient(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init mongo client"))
	}

	var producer events.Producer = events.NewNop()
	if cfg.Kafka.Enabled() {
		producer = events.NewKafkaProducer(cfg.Kafka, log)
	}

	scheduler, err := scheduling.New(log, store, producer, cfg.Scheduling)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init scheduling service"))
	}

	server := api.NewServer(cfg.API, log, scheduler)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownErrs := []error{
			server.Shutdown(context.Background()),
			producer.Close(),
			store.Close(context.Background()),
		}
		if err := errors.Collapse(shutdownErrs); err != nil {
			log.Error(errors.WrapFail(err, "shutdown"))
		}

		stopped <- struct{}{}
	})

	stdlog.Println("Serving...")

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
