package main

import (
	"context"
	"kmc/config"
	"kmc/di"
	"kmc/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, consumer has nothing to do")

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeConsumer()

	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close consumer")
		}
	}()

	log.Info().Msg("Starting cache invalidation consumer.")

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Consumer stopped with error")
	}
}
