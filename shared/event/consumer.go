package event

import (
	"context"
	"fmt"
	"kmc/config"
	"kmc/infras/kafka"
	"kmc/shared"
	"kmc/shared/cache"
	"kmc/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Consumer drops cached reads on every instance when another instance changes the data behind them.
type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	cache  cache.RedisCache
}

func NewConsumer(cfg *config.Config, client kafka.Client, cache cache.RedisCache) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		cache:  cache,
	}
}

// Prefixes lists the cache prefixes made stale by an event type.
func Prefixes(eventType string) []string {
	switch eventType {
	case TypeReservationCreated, TypeReservationUpdated, TypeReservationStatusChanged, TypeImportCompleted:
		return []string{
			constant.CachePrefixReservation,
			constant.CachePrefixRoom,
			constant.CachePrefixDashboard,
			constant.CachePrefixMeal,
		}
	default:
		return nil
	}
}

// Run blocks until ctx is cancelled or a topic reader fails.
func (c *Consumer) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	topics := []string{
		c.cfg.Kafka.Topics.Reservation,
		c.cfg.Kafka.Topics.Import,
		c.cfg.Kafka.Topics.Session,
	}

	for _, topic := range topics {
		group.Go(func() error {
			return c.client.Consume(ctx, constant.Empty, topic, c.Handle)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("consumer stopped: %w", err)
	}

	return nil
}

func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	envelope, err := kafka.Decode[Envelope](message)
	if err != nil {
		log.Warn().Err(err).Str("topic", message.Topic).Msg("skipping undecodable event")

		return nil
	}

	if envelope.Type == TypeSessionStarted {
		log.Info().Str("admin", envelope.Actor).Msg("admin session started elsewhere")

		return nil
	}

	for _, prefix := range Prefixes(envelope.Type) {
		shared.InvalidateCaches(ctx, c.cache, prefix)
	}

	log.Debug().Str("type", envelope.Type).Str("actor", envelope.Actor).Msg("caches invalidated")

	return nil
}

func (c *Consumer) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("failed to close kafka client: %w", err)
	}

	return nil
}
