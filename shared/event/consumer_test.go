package event_test

import (
	"context"
	"encoding/json"
	"kmc/config"
	kafkaMocks "kmc/infras/kafka/mocks"
	cacheMocks "kmc/shared/cache/mocks"
	"kmc/shared/constant"
	"kmc/shared/event"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func message(t *testing.T, envelope event.Envelope) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(envelope)
	require.NoError(t, err)

	return kafkaGo.Message{Topic: "kmc.reservation.changed", Value: value}
}

func TestConsumer_Handle(t *testing.T) {
	t.Run("reservation change clears dependent caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		for _, prefix := range []string{
			constant.CachePrefixReservation,
			constant.CachePrefixRoom,
			constant.CachePrefixDashboard,
			constant.CachePrefixMeal,
		} {
			redisCache.EXPECT().Clear(gomock.Any(), prefix+constant.Asterix).Return(nil)
		}

		consumer := event.NewConsumer(&config.Config{}, kafkaMocks.NewMockClient(ctrl), redisCache)

		envelope := event.NewEnvelope(event.TypeReservationStatusChanged, "desk@kmc.org", event.ReservationChanged{KmcCd: "AB12CD"})

		assert.NoError(t, consumer.Handle(context.Background(), message(t, envelope)))
	})

	t.Run("session events touch no cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)
		redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Times(0)

		consumer := event.NewConsumer(&config.Config{}, kafkaMocks.NewMockClient(ctrl), redisCache)

		envelope := event.NewEnvelope(event.TypeSessionStarted, "desk@kmc.org", event.SessionStarted{Email: "desk@kmc.org"})

		assert.NoError(t, consumer.Handle(context.Background(), message(t, envelope)))
	})

	t.Run("garbage is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redisCache := cacheMocks.NewMockRedisCache(ctrl)

		consumer := event.NewConsumer(&config.Config{}, kafkaMocks.NewMockClient(ctrl), redisCache)

		assert.NoError(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("{not json")}))
	})
}

func TestPrefixes(t *testing.T) {
	assert.Len(t, event.Prefixes(event.TypeImportCompleted), 4)
	assert.Empty(t, event.Prefixes("unknown.type"))
}
