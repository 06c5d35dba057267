// Package event publishes domain change notifications to kafka.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"kmc/config"
	"kmc/infras/kafka"
	"kmc/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	TypeReservationCreated       = "reservation.created"
	TypeReservationUpdated       = "reservation.updated"
	TypeReservationStatusChanged = "reservation.status_changed"
	TypeImportCompleted          = "import.completed"
	TypeSessionStarted           = "session.started"
)

type Envelope struct {
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type ReservationChanged struct {
	KmcCd  string `json:"kmc_cd"`
	SeqNo  int    `json:"seq_no"`
	RoomNo string `json:"room_no"`
	Status string `json:"status"`
}

type ImportCompleted struct {
	Rows    int    `json:"rows"`
	FileURL string `json:"file_url"`
}

type SessionStarted struct {
	Email     string `json:"email"`
	TokenID   string `json:"token_id"`
	UserAgent string `json:"user_agent"`
}

type Publisher interface {
	// Publish never blocks the caller; delivery failures are logged.
	Publish(ctx context.Context, topic, key string, envelope Envelope)
}

type kafkaPublisher struct {
	client kafka.Client
}

type disabledPublisher struct{}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		return &disabledPublisher{}
	}

	return &kafkaPublisher{client: client}
}

func NewEnvelope(eventType, actor string, payload any) Envelope {
	return Envelope{
		Type:       eventType,
		Actor:      actor,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic, key string, envelope Envelope) {
	go func(ctx context.Context) {
		err := p.client.SendMessages(ctx, topic, kafka.Message{Key: key, Value: envelope})
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Str("type", envelope.Type).Msg("failed to publish event")
		}
	}(context.WithoutCancel(ctx))
}

func (p *disabledPublisher) Publish(_ context.Context, topic, _ string, envelope Envelope) {
	log.Debug().Str("topic", topic).Str("type", envelope.Type).Msg("kafka disabled, event dropped")
}
