package depthpublisher

import (
	"context"

	"github.com/segmentio/kafka-go"

	depthpublisherv1 "github.com/depthline/bookmirror/internal/domain/depth-publisher/v1"
	"github.com/depthline/bookmirror/pkg/config"
	"github.com/depthline/bookmirror/pkg/errors"
	"github.com/depthline/bookmirror/pkg/logger"
)

// Publisher represents a Kafka publisher for publishing depth events.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Logger
}

// NewPublisher creates a new Kafka publisher for publishing depth events.
func NewPublisher(config config.KafkaConfig, logger logger.Logger) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

// PublishDepthEvent publishes a depth event to the Kafka topic.
func (p *Publisher) PublishDepthEvent(ctx context.Context, event *depthpublisherv1.DepthEvent) error {
	msg := kafka.Message{
		Key:   []byte(event.Pair),
		Value: depthpublisherv1.ToBytes(event),
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(err,
			logger.Field{Key: "error", Value: err.Error()},
			logger.Field{Key: "eventID", Value: event.EventID},
			logger.Field{Key: "pair", Value: event.Pair},
		)
		return errors.NewTracer("failed to publish depth event").Wrap(err)
	}
	return nil
}

// Close flushes pending messages and closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}
