package updatereader

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	updatereaderv1 "github.com/depthline/bookmirror/internal/domain/update-reader/v1"
	"github.com/depthline/bookmirror/pkg/config"
	"github.com/depthline/bookmirror/pkg/logger"
)

// Reader represents a Kafka reader for consuming messages from the depth
// update topic.
type Reader struct {
	kafkaReader *kafka.Reader
	logger      logger.Logger
}

// NewReader creates a new Kafka reader for consuming depth updates.
// It returns an implementation of the UpdateReader interface.
func NewReader(config config.KafkaConfig, log logger.Logger) Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		Partition:   0,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})

	return Reader{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// logError is a helper method to log errors consistently
func (r Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.Field{Key: "error", Value: err.Error()},
		logger.Field{Key: "operation", Value: operation},
	)
}

// SetOffset sets the offset for the Kafka reader.
func (r Reader) SetOffset(offset int64) error {
	if err := r.kafkaReader.SetOffset(offset); err != nil {
		r.logError(err, "SetOffset")
		return err
	}
	return nil
}

// ReadMessage reads a message from the Kafka topic and parses it as a depth
// update payload.
func (r Reader) ReadMessage(ctx context.Context) (kafka.Message, *updatereaderv1.DepthUpdatePayload, error) {
	msg, err := r.kafkaReader.ReadMessage(ctx)
	if err != nil {
		r.logError(err, "ReadMessage")
		return kafka.Message{Offset: 0}, nil, err
	}

	var payload updatereaderv1.DepthUpdatePayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		r.logError(err, "UnmarshalUpdate")
		return kafka.Message{Offset: 0}, nil, err
	}

	r.logger.Debug("ReadMessage",
		logger.Field{
			Key:   "type",
			Value: payload.Type,
		},
		logger.Field{
			Key:   "side",
			Value: payload.Side,
		},
		logger.Field{
			Key:   "price",
			Value: payload.Price,
		},
		logger.Field{
			Key:   "quantity",
			Value: payload.Quantity,
		},
	)

	payload.Offset = msg.Offset

	return msg, &payload, nil
}

// Close properly closes the Kafka reader.
func (r Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}

// CommitMessages commits the messages to Kafka after processing. The reader
// is partition-pinned rather than group-managed, so there is nothing to
// commit; the engine replays from its own tracked offset instead.
func (r Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return nil
}
