package updatereaderv1

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// UpdateReader defines the interface for reading depth updates from a source.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=updatereaderv1_mock
type UpdateReader interface {
	// ReadMessage reads a message and returns the parsed depth update payload
	ReadMessage(ctx context.Context) (kafka.Message, *DepthUpdatePayload, error)
	// SetOffset sets the offset for the reader
	SetOffset(offset int64) error
	// Close closes the reader
	Close() error

	// CommitMessages commits the messages to Kafka after processing
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}
