package depthpublisherv1

import "context"

// DepthPublisher defines the interface for publishing depth events.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=depthpublisherv1_mock
type DepthPublisher interface {
	// PublishDepthEvent publishes a depth event to the Kafka topic.
	PublishDepthEvent(ctx context.Context, event *DepthEvent) error
}
