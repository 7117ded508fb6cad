package depthpublisherv1

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// DepthEvent is a point-in-time view of the mirrored book, published for
// downstream consumers after a batch of updates has been applied.
type DepthEvent struct {
	EventID      string          `json:"eventID"`
	Pair         string          `json:"pair"`
	UpdateOffset int64           `json:"updateOffset"`
	Timestamp    int64           `json:"timestamp"`
	BestBid      *bookv1.Price   `json:"bestBid,omitempty"`
	BestAsk      *bookv1.Price   `json:"bestAsk,omitempty"`
	Spread       *bookv1.Price   `json:"spread,omitempty"`
	TotalBid     bookv1.Quantity `json:"totalBidQuantity"`
	TotalAsk     bookv1.Quantity `json:"totalAskQuantity"`
	Bids         []bookv1.Level  `json:"bids"`
	Asks         []bookv1.Level  `json:"asks"`
}

// NewDepthEvent creates an event shell with a fresh ULID and timestamp.
// ULIDs are time-sortable, so consumers can order events without relying
// on broker ordering.
func NewDepthEvent(pair string, updateOffset int64) *DepthEvent {
	return &DepthEvent{
		EventID:      ulid.Make().String(),
		Pair:         pair,
		UpdateOffset: updateOffset,
		Timestamp:    time.Now().UnixNano(),
	}
}

// ToBytes converts the depth event to a byte array.
func ToBytes(event *DepthEvent) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		return nil
	}

	return data
}

// FromBytes converts a byte array to a depth event.
func FromBytes(data []byte) *DepthEvent {
	var event DepthEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
