package updatereaderv1

import (
	"errors"
	"fmt"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// ErrNegativeQuantity is returned when a payload carries a negative quantity.
var ErrNegativeQuantity = errors.New("quantity must be non-negative")

// DepthUpdatePayload is the already-normalized price-level update carried on
// the update topic. Prices are integer ticks and quantities lot counts;
// exchange wire formats never reach this service.
type DepthUpdatePayload struct {
	Type     string `json:"type"` // "set" or "remove"
	Side     string `json:"side"` // "bid" or "ask"
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Offset   int64  `json:"-"` // set from the Kafka message offset
}

// ToUpdate validates the payload and converts it into a book update.
// Negative quantities are rejected here, before they can reach the engine.
func (p *DepthUpdatePayload) ToUpdate() (bookv1.Update, error) {
	var update bookv1.Update

	switch p.Side {
	case bookv1.SideBid.String():
		update.Side = bookv1.SideBid
	case bookv1.SideAsk.String():
		update.Side = bookv1.SideAsk
	default:
		return update, fmt.Errorf("%w: %q", bookv1.ErrInvalidSide, p.Side)
	}

	switch p.Type {
	case bookv1.UpdateSet.String():
		update.Type = bookv1.UpdateSet
	case bookv1.UpdateRemove.String():
		update.Type = bookv1.UpdateRemove
	default:
		return update, fmt.Errorf("%w: %q", bookv1.ErrInvalidUpdateType, p.Type)
	}

	if p.Quantity < 0 {
		return update, fmt.Errorf("%w: got %d", ErrNegativeQuantity, p.Quantity)
	}

	update.Price = bookv1.Price(p.Price)
	update.Quantity = bookv1.Quantity(p.Quantity)

	return update, nil
}
