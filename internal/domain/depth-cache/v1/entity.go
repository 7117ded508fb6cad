package depthcachev1

import (
	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// DepthSnapshot is the live view of the mirrored book kept in the cache for
// downstream readers. It is derived data only; the book itself is never
// persisted or restored from it.
type DepthSnapshot struct {
	Pair         string          `json:"pair"`
	UpdateOffset int64           `json:"updateOffset"`
	CapturedAt   int64           `json:"capturedAt"`
	BestBid      *bookv1.Price   `json:"bestBid,omitempty"`
	BestAsk      *bookv1.Price   `json:"bestAsk,omitempty"`
	Spread       *bookv1.Price   `json:"spread,omitempty"`
	TotalBid     bookv1.Quantity `json:"totalBidQuantity"`
	TotalAsk     bookv1.Quantity `json:"totalAskQuantity"`
	Bids         []bookv1.Level  `json:"bids"`
	Asks         []bookv1.Level  `json:"asks"`
}
