package bookv1

// Book defines the interface for a price-level mirror of a limit order book.
//
// Implementations are single-writer structures: callers that share one
// instance across goroutines must impose their own synchronization at the
// boundary.
type Book interface {
	// Apply applies a single price-level update to the book.
	Apply(update Update) error
	// BestBid returns the highest occupied bid tick, if any.
	BestBid() (Price, bool)
	// BestAsk returns the lowest occupied ask tick, if any.
	BestAsk() (Price, bool)
	// Spread returns best ask minus best bid when both sides are occupied.
	// A negative (crossed) spread is a valid, reportable state.
	Spread() (Price, bool)
	// QuantityAt returns the resting quantity at a tick. The boolean is false
	// when the level is empty; the error is non-nil when the tick is outside
	// the domain.
	QuantityAt(price Price, side Side) (Quantity, bool, error)
	// TotalQuantity returns the aggregate resting quantity on one side.
	TotalQuantity(side Side) Quantity
	// TopLevels returns up to n occupied levels walking outward from the best
	// price, descending for bids and ascending for asks.
	TopLevels(side Side, n int) []Level
}
