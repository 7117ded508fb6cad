package bookv1

// Price is a discrete price tick. Tick-to-currency scaling is the caller's
// responsibility; the book only ever sees domain-relative integers.
type Price int64

// Quantity is the aggregate resting size at a price level, in lots.
// Zero means the level is empty.
type Quantity uint64

// Side identifies the side of the book a level belongs to.
type Side uint8

const (
	// SideBid is the buy side of the book.
	SideBid Side = iota
	// SideAsk is the sell side of the book.
	SideAsk
)

// String returns the wire name of the side.
func (s Side) String() string {
	switch s {
	case SideBid:
		return "bid"
	case SideAsk:
		return "ask"
	default:
		return "unknown"
	}
}

// Valid reports whether the side is one of the two known sides.
func (s Side) Valid() bool {
	return s == SideBid || s == SideAsk
}

// Level is one occupied (price, quantity) pair, as returned by depth queries.
type Level struct {
	Price    Price    `json:"price"`
	Quantity Quantity `json:"quantity"`
}
