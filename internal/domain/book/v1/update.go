package bookv1

// UpdateType represents the kind of price-level update.
type UpdateType uint8

const (
	// UpdateSet installs an absolute quantity at a price level.
	// A zero quantity behaves exactly like UpdateRemove.
	UpdateSet UpdateType = iota
	// UpdateRemove clears a price level.
	UpdateRemove
)

// String returns the wire name of the update type.
func (t UpdateType) String() string {
	switch t {
	case UpdateSet:
		return "set"
	case UpdateRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Update is a single, already-decoded price-level mutation.
type Update struct {
	Type     UpdateType
	Side     Side
	Price    Price
	Quantity Quantity
}
