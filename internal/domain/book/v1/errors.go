package bookv1

import "errors"

var (
	// ErrInvalidPrice is returned when a price tick falls outside the
	// configured tick domain.
	ErrInvalidPrice = errors.New("price outside tick domain")
	// ErrInvalidSide is returned when an update names neither side of the book.
	ErrInvalidSide = errors.New("unknown book side")
	// ErrInvalidUpdateType is returned when an update carries an unknown type.
	ErrInvalidUpdateType = errors.New("unknown update type")
	// ErrInvalidDomainSize is returned when a book is constructed with a
	// non-positive tick domain.
	ErrInvalidDomainSize = errors.New("tick domain size must be positive")
)
