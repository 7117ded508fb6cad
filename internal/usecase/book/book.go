// Package book implements an in-memory mirror of a limit order book's
// price-level state over a fixed, preallocated tick domain. It trades memory
// for speed: a dense array per side spans the entire domain, a presence
// bitset locates the nearest occupied tick when the cached best price is
// invalidated, and per-side totals are maintained by delta. Updates and
// queries are allocation-free after construction.
package book

import (
	"fmt"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// DefaultTickDomain is the tick domain used when no override is configured.
const DefaultTickDomain = 200_001

// Book mirrors the aggregate resting quantity at every price tick of both
// sides of a limit order book.
//
// Book is a single-writer structure: it holds no locks and must be guarded
// externally when shared across goroutines.
type Book struct {
	domain int64
	bids   *ladder
	asks   *ladder
}

var _ bookv1.Book = (*Book)(nil)

// New creates a book covering ticks [0, tickDomain). All storage is
// preallocated here and never resized.
func New(tickDomain int) (*Book, error) {
	if tickDomain <= 0 {
		return nil, fmt.Errorf("%w: got %d", bookv1.ErrInvalidDomainSize, tickDomain)
	}

	return &Book{
		domain: int64(tickDomain),
		bids:   newLadder(tickDomain, true),
		asks:   newLadder(tickDomain, false),
	}, nil
}

// TickDomain returns the number of ticks the book covers.
func (b *Book) TickDomain() int {
	return int(b.domain)
}

func (b *Book) side(s bookv1.Side) *ladder {
	if s == bookv1.SideBid {
		return b.bids
	}
	return b.asks
}

func (b *Book) checkPrice(price bookv1.Price) error {
	if price < 0 || int64(price) >= b.domain {
		return fmt.Errorf("%w: tick %d, domain [0, %d)", bookv1.ErrInvalidPrice, price, b.domain)
	}
	return nil
}

// Apply applies a single price-level update. A Set with zero quantity behaves
// exactly like a Remove; a Remove of an empty level is a no-op. The price is
// validated once here so the ladders below can index unconditionally.
func (b *Book) Apply(update bookv1.Update) error {
	if err := b.checkPrice(update.Price); err != nil {
		return err
	}
	if !update.Side.Valid() {
		return fmt.Errorf("%w: %d", bookv1.ErrInvalidSide, update.Side)
	}

	l := b.side(update.Side)

	switch update.Type {
	case bookv1.UpdateSet:
		if update.Quantity == 0 {
			l.clear(int(update.Price))
			return nil
		}
		l.set(int(update.Price), update.Quantity)
	case bookv1.UpdateRemove:
		l.clear(int(update.Price))
	default:
		return fmt.Errorf("%w: %d", bookv1.ErrInvalidUpdateType, update.Type)
	}

	return nil
}

// BestBid returns the highest occupied bid tick, if any.
func (b *Book) BestBid() (bookv1.Price, bool) {
	if b.bids.best < 0 {
		return 0, false
	}
	return bookv1.Price(b.bids.best), true
}

// BestAsk returns the lowest occupied ask tick, if any.
func (b *Book) BestAsk() (bookv1.Price, bool) {
	if b.asks.best < 0 {
		return 0, false
	}
	return bookv1.Price(b.asks.best), true
}

// Spread returns best ask minus best bid when both sides are occupied. The
// book does not prevent crossing, so the spread may be negative.
func (b *Book) Spread() (bookv1.Price, bool) {
	if b.bids.best < 0 || b.asks.best < 0 {
		return 0, false
	}
	return bookv1.Price(b.asks.best - b.bids.best), true
}

// QuantityAt returns the resting quantity at a tick. The boolean is false
// when the level is empty; out-of-domain ticks fail with ErrInvalidPrice.
func (b *Book) QuantityAt(price bookv1.Price, side bookv1.Side) (bookv1.Quantity, bool, error) {
	if err := b.checkPrice(price); err != nil {
		return 0, false, err
	}

	q := b.side(side).levels[price]
	return q, q > 0, nil
}

// TotalQuantity returns the aggregate resting quantity on one side.
func (b *Book) TotalQuantity(side bookv1.Side) bookv1.Quantity {
	return b.side(side).total
}

// TopLevels returns up to n occupied levels walking outward from the best
// price, descending for bids and ascending for asks. The walk is bounded by
// the scanned price range, not strictly by n, when levels are sparse.
func (b *Book) TopLevels(side bookv1.Side, n int) []bookv1.Level {
	return b.side(side).topLevels(n)
}
