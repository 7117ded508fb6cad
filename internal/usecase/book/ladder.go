package book

import (
	"math/bits"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// blockBits is the width of one presence bitset block, 64 ticks per block.
const blockBits = 64

// ladder is one side of the book: a dense tick-indexed quantity array plus a
// presence bitset used to relocate the best tick after it empties. The bitset
// is redundant with the level array; bit(p) is set iff levels[p] > 0.
type ladder struct {
	levels []bookv1.Quantity
	blocks []uint64

	// best is the tick of the inside price, -1 when the side is empty.
	best  int64
	total bookv1.Quantity

	// descending: bids keep the maximum occupied tick as best, asks the minimum.
	descending bool
}

func newLadder(domain int, descending bool) *ladder {
	return &ladder{
		levels:     make([]bookv1.Quantity, domain),
		blocks:     make([]uint64, (domain+blockBits-1)/blockBits),
		best:       -1,
		descending: descending,
	}
}

func (l *ladder) setBit(tick int) {
	l.blocks[tick/blockBits] |= 1 << uint(tick%blockBits)
}

func (l *ladder) clearBit(tick int) {
	l.blocks[tick/blockBits] &^= 1 << uint(tick%blockBits)
}

// set installs an absolute, non-zero quantity at tick, keeping the bitset,
// the running total and the cached best in sync.
func (l *ladder) set(tick int, qty bookv1.Quantity) {
	old := l.levels[tick]
	l.levels[tick] = qty
	l.total += qty - old // unsigned delta wraps correctly when qty < old

	if old != 0 {
		// Replacement at an occupied tick. Bit and best are unaffected
		// since the price itself did not change.
		return
	}

	l.setBit(tick)

	// A fresh level can only move the best toward the inside, never away
	// from it, so no scan is needed here.
	if l.best < 0 {
		l.best = int64(tick)
		return
	}
	if l.descending {
		if int64(tick) > l.best {
			l.best = int64(tick)
		}
	} else if int64(tick) < l.best {
		l.best = int64(tick)
	}
}

// clear removes the level at tick. Clearing an already-empty tick is a no-op.
func (l *ladder) clear(tick int) {
	old := l.levels[tick]
	if old == 0 {
		return
	}

	l.levels[tick] = 0
	l.clearBit(tick)
	l.total -= old

	if int64(tick) == l.best {
		l.rescanBest(tick)
	}
}

// rescanBest re-derives the cached best by scanning bitset blocks away from
// the inside, starting at the block that held the departed best. No set bit
// can exist beyond the old best, so the whole starting block is safe to scan.
func (l *ladder) rescanBest(tick int) {
	block := tick / blockBits
	if l.descending {
		for b := block; b >= 0; b-- {
			if w := l.blocks[b]; w != 0 {
				l.best = int64(b*blockBits + blockBits - 1 - bits.LeadingZeros64(w))
				return
			}
		}
	} else {
		for b := block; b < len(l.blocks); b++ {
			if w := l.blocks[b]; w != 0 {
				l.best = int64(b*blockBits + bits.TrailingZeros64(w))
				return
			}
		}
	}

	l.best = -1
}

// topLevels collects up to n occupied levels walking from the best tick
// toward the domain boundary, skipping empty ticks.
func (l *ladder) topLevels(n int) []bookv1.Level {
	if n <= 0 || l.best < 0 {
		return nil
	}

	out := make([]bookv1.Level, 0, n)
	if l.descending {
		for p := l.best; p >= 0 && len(out) < n; p-- {
			if q := l.levels[p]; q > 0 {
				out = append(out, bookv1.Level{Price: bookv1.Price(p), Quantity: q})
			}
		}
	} else {
		for p := l.best; p < int64(len(l.levels)) && len(out) < n; p++ {
			if q := l.levels[p]; q > 0 {
				out = append(out, bookv1.Level{Price: bookv1.Price(p), Quantity: q})
			}
		}
	}

	return out
}
