package book

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// Helper to apply an absolute set update
func set(t *testing.T, b *Book, side bookv1.Side, price bookv1.Price, qty bookv1.Quantity) {
	t.Helper()
	require.NoError(t, b.Apply(bookv1.Update{
		Type:     bookv1.UpdateSet,
		Side:     side,
		Price:    price,
		Quantity: qty,
	}))
}

// Helper to apply a remove update
func remove(t *testing.T, b *Book, side bookv1.Side, price bookv1.Price) {
	t.Helper()
	require.NoError(t, b.Apply(bookv1.Update{
		Type:  bookv1.UpdateRemove,
		Side:  side,
		Price: price,
	}))
}

// Test 1: Constructor and domain validation
func TestNew(t *testing.T) {
	b, err := New(DefaultTickDomain)
	require.NoError(t, err)
	assert.Equal(t, DefaultTickDomain, b.TickDomain())

	_, err = New(0)
	assert.ErrorIs(t, err, bookv1.ErrInvalidDomainSize)

	_, err = New(-5)
	assert.ErrorIs(t, err, bookv1.ErrInvalidDomainSize)
}

// Test 2: Queries on an empty book return "no data", not errors
func TestBook_EmptyQueries(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	_, ok := b.BestBid()
	assert.False(t, ok)

	_, ok = b.BestAsk()
	assert.False(t, ok)

	_, ok = b.Spread()
	assert.False(t, ok)

	assert.Equal(t, bookv1.Quantity(0), b.TotalQuantity(bookv1.SideBid))
	assert.Equal(t, bookv1.Quantity(0), b.TotalQuantity(bookv1.SideAsk))
	assert.Empty(t, b.TopLevels(bookv1.SideBid, 5))
	assert.Empty(t, b.TopLevels(bookv1.SideAsk, 5))

	qty, occupied, err := b.QuantityAt(100, bookv1.SideBid)
	require.NoError(t, err)
	assert.False(t, occupied)
	assert.Equal(t, bookv1.Quantity(0), qty)
}

// Test 3: Two-sided book, then removal of the only bid
func TestBook_SetAndRemoveFlow(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideBid, 100, 10)
	set(t, b, bookv1.SideAsk, 105, 5)

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(100), bid)

	ask, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(105), ask)

	spread, ok := b.Spread()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(5), spread)

	assert.Equal(t, bookv1.Quantity(10), b.TotalQuantity(bookv1.SideBid))
	assert.Equal(t, bookv1.Quantity(5), b.TotalQuantity(bookv1.SideAsk))
	assert.Equal(t, []bookv1.Level{{Price: 100, Quantity: 10}}, b.TopLevels(bookv1.SideBid, 1))

	remove(t, b, bookv1.SideBid, 100)

	_, ok = b.BestBid()
	assert.False(t, ok)
	_, ok = b.Spread()
	assert.False(t, ok)
	assert.Equal(t, bookv1.Quantity(0), b.TotalQuantity(bookv1.SideBid))

	// Ask side is untouched
	ask, ok = b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(105), ask)
}

// Test 4: Set with zero quantity behaves exactly like Remove
func TestBook_SetZeroQuantityClearsLevel(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideBid, 100, 10)
	set(t, b, bookv1.SideBid, 100, 0)

	_, ok := b.BestBid()
	assert.False(t, ok)
	assert.Equal(t, bookv1.Quantity(0), b.TotalQuantity(bookv1.SideBid))

	_, occupied, err := b.QuantityAt(100, bookv1.SideBid)
	require.NoError(t, err)
	assert.False(t, occupied)
}

// Test 5: Out-of-domain prices fail with ErrInvalidPrice, never panic
func TestBook_PriceOutOfDomain(t *testing.T) {
	b, err := New(200_001)
	require.NoError(t, err)

	_, _, err = b.QuantityAt(999_999, bookv1.SideBid)
	assert.ErrorIs(t, err, bookv1.ErrInvalidPrice)

	_, _, err = b.QuantityAt(-1, bookv1.SideAsk)
	assert.ErrorIs(t, err, bookv1.ErrInvalidPrice)

	err = b.Apply(bookv1.Update{Type: bookv1.UpdateSet, Side: bookv1.SideBid, Price: 200_001, Quantity: 1})
	assert.ErrorIs(t, err, bookv1.ErrInvalidPrice)

	err = b.Apply(bookv1.Update{Type: bookv1.UpdateRemove, Side: bookv1.SideAsk, Price: -7})
	assert.ErrorIs(t, err, bookv1.ErrInvalidPrice)
}

// Test 6: Invalid side and update type are rejected at the boundary
func TestBook_InvalidUpdateRejected(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	err = b.Apply(bookv1.Update{Type: bookv1.UpdateSet, Side: bookv1.Side(9), Price: 10, Quantity: 1})
	assert.ErrorIs(t, err, bookv1.ErrInvalidSide)

	err = b.Apply(bookv1.Update{Type: bookv1.UpdateType(9), Side: bookv1.SideBid, Price: 10, Quantity: 1})
	assert.ErrorIs(t, err, bookv1.ErrInvalidUpdateType)
}

// Test 7: Replacing an occupied level adjusts the total by delta only
func TestBook_ReplaceQuantity(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideAsk, 300, 40)
	set(t, b, bookv1.SideAsk, 300, 15) // shrink
	assert.Equal(t, bookv1.Quantity(15), b.TotalQuantity(bookv1.SideAsk))

	set(t, b, bookv1.SideAsk, 300, 90) // grow
	assert.Equal(t, bookv1.Quantity(90), b.TotalQuantity(bookv1.SideAsk))

	ask, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(300), ask)
}

// Test 8: Applying the identical Set twice changes nothing observable
func TestBook_IdempotentSet(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	update := bookv1.Update{Type: bookv1.UpdateSet, Side: bookv1.SideBid, Price: 250, Quantity: 7}
	require.NoError(t, b.Apply(update))
	require.NoError(t, b.Apply(update))

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(250), bid)
	assert.Equal(t, bookv1.Quantity(7), b.TotalQuantity(bookv1.SideBid))
	assert.Equal(t, []bookv1.Level{{Price: 250, Quantity: 7}}, b.TopLevels(bookv1.SideBid, 10))
}

// Test 9: Removing an absent level is a no-op
func TestBook_RemoveAbsentLevel(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideBid, 100, 10)
	remove(t, b, bookv1.SideBid, 500) // never occupied
	remove(t, b, bookv1.SideBid, 500) // still a no-op

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(100), bid)
	assert.Equal(t, bookv1.Quantity(10), b.TotalQuantity(bookv1.SideBid))
}

// Test 10: Removing a non-best level never touches the cached best
func TestBook_RemoveNonBest(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideBid, 100, 1)
	set(t, b, bookv1.SideBid, 200, 2)
	set(t, b, bookv1.SideBid, 300, 3)

	remove(t, b, bookv1.SideBid, 200)

	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(300), bid)
	assert.Equal(t, bookv1.Quantity(4), b.TotalQuantity(bookv1.SideBid))
}

// Test 11: Removing the best walks the bitset to the next occupied tick,
// across block boundaries, down to the empty sentinel
func TestBook_RemoveBestRescansBitset(t *testing.T) {
	b, err := New(10_000)
	require.NoError(t, err)

	// Bid levels far enough apart to live in different 64-tick blocks
	prices := []bookv1.Price{37, 640, 641, 5_000, 9_999}
	for _, p := range prices {
		set(t, b, bookv1.SideBid, p, 1)
	}

	expect := []bookv1.Price{9_999, 5_000, 641, 640, 37}
	for i, p := range expect {
		bid, ok := b.BestBid()
		require.True(t, ok, "step %d", i)
		assert.Equal(t, p, bid, "step %d", i)
		remove(t, b, bookv1.SideBid, p)
	}

	_, ok := b.BestBid()
	assert.False(t, ok)

	// Symmetric case for the ask side, scanning upward
	for _, p := range prices {
		set(t, b, bookv1.SideAsk, p, 1)
	}

	expect = []bookv1.Price{37, 640, 641, 5_000, 9_999}
	for i, p := range expect {
		ask, ok := b.BestAsk()
		require.True(t, ok, "step %d", i)
		assert.Equal(t, p, ask, "step %d", i)
		remove(t, b, bookv1.SideAsk, p)
	}

	_, ok = b.BestAsk()
	assert.False(t, ok)
}

// Test 12: A crossed book reports a negative spread instead of erroring
func TestBook_CrossedBookNegativeSpread(t *testing.T) {
	b, err := New(1_000)
	require.NoError(t, err)

	set(t, b, bookv1.SideBid, 500, 10)
	set(t, b, bookv1.SideAsk, 490, 10)

	spread, ok := b.Spread()
	require.True(t, ok)
	assert.Equal(t, bookv1.Price(-10), spread)
}

// Test 13: TopLevels ordering, truncation and sparse walking
func TestBook_TopLevels(t *testing.T) {
	b, err := New(10_000)
	require.NoError(t, err)

	for _, p := range []bookv1.Price{10, 700, 705, 9_000} {
		set(t, b, bookv1.SideBid, p, bookv1.Quantity(p))
		set(t, b, bookv1.SideAsk, p, bookv1.Quantity(p))
	}

	bids := b.TopLevels(bookv1.SideBid, 3)
	require.Len(t, bids, 3)
	assert.Equal(t, []bookv1.Level{
		{Price: 9_000, Quantity: 9_000},
		{Price: 705, Quantity: 705},
		{Price: 700, Quantity: 700},
	}, bids)

	asks := b.TopLevels(bookv1.SideAsk, 3)
	require.Len(t, asks, 3)
	assert.Equal(t, []bookv1.Level{
		{Price: 10, Quantity: 10},
		{Price: 700, Quantity: 700},
		{Price: 705, Quantity: 705},
	}, asks)

	// More levels requested than occupied
	assert.Len(t, b.TopLevels(bookv1.SideBid, 100), 4)

	// n = 0 yields an empty sequence
	assert.Empty(t, b.TopLevels(bookv1.SideAsk, 0))
}

// Test 14: Randomized update stream checked against a naive reference model
func TestBook_RandomizedAgainstReferenceModel(t *testing.T) {
	const domain = 4_096

	b, err := New(domain)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	model := map[bookv1.Side]map[bookv1.Price]bookv1.Quantity{
		bookv1.SideBid: {},
		bookv1.SideAsk: {},
	}

	for i := 0; i < 50_000; i++ {
		side := bookv1.SideBid
		if rng.Intn(2) == 1 {
			side = bookv1.SideAsk
		}
		price := bookv1.Price(rng.Intn(domain))

		if rng.Intn(4) == 0 {
			remove(t, b, side, price)
			delete(model[side], price)
		} else {
			qty := bookv1.Quantity(rng.Intn(500)) // zero qty exercises the remove path
			set(t, b, side, price, qty)
			if qty == 0 {
				delete(model[side], price)
			} else {
				model[side][price] = qty
			}
		}
	}

	for side, levels := range model {
		var total bookv1.Quantity
		bestSet := false
		var best bookv1.Price
		for p, q := range levels {
			total += q
			if !bestSet ||
				(side == bookv1.SideBid && p > best) ||
				(side == bookv1.SideAsk && p < best) {
				best = p
				bestSet = true
			}
		}

		assert.Equal(t, total, b.TotalQuantity(side), "total on %s", side)

		var got bookv1.Price
		var ok bool
		if side == bookv1.SideBid {
			got, ok = b.BestBid()
		} else {
			got, ok = b.BestAsk()
		}
		require.Equal(t, bestSet, ok, "best presence on %s", side)
		if bestSet {
			assert.Equal(t, best, got, "best on %s", side)
		}

		for p, q := range levels {
			qty, occupied, err := b.QuantityAt(p, side)
			require.NoError(t, err)
			require.True(t, occupied)
			assert.Equal(t, q, qty)
		}
	}
}
