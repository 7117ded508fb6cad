package book

import (
	"testing"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

// warmBook seeds levels around the inside the way the replay workload does:
// a repeating cycle of prices across a bounded window, alternating sides.
func warmBook(b *testing.B) *Book {
	ob, err := New(DefaultTickDomain)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		_ = ob.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     bookv1.SideBid,
			Price:    bookv1.Price(100_000 + i*10),
			Quantity: 100,
		})
		_ = ob.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     bookv1.SideAsk,
			Price:    bookv1.Price(100_100 + i*10),
			Quantity: 100,
		})
	}

	return ob
}

func BenchmarkBook_Apply(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		side := bookv1.SideBid
		if i%2 == 1 {
			side = bookv1.SideAsk
		}
		_ = ob.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     side,
			Price:    bookv1.Price(100_000 + (i%1_000)*10),
			Quantity: bookv1.Quantity(50 + i%200),
		})
	}
}

func BenchmarkBook_ApplyRemoveBest(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := bookv1.Price(100_000 + (i%1_000)*10)
		_ = ob.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     bookv1.SideBid,
			Price:    price,
			Quantity: 10,
		})
		_ = ob.Apply(bookv1.Update{
			Type:  bookv1.UpdateRemove,
			Side:  bookv1.SideBid,
			Price: price,
		})
	}
}

func BenchmarkBook_Spread(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ob.Spread()
	}
}

func BenchmarkBook_BestBid(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ob.BestBid()
	}
}

func BenchmarkBook_QuantityAt(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		side := bookv1.SideBid
		if i%2 == 1 {
			side = bookv1.SideAsk
		}
		_, _, _ = ob.QuantityAt(bookv1.Price(100_000+(i%500)*10), side)
	}
}

func BenchmarkBook_TopLevels(b *testing.B) {
	ob := warmBook(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ob.TopLevels(bookv1.SideAsk, 10)
	}
}
