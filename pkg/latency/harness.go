// Package latency measures end-to-end latency of book operations under a
// synthetic depth workload. It drives the book the same way the engine does,
// through the public interface, so the numbers reflect what a consumer sees.
package latency

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
	"github.com/depthline/bookmirror/internal/usecase/book"
)

const (
	// warmupLevels is the number of levels seeded on each side before
	// measurement starts.
	warmupLevels = 100

	basePrice = 100_000
	priceStep = 10

	// batchSize is the number of operations timed per sample. Individual
	// operations are too fast for the clock, so each sample is the batch
	// duration divided by the batch size.
	batchSize = 1_000
)

// Result holds the latency distribution of one measured operation.
type Result struct {
	Name    string
	Batches int
	Avg     time.Duration
	P50     time.Duration
	P95     time.Duration
	P99     time.Duration
}

// Harness runs a fixed workload against a fresh book.
type Harness struct {
	book    *book.Book
	batches int
	rng     *rand.Rand
}

// NewHarness builds a harness over a fresh book with the given tick domain.
// batches is the number of timed samples collected per operation.
func NewHarness(tickDomain, batches int) (*Harness, error) {
	if batches <= 0 {
		return nil, fmt.Errorf("batches must be positive, got %d", batches)
	}

	ob, err := book.New(tickDomain)
	if err != nil {
		return nil, err
	}

	return &Harness{
		book:    ob,
		batches: batches,
		rng:     rand.New(rand.NewSource(42)),
	}, nil
}

// warm seeds both sides so queries never run against an empty book.
func (h *Harness) warm() error {
	for i := int64(0); i < warmupLevels; i++ {
		if err := h.book.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     bookv1.SideBid,
			Price:    bookv1.Price(basePrice - i*priceStep),
			Quantity: bookv1.Quantity(100 + i),
		}); err != nil {
			return err
		}
		if err := h.book.Apply(bookv1.Update{
			Type:     bookv1.UpdateSet,
			Side:     bookv1.SideAsk,
			Price:    bookv1.Price(basePrice + 100 + i*priceStep),
			Quantity: bookv1.Quantity(100 + i),
		}); err != nil {
			return err
		}
	}
	return nil
}

// workloadUpdate returns the i-th update of the synthetic stream. Prices
// cycle through a 1000-tick band above the base price and sides alternate.
func workloadUpdate(i int64) bookv1.Update {
	side := bookv1.SideBid
	if i%2 == 1 {
		side = bookv1.SideAsk
	}
	return bookv1.Update{
		Type:     bookv1.UpdateSet,
		Side:     side,
		Price:    bookv1.Price(basePrice + (i%1000)*priceStep),
		Quantity: bookv1.Quantity(50 + i%200),
	}
}

// Run warms the book and measures every operation. Results come back in a
// fixed order so reports are comparable across runs.
func (h *Harness) Run() ([]Result, error) {
	if err := h.warm(); err != nil {
		return nil, err
	}

	results := []Result{
		h.measureApply(),
		h.measureBestBid(),
		h.measureSpread(),
		h.measureQuantityAt(),
		h.measureTopLevels(),
	}
	return results, nil
}

func (h *Harness) measureApply() Result {
	samples := make([]time.Duration, 0, h.batches)
	var n int64
	for b := 0; b < h.batches; b++ {
		start := time.Now()
		for i := 0; i < batchSize; i++ {
			_ = h.book.Apply(workloadUpdate(n))
			n++
		}
		samples = append(samples, time.Since(start)/batchSize)
	}
	return summarize("apply_update", samples)
}

func (h *Harness) measureBestBid() Result {
	samples := make([]time.Duration, 0, h.batches)
	for b := 0; b < h.batches; b++ {
		start := time.Now()
		for i := 0; i < batchSize; i++ {
			h.book.BestBid()
		}
		samples = append(samples, time.Since(start)/batchSize)
	}
	return summarize("best_bid", samples)
}

func (h *Harness) measureSpread() Result {
	samples := make([]time.Duration, 0, h.batches)
	for b := 0; b < h.batches; b++ {
		start := time.Now()
		for i := 0; i < batchSize; i++ {
			h.book.Spread()
		}
		samples = append(samples, time.Since(start)/batchSize)
	}
	return summarize("spread", samples)
}

func (h *Harness) measureQuantityAt() Result {
	// Pre-generate prices so the RNG stays out of the timed section.
	prices := make([]bookv1.Price, batchSize)
	for i := range prices {
		prices[i] = bookv1.Price(basePrice + h.rng.Int63n(1000)*priceStep)
	}

	samples := make([]time.Duration, 0, h.batches)
	for b := 0; b < h.batches; b++ {
		start := time.Now()
		for i := 0; i < batchSize; i++ {
			side := bookv1.SideBid
			if i%2 == 1 {
				side = bookv1.SideAsk
			}
			_, _, _ = h.book.QuantityAt(prices[i], side)
		}
		samples = append(samples, time.Since(start)/batchSize)
	}
	return summarize("quantity_at", samples)
}

func (h *Harness) measureTopLevels() Result {
	samples := make([]time.Duration, 0, h.batches)
	for b := 0; b < h.batches; b++ {
		start := time.Now()
		for i := 0; i < batchSize; i++ {
			side := bookv1.SideBid
			if i%2 == 1 {
				side = bookv1.SideAsk
			}
			h.book.TopLevels(side, 10)
		}
		samples = append(samples, time.Since(start)/batchSize)
	}
	return summarize("top_levels", samples)
}

// summarize sorts the samples and extracts the distribution.
func summarize(name string, samples []time.Duration) Result {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, s := range sorted {
		total += s
	}

	return Result{
		Name:    name,
		Batches: len(sorted),
		Avg:     total / time.Duration(len(sorted)),
		P50:     percentile(sorted, 0.50),
		P95:     percentile(sorted, 0.95),
		P99:     percentile(sorted, 0.99),
	}
}

// percentile expects sorted input.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}

// WriteReport prints results as an aligned table.
func WriteReport(w io.Writer, results []Result) {
	fmt.Fprintf(w, "%-14s %8s %10s %10s %10s %10s\n",
		"operation", "batches", "avg", "p50", "p95", "p99")
	for _, r := range results {
		fmt.Fprintf(w, "%-14s %8d %10s %10s %10s %10s\n",
			r.Name, r.Batches, r.Avg, r.P50, r.P95, r.P99)
	}
}
