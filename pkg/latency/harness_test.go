package latency

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
	"github.com/depthline/bookmirror/internal/usecase/book"
)

func TestNewHarness(t *testing.T) {
	// Test 1: valid parameters
	h, err := NewHarness(book.DefaultTickDomain, 10)
	require.NoError(t, err)
	assert.NotNil(t, h)

	// Test 2: batch count must be positive
	_, err = NewHarness(book.DefaultTickDomain, 0)
	assert.Error(t, err)

	// Test 3: tick domain validation comes from the book
	_, err = NewHarness(-1, 10)
	assert.Error(t, err)
}

func TestWorkloadUpdate(t *testing.T) {
	// Test 1: sides alternate
	assert.Equal(t, bookv1.SideBid, workloadUpdate(0).Side)
	assert.Equal(t, bookv1.SideAsk, workloadUpdate(1).Side)

	// Test 2: prices stay inside the 1000-tick band
	for _, i := range []int64{0, 999, 1000, 123_456} {
		u := workloadUpdate(i)
		assert.GreaterOrEqual(t, u.Price, bookv1.Price(basePrice))
		assert.Less(t, u.Price, bookv1.Price(basePrice+1000*priceStep))
	}

	// Test 3: prices wrap after a full cycle
	assert.Equal(t, workloadUpdate(3).Price, workloadUpdate(1003).Price)
}

func TestHarness_Run(t *testing.T) {
	h, err := NewHarness(book.DefaultTickDomain, 3)
	require.NoError(t, err)

	results, err := h.Run()
	require.NoError(t, err)
	require.Len(t, results, 5)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
		assert.Equal(t, 3, r.Batches, r.Name)
		assert.Greater(t, r.Avg, time.Duration(0), r.Name)
		assert.LessOrEqual(t, r.P50, r.P99, r.Name)
	}
	assert.Equal(t, []string{"apply_update", "best_bid", "spread", "quantity_at", "top_levels"}, names)
}

func TestPercentile(t *testing.T) {
	sorted := []time.Duration{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	assert.Equal(t, time.Duration(0), percentile(nil, 0.5))
	assert.Equal(t, time.Duration(50), percentile(sorted, 0.5))
	assert.Equal(t, time.Duration(90), percentile(sorted, 0.95))
	assert.Equal(t, time.Duration(100), percentile(sorted, 1.0))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	WriteReport(&buf, []Result{{
		Name:    "apply_update",
		Batches: 3,
		Avg:     25 * time.Nanosecond,
		P50:     20 * time.Nanosecond,
		P95:     40 * time.Nanosecond,
		P99:     45 * time.Nanosecond,
	}})

	out := buf.String()
	assert.Contains(t, out, "operation")
	assert.Contains(t, out, "apply_update")
	assert.Contains(t, out, "25ns")
}
