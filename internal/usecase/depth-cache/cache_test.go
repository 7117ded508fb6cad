package depthcache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
	depthcachev1 "github.com/depthline/bookmirror/internal/domain/depth-cache/v1"
	"github.com/depthline/bookmirror/pkg/errors"
	"github.com/depthline/bookmirror/pkg/logger"
	redismock "github.com/depthline/bookmirror/pkg/redis/mock"
)

func setupCache(t *testing.T) (*Cache, *redismock.MockClient) {
	ctrl := gomock.NewController(t)
	mockRedis := redismock.NewMockClient(ctrl)

	log, err := logger.NewLogger()
	require.NoError(t, err)

	return NewCache(mockRedis, "BTC-USD", log), mockRedis
}

func testSnapshot() *depthcachev1.DepthSnapshot {
	bid := bookv1.Price(100)
	ask := bookv1.Price(105)
	spread := bookv1.Price(5)

	return &depthcachev1.DepthSnapshot{
		Pair:         "BTC-USD",
		UpdateOffset: 42,
		BestBid:      &bid,
		BestAsk:      &ask,
		Spread:       &spread,
		TotalBid:     10,
		TotalAsk:     5,
		Bids:         []bookv1.Level{{Price: 100, Quantity: 10}},
		Asks:         []bookv1.Level{{Price: 105, Quantity: 5}},
	}
}

func TestCache_Store(t *testing.T) {
	cache, mockRedis := setupCache(t)

	mockRedis.EXPECT().
		Set(gomock.Any(), "depth:BTC-USD", gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	err := cache.Store(context.Background(), testSnapshot())
	assert.NoError(t, err)
}

func TestCache_Store_RedisError(t *testing.T) {
	cache, mockRedis := setupCache(t)

	mockRedis.EXPECT().
		Set(gomock.Any(), "depth:BTC-USD", gomock.Any(), gomock.Any()).
		Return(errors.NewErrorDetails("boom", string(errors.RedisSetError), "depth:BTC-USD")).
		Times(1)

	err := cache.Store(context.Background(), testSnapshot())
	assert.Error(t, err)
}

func TestCache_Load(t *testing.T) {
	cache, mockRedis := setupCache(t)

	want := testSnapshot()
	buf, err := json.Marshal(want)
	require.NoError(t, err)

	mockRedis.EXPECT().
		Get(gomock.Any(), "depth:BTC-USD").
		Return(string(buf), nil).
		Times(1)

	got, err := cache.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, got)
}

func TestCache_Load_Empty(t *testing.T) {
	cache, mockRedis := setupCache(t)

	mockRedis.EXPECT().
		Get(gomock.Any(), "depth:BTC-USD").
		Return("", nil).
		Times(1)

	got, err := cache.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_Load_BadPayload(t *testing.T) {
	cache, mockRedis := setupCache(t)

	mockRedis.EXPECT().
		Get(gomock.Any(), "depth:BTC-USD").
		Return("{not json", nil).
		Times(1)

	got, err := cache.Load(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}
