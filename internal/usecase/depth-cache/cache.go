package depthcache

import (
	"context"
	"encoding/json"

	depthcachev1 "github.com/depthline/bookmirror/internal/domain/depth-cache/v1"
	"github.com/depthline/bookmirror/pkg/errors"
	"github.com/depthline/bookmirror/pkg/logger"
	"github.com/depthline/bookmirror/pkg/redis"
)

const keyPrefix = "depth:"

// Cache keeps the latest depth view of one instrument in Redis.
type Cache struct {
	pair        string
	logger      *logger.Logger
	redisclient redis.Client
}

// NewCache creates a new Cache instance with the given Redis client and pair.
func NewCache(redisclient redis.Client, pair string, logger *logger.Logger) *Cache {
	return &Cache{
		pair:        pair,
		redisclient: redisclient,
		logger:      logger,
	}
}

func (c *Cache) key() string {
	return keyPrefix + c.pair
}

// Store serializes the depth snapshot and stores it in Redis.
func (c *Cache) Store(ctx context.Context, snapshot *depthcachev1.DepthSnapshot) error {
	buf, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: c.pair,
		}, logger.Field{
			Key:   "action",
			Value: "marshal depth snapshot",
		})
		return errors.NewTracer("depth_marshal_error").Wrap(err)
	}

	if err := c.redisclient.Set(ctx, c.key(), buf, 0); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: c.pair,
		}, logger.Field{
			Key:   "action",
			Value: "store depth snapshot",
		})
		return errors.NewTracer("depth_store_error").Wrap(err)
	}

	c.logger.DebugContext(ctx, "Depth snapshot cached", logger.Field{
		Key:   "pair",
		Value: c.pair,
	}, logger.Field{
		Key:   "updateOffset",
		Value: snapshot.UpdateOffset,
	})

	return nil
}

// Load loads the latest depth snapshot from Redis. It returns nil without an
// error when no snapshot has been cached yet.
func (c *Cache) Load(ctx context.Context) (*depthcachev1.DepthSnapshot, error) {
	data, err := c.redisclient.Get(ctx, c.key())
	if err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: c.pair,
		}, logger.Field{
			Key:   "action",
			Value: "load depth snapshot",
		})
		return nil, errors.NewTracer("depth_load_error").Wrap(err)
	}

	if data == "" {
		return nil, nil
	}

	var snapshot depthcachev1.DepthSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		c.logger.ErrorContext(ctx, err, logger.Field{
			Key:   "pair",
			Value: c.pair,
		}, logger.Field{
			Key:   "action",
			Value: "unmarshal depth snapshot",
		})
		return nil, errors.NewTracer("depth_unmarshal_error").Wrap(err)
	}

	return &snapshot, nil
}
