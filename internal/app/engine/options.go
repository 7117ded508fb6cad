package engine

import "time"

// Options represents configuration options for the Engine.
type Options struct {
	// PublishInterval is how often the depth manager checks whether the
	// published view is stale.
	PublishInterval time.Duration
	// PublishOffsetDelta is the number of applied updates that makes the
	// published view stale.
	PublishOffsetDelta int64
	// DepthLevels is the number of levels per side included in published depth.
	DepthLevels int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		PublishInterval:    time.Second,
		PublishOffsetDelta: 100,
		DepthLevels:        10,
	}
}
