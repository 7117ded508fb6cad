package engine

import (
	"context"
	"sync"
	"time"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
	depthcachev1 "github.com/depthline/bookmirror/internal/domain/depth-cache/v1"
	depthpublisherv1 "github.com/depthline/bookmirror/internal/domain/depth-publisher/v1"
	updatereaderv1 "github.com/depthline/bookmirror/internal/domain/update-reader/v1"
	"github.com/depthline/bookmirror/pkg/config"
	"github.com/depthline/bookmirror/pkg/logger"
)

// Engine is the main service loop: it drains the depth update stream into the
// book and keeps the published depth view fresh.
type Engine struct {
	// Core components
	book           bookv1.Book
	updateReader   updatereaderv1.UpdateReader
	depthPublisher depthpublisherv1.DepthPublisher
	depthCache     depthcachev1.Cache
	logger         *logger.Logger
	config         *config.Config

	// mu guards the book and the offsets. The book is a single-writer
	// structure with no internal locking; this mutex is the external
	// synchronization imposed at the engine boundary.
	mu                  sync.RWMutex
	updateOffset        int64
	lastPublishedOffset int64
	totalUpdates        int64
	rejectedUpdates     int64

	// Shutdown coordination
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Configuration
	publishInterval    time.Duration
	publishOffsetDelta int64
	depthLevels        int
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	book bookv1.Book,
	updateReader updatereaderv1.UpdateReader,
	depthPublisher depthpublisherv1.DepthPublisher,
	depthCache depthcachev1.Cache,
	logger *logger.Logger,
	config *config.Config,
) *Engine {
	return NewEngineWithOptions(book, updateReader, depthPublisher, depthCache, logger, config, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	book bookv1.Book,
	updateReader updatereaderv1.UpdateReader,
	depthPublisher depthpublisherv1.DepthPublisher,
	depthCache depthcachev1.Cache,
	logger *logger.Logger,
	config *config.Config,
	options *Options,
) *Engine {
	return &Engine{
		book:           book,
		updateReader:   updateReader,
		depthPublisher: depthPublisher,
		depthCache:     depthCache,
		logger:         logger,
		config:         config,

		publishInterval:     options.PublishInterval,
		publishOffsetDelta:  options.PublishOffsetDelta,
		depthLevels:         options.DepthLevels,
		updateOffset:        -1,
		lastPublishedOffset: -1,
	}
}

// Start initializes the engine and starts the processing routines.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(2)
	go e.runUpdateProcessor()
	go e.runDepthManager()

	e.logger.Info("Depth mirror engine started", logger.Field{
		Key:   "pair",
		Value: e.config.Pair,
	}, logger.Field{
		Key:   "tickDomain",
		Value: e.config.TickDomain,
	})

	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Depth mirror engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runUpdateProcessor reads and applies depth updates in a single goroutine.
func (e *Engine) runUpdateProcessor() {
	defer e.wg.Done()

	e.logger.Info("Starting update processor", logger.Field{
		Key:   "pair",
		Value: e.config.Pair,
	})

	currentOffset := e.getUpdateOffset()
	if currentOffset > 0 {
		currentOffset++
	}

	if err := e.updateReader.SetOffset(currentOffset); err != nil {
		e.logger.Error(err, logger.Field{
			Key:   "action",
			Value: "set_reader_offset",
		})
		return
	}

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Update processor shutting down")
			e.updateReader.Close()
			return
		default:
			msg, payload, err := e.updateReader.ReadMessage(e.ctx)
			if err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "read_update_message",
				})
				// Simple backoff
				time.Sleep(100 * time.Millisecond)
				continue
			}

			if err := e.updateReader.CommitMessages(e.ctx, msg); err != nil {
				e.logger.ErrorContext(e.ctx, err, logger.Field{
					Key:   "action",
					Value: "commit_update_message",
				})
			}

			if err := e.processUpdate(payload); err != nil {
				e.logger.WarnContext(e.ctx, "Rejected depth update",
					logger.Field{Key: "error", Value: err.Error()},
					logger.Field{Key: "offset", Value: msg.Offset},
					logger.Field{Key: "side", Value: payload.Side},
					logger.Field{Key: "price", Value: payload.Price},
				)
			}

			// Malformed updates are dropped, not replayed: the offset moves on
			// either way.
			e.setUpdateOffset(msg.Offset)
		}
	}
}

// processUpdate validates a payload and applies it to the book.
func (e *Engine) processUpdate(payload *updatereaderv1.DepthUpdatePayload) error {
	update, err := payload.ToUpdate()
	if err != nil {
		e.countRejected()
		return err
	}

	e.mu.Lock()
	err = e.book.Apply(update)
	if err == nil {
		e.totalUpdates++
	}
	e.mu.Unlock()

	if err != nil {
		e.countRejected()
		return err
	}
	return nil
}

// runDepthManager keeps the published depth view fresh.
func (e *Engine) runDepthManager() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.publishInterval)
	defer ticker.Stop()

	e.logger.Info("Starting depth manager")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Depth manager shutting down")
			return
		case <-ticker.C:
			if e.shouldPublish() {
				e.publishDepth()
			}
		}
	}
}

// shouldPublish checks whether enough updates have been applied since the
// last published view.
func (e *Engine) shouldPublish() bool {
	e.mu.RLock()
	currentOffset := e.updateOffset
	lastPublishedOffset := e.lastPublishedOffset
	e.mu.RUnlock()

	if currentOffset < 0 {
		return false
	}

	return currentOffset-lastPublishedOffset >= e.publishOffsetDelta
}

// publishDepth captures the current depth view, publishes it and refreshes
// the cache.
func (e *Engine) publishDepth() {
	snapshot := e.captureDepth()

	event := depthpublisherv1.NewDepthEvent(e.config.Pair, snapshot.UpdateOffset)
	event.BestBid = snapshot.BestBid
	event.BestAsk = snapshot.BestAsk
	event.Spread = snapshot.Spread
	event.TotalBid = snapshot.TotalBid
	event.TotalAsk = snapshot.TotalAsk
	event.Bids = snapshot.Bids
	event.Asks = snapshot.Asks

	if err := e.depthPublisher.PublishDepthEvent(e.ctx, event); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "publish_depth_event",
		})
		return
	}

	if err := e.depthCache.Store(e.ctx, snapshot); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "store_depth_snapshot",
		})
	}

	e.setLastPublishedOffset(snapshot.UpdateOffset)

	e.logger.Debug("Depth view published",
		logger.Field{Key: "pair", Value: e.config.Pair},
		logger.Field{Key: "updateOffset", Value: snapshot.UpdateOffset},
		logger.Field{Key: "eventID", Value: event.EventID},
	)
}

// captureDepth reads a consistent view of the book under the read lock.
func (e *Engine) captureDepth() *depthcachev1.DepthSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := &depthcachev1.DepthSnapshot{
		Pair:         e.config.Pair,
		UpdateOffset: e.updateOffset,
		CapturedAt:   time.Now().UnixNano(),
		TotalBid:     e.book.TotalQuantity(bookv1.SideBid),
		TotalAsk:     e.book.TotalQuantity(bookv1.SideAsk),
		Bids:         e.book.TopLevels(bookv1.SideBid, e.depthLevels),
		Asks:         e.book.TopLevels(bookv1.SideAsk, e.depthLevels),
	}

	if bid, ok := e.book.BestBid(); ok {
		snapshot.BestBid = &bid
	}
	if ask, ok := e.book.BestAsk(); ok {
		snapshot.BestAsk = &ask
	}
	if spread, ok := e.book.Spread(); ok {
		snapshot.Spread = &spread
	}

	return snapshot
}

// TotalUpdates returns the number of updates applied so far.
func (e *Engine) TotalUpdates() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalUpdates
}

// RejectedUpdates returns the number of updates dropped by validation.
func (e *Engine) RejectedUpdates() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rejectedUpdates
}

func (e *Engine) countRejected() {
	e.mu.Lock()
	e.rejectedUpdates++
	e.mu.Unlock()
}

// Thread-safe getters and setters
func (e *Engine) getUpdateOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.updateOffset
}

func (e *Engine) setUpdateOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateOffset = offset
}

func (e *Engine) setLastPublishedOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastPublishedOffset = offset
}
