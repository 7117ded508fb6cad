package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/depthline/bookmirror/internal/app/engine"
	"github.com/depthline/bookmirror/internal/usecase/book"
	depthcache "github.com/depthline/bookmirror/internal/usecase/depth-cache"
	depthpublisher "github.com/depthline/bookmirror/internal/usecase/depth-publisher"
	updatereader "github.com/depthline/bookmirror/internal/usecase/update-reader"
	"github.com/depthline/bookmirror/pkg/config"
	"github.com/depthline/bookmirror/pkg/logger"
	"github.com/depthline/bookmirror/pkg/redis"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg = &config.Config{}
	err = config.Load(cfg)
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}

	log = logger
}

func main() {
	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initialize Redis client
	rclient := redis.NewClient(log, &cfg.Redis)

	if err := rclient.Connect(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "connect_redis",
		})
		return
	}

	// Initialize components
	ob, err := book.New(cfg.TickDomain)
	if err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "create_book",
		})
		return
	}

	uReader := updatereader.NewReader(cfg.UpdateKafka, *log)
	publisher := depthpublisher.NewPublisher(cfg.DepthKafka, *log)
	cache := depthcache.NewCache(rclient, cfg.Pair, log)
	engine := app.NewEngine(
		ob,
		uReader,
		publisher,
		cache,
		log,
		cfg,
	)

	// Start the engine
	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "start_engine",
		})
		return
	}

	log.Info("Depth mirror started successfully", logger.Field{
		Key:   "pair",
		Value: cfg.Pair,
	})

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("Received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	// Cancel the main context to signal shutdown
	cancel()

	// Create a timeout context for graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Stop the engine gracefully
	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "stop_engine",
		})
	}

	if err := publisher.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_depth_publisher",
		})
	}

	if err := rclient.Close(); err != nil {
		log.Error(err, logger.Field{
			Key:   "action",
			Value: "close_redis_client",
		})
	}

	log.Info("Depth mirror shutdown complete")
}
