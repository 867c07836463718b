package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/itto-feed/internal/config"
	"github.com/rickgao/itto-feed/internal/database"
	"github.com/rickgao/itto-feed/internal/directory"
	"github.com/rickgao/itto-feed/internal/framer"
	"github.com/rickgao/itto-feed/internal/itto"
	"github.com/rickgao/itto-feed/internal/sink"
	"github.com/rickgao/itto-feed/internal/source"
	"github.com/rickgao/itto-feed/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/consumer.local.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting consumer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"source", cfg.Source.Kind,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Build the source
	src, err := buildSource(cfg, logger)
	if err != nil {
		logger.Error("failed to build source", "error", err)
		os.Exit(1)
	}

	// Flat-file sinks
	var csvSink *sink.CSVSink
	if cfg.Output.CSVPath != "" {
		f, err := os.Create(cfg.Output.CSVPath)
		if err != nil {
			logger.Error("failed to create csv output", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		csvSink, err = sink.NewCSVSink(f, feedDate(cfg))
		if err != nil {
			logger.Error("failed to initialize csv output", "error", err)
			os.Exit(1)
		}
		defer csvSink.Flush()
	}

	var textSink *sink.TextSink
	if cfg.Output.TextPath != "" {
		f, err := os.Create(cfg.Output.TextPath)
		if err != nil {
			logger.Error("failed to create text output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		textSink = sink.NewTextSink(f)
	}

	// Database writer
	var (
		records *sink.Buffer[sink.Record]
		writer  *sink.Writer
	)
	if cfg.Writer.Enabled {
		logger.Info("connecting to database",
			"host", cfg.Database.Postgres.Host,
			"port", cfg.Database.Postgres.Port,
			"database", cfg.Database.Postgres.Name,
		)
		pool, err := database.Connect(ctx, cfg.Database.Postgres)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("database connected")

		records = sink.NewBuffer[sink.Record](cfg.Decoder.BufferSize)
		writer = sink.NewWriter(sink.WriterConfig{
			BatchSize:     cfg.Writer.BatchSize,
			FlushInterval: cfg.Writer.FlushInterval,
		}, records, pool, logger)

		if err := writer.Start(ctx); err != nil {
			logger.Error("failed to start writer", "error", err)
			os.Exit(1)
		}
	}

	// Listing registry, fed from the decode path
	registry := directory.NewRegistry()

	handler := itto.MessageFunc(func(m itto.Message) {
		itto.Dispatch(m, registry)
		if textSink != nil {
			itto.Dispatch(m, textSink)
		}
		if csvSink == nil && records == nil {
			return
		}
		rec := sink.Normalize(m)
		if csvSink != nil {
			if err := csvSink.Write(rec); err != nil {
				logger.Error("csv write failed", "error", err)
			}
		}
		if records != nil {
			records.Put(rec)
		}
	})

	fr := buildFramer(cfg, handler, logger)

	if err := src.Start(ctx); err != nil {
		logger.Error("failed to start source", "error", err)
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Decode loop
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case chunk, ok := <-src.Chunks():
				if !ok {
					return nil
				}
				fr.Feed(chunk.Data)
			}
		}
	})

	// Source error watcher
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return gctx.Err()
		case err := <-src.Errors():
			return err
		}
	})

	// Periodic stats
	g.Go(func() error {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				s := fr.Stats()
				logger.Info("decode stats",
					"decoded", s.Decoded,
					"rejected", s.Rejected,
					"discarded_bytes", s.DiscardedBytes,
					"listings", registry.Count(),
				)
			}
		}
	})

	logger.Info("consumer running", "instance_id", cfg.Instance.ID)

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("consumer error", "error", err)
	}

	logger.Info("shutting down...")
	src.Close()

	if writer != nil {
		records.Close()
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		writer.Stop(stopCtx)
	}

	s := fr.Stats()
	logger.Info("consumer stopped",
		"decoded", s.Decoded,
		"rejected", s.Rejected,
		"discarded_bytes", s.DiscardedBytes,
		"listings", registry.Count(),
	)
}

// buildSource constructs the configured feed source.
func buildSource(cfg *config.ConsumerConfig, logger *slog.Logger) (source.Source, error) {
	switch cfg.Source.Kind {
	case "file":
		return source.NewFileSource(source.FileConfig{
			Path:       cfg.Source.Path,
			ChunkSize:  cfg.Source.ChunkSize,
			BufferSize: cfg.Source.BufferSize,
		}, logger), nil
	case "udp":
		return source.NewUDPSource(source.UDPConfig{
			Listen:     cfg.Source.Listen,
			ReadBuffer: cfg.Source.ReadBuffer,
			BufferSize: cfg.Source.BufferSize,
		}, logger), nil
	default:
		return source.NewWSSource(source.WSConfig{
			URL:          cfg.Source.URL,
			PingTimeout:  cfg.Source.PingTimeout,
			WriteTimeout: cfg.Source.WriteTimeout,
			BufferSize:   cfg.Source.BufferSize,
		}, logger), nil
	}
}

// buildFramer constructs a framer for all tags, or a single tag when
// decoder.tag is set.
func buildFramer(cfg *config.ConsumerConfig, handler itto.Handler, logger *slog.Logger) *framer.Framer {
	if cfg.Decoder.Tag != "" {
		return framer.NewSingleTag(cfg.Decoder.Tag[0], handler, logger)
	}
	return framer.New(handler, logger)
}

// feedDate resolves the trading date column for the CSV output.
func feedDate(cfg *config.ConsumerConfig) string {
	if cfg.Output.FeedDate != "" {
		return cfg.Output.FeedDate
	}
	if cfg.Source.Kind == "file" {
		if d, ok := sink.InferFeedDate(cfg.Source.Path); ok {
			return d
		}
	}
	return ""
}
