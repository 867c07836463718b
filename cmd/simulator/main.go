package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rickgao/itto-feed/internal/replay"
	"github.com/rickgao/itto-feed/internal/version"
)

func main() {
	inputPath := flag.String("input", "", "capture file to send")
	target := flag.String("target", "127.0.0.1:9000", "UDP address to send to")
	size := flag.Int("size", 1400, "datagram size in bytes")
	interval := flag.Duration("interval", 100*time.Microsecond, "pause between datagrams")
	burst := flag.Bool("burst", false, "send as fast as possible, ignoring -interval")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *inputPath == "" {
		logger.Error("missing -input")
		flag.Usage()
		os.Exit(2)
	}

	logger.Info("starting simulator",
		"version", version.Version,
		"input", *inputPath,
		"target", *target,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	pacer := replay.NewPacer(replay.Config{
		Target:       *target,
		DatagramSize: *size,
		Interval:     *interval,
		Burst:        *burst,
	}, logger)

	stats, err := pacer.SendFile(ctx, *inputPath)
	if err != nil && err != context.Canceled {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}

	logger.Info("simulator done",
		"datagrams", stats.Datagrams,
		"bytes", stats.Bytes,
		"elapsed", stats.Elapsed,
	)
}
