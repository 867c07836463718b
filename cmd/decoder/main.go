package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/rickgao/itto-feed/internal/framer"
	"github.com/rickgao/itto-feed/internal/itto"
	"github.com/rickgao/itto-feed/internal/sink"
	"github.com/rickgao/itto-feed/internal/source"
	"github.com/rickgao/itto-feed/internal/version"
)

func main() {
	inputPath := flag.String("input", "", "capture file to decode")
	csvPath := flag.String("csv", "", "write normalized rows to this CSV file")
	textPath := flag.String("text", "", "write human-readable lines to this file, - for stdout")
	tag := flag.String("tag", "", "decode only this message tag")
	date := flag.String("date", "", "trading date YYYY-MM-DD, default inferred from the capture name")
	chunkSize := flag.Int("chunk", 64*1024, "read chunk size in bytes")
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
	if *tag != "" && (len(*tag) != 1 || !itto.Recognized((*tag)[0])) {
		logger.Error("unrecognized -tag", "tag", *tag)
		os.Exit(2)
	}

	logger.Info("decoding capture",
		"version", version.Version,
		"input", *inputPath,
	)

	feedDate := *date
	if feedDate == "" {
		if d, ok := sink.InferFeedDate(*inputPath); ok {
			feedDate = d
			logger.Info("inferred trading date", "date", feedDate)
		}
	}

	var csvSink *sink.CSVSink
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			logger.Error("failed to create csv output", "error", err)
			os.Exit(1)
		}
		defer f.Close()

		csvSink, err = sink.NewCSVSink(f, feedDate)
		if err != nil {
			logger.Error("failed to initialize csv output", "error", err)
			os.Exit(1)
		}
		defer csvSink.Flush()
	}

	var textSink *sink.TextSink
	if *textPath != "" {
		out := os.Stdout
		if *textPath != "-" {
			f, err := os.Create(*textPath)
			if err != nil {
				logger.Error("failed to create text output", "error", err)
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		textSink = sink.NewTextSink(out)
	}
	if csvSink == nil && textSink == nil {
		textSink = sink.NewTextSink(os.Stdout)
	}

	handler := itto.MessageFunc(func(m itto.Message) {
		if textSink != nil {
			itto.Dispatch(m, textSink)
		}
		if csvSink != nil {
			if err := csvSink.Write(sink.Normalize(m)); err != nil {
				logger.Error("csv write failed", "error", err)
				os.Exit(1)
			}
		}
	})

	var fr *framer.Framer
	if *tag != "" {
		fr = framer.NewSingleTag((*tag)[0], handler, logger)
	} else {
		fr = framer.New(handler, logger)
	}

	src := source.NewFileSource(source.FileConfig{
		Path:      *inputPath,
		ChunkSize: *chunkSize,
	}, logger)

	ctx := context.Background()
	if err := src.Start(ctx); err != nil {
		logger.Error("failed to open capture", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	for chunk := range src.Chunks() {
		fr.Feed(chunk.Data)
	}

	select {
	case err := <-src.Errors():
		logger.Error("read error", "error", err)
		os.Exit(1)
	default:
	}

	if textSink != nil && textSink.Err() != nil {
		logger.Error("text write failed", "error", textSink.Err())
		os.Exit(1)
	}

	s := fr.Stats()
	logger.Info("decode finished",
		"decoded", s.Decoded,
		"rejected", s.Rejected,
		"discarded_bytes", s.DiscardedBytes,
		"trailing_bytes", s.LeftoverLen,
	)
}
