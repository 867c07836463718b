package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// FileConfig configures a capture-file source.
type FileConfig struct {
	Path       string // Capture file to read
	ChunkSize  int    // Bytes per chunk
	BufferSize int    // Chunk channel buffer size
}

// DefaultFileConfig returns sensible defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		ChunkSize:  64 * 1024,
		BufferSize: 64,
	}
}

// FileSource replays a capture file as a stream of chunks. The chunk
// boundaries are arbitrary, matching how the bytes would arrive off
// the wire.
type FileSource struct {
	cfg    FileConfig
	logger *slog.Logger

	chunks chan Chunk
	errors chan error
	done   chan struct{}

	mu     sync.Mutex
	file   *os.File
	closed bool
}

// NewFileSource creates a file source for cfg.Path.
func NewFileSource(cfg FileConfig, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = DefaultFileConfig().ChunkSize
	}
	return &FileSource{
		cfg:    cfg,
		logger: logger,
		chunks: make(chan Chunk, cfg.BufferSize),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start opens the file and begins reading.
func (s *FileSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	f, err := os.Open(s.cfg.Path)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("open capture: %w", err)
	}
	s.file = f
	s.mu.Unlock()

	go s.readLoop(ctx)

	s.logger.Debug("file source started", "path", s.cfg.Path, "chunk_size", s.cfg.ChunkSize)
	return nil
}

// Close stops the source.
func (s *FileSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// Chunks returns the chunk channel. It is closed at end of file.
func (s *FileSource) Chunks() <-chan Chunk { return s.chunks }

// Errors returns the errors channel.
func (s *FileSource) Errors() <-chan error { return s.errors }

func (s *FileSource) readLoop(ctx context.Context) {
	defer close(s.chunks)

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			return
		default:
		}

		// Fresh buffer per chunk: the consumer owns the data.
		buf := make([]byte, s.cfg.ChunkSize)
		n, err := s.file.Read(buf)
		if n > 0 {
			chunk := Chunk{Data: buf[:n], ReceivedAt: time.Now()}
			select {
			case s.chunks <- chunk:
			case <-s.done:
				return
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				select {
				case s.errors <- err:
				default:
				}
			}
			return
		}
	}
}
