package source

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

// UDPConfig configures a UDP datagram source.
type UDPConfig struct {
	Listen     string // Listen address, e.g. ":9000"
	ReadBuffer int    // Kernel receive buffer in bytes (0 = default)
	BufferSize int    // Chunk channel buffer size
}

// DefaultUDPConfig returns sensible defaults.
func DefaultUDPConfig() UDPConfig {
	return UDPConfig{
		ReadBuffer: 4 * 1024 * 1024,
		BufferSize: 4096,
	}
}

// UDPSource reads datagrams from a UDP socket. Each datagram becomes
// one chunk; a datagram may end mid-message and the next datagram may
// begin mid-message.
type UDPSource struct {
	cfg    UDPConfig
	logger *slog.Logger

	chunks chan Chunk
	errors chan error
	done   chan struct{}

	mu     sync.Mutex
	conn   *net.UDPConn
	closed bool
}

// NewUDPSource creates a UDP source listening on cfg.Listen.
func NewUDPSource(cfg UDPConfig, logger *slog.Logger) *UDPSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &UDPSource{
		cfg:    cfg,
		logger: logger,
		chunks: make(chan Chunk, cfg.BufferSize),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start binds the socket and begins reading datagrams.
func (s *UDPSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	s.mu.Unlock()

	addr, err := net.ResolveUDPAddr("udp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return fmt.Errorf("listen udp: %w", err)
	}
	if s.cfg.ReadBuffer > 0 {
		if err := conn.SetReadBuffer(s.cfg.ReadBuffer); err != nil {
			s.logger.Warn("set read buffer failed", "error", err)
		}
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	go s.readLoop()

	s.logger.Debug("udp source started", "addr", conn.LocalAddr())
	return nil
}

// Close stops the source.
func (s *UDPSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Addr returns the bound local address, nil before Start.
func (s *UDPSource) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Chunks returns the chunk channel.
func (s *UDPSource) Chunks() <-chan Chunk { return s.chunks }

// Errors returns the errors channel.
func (s *UDPSource) Errors() <-chan error { return s.errors }

func (s *UDPSource) readLoop() {
	defer close(s.chunks)

	buf := make([]byte, 64*1024)
	for {
		n, _, err := s.conn.ReadFromUDP(buf)
		receivedAt := time.Now()

		if err != nil {
			// Ignore errors after Close() is called
			select {
			case <-s.done:
				return
			default:
				select {
				case s.errors <- err:
				default:
				}
				return
			}
		}
		if n == 0 {
			continue
		}

		data := make([]byte, n)
		copy(data, buf[:n])

		select {
		case s.chunks <- Chunk{Data: data, ReceivedAt: receivedAt}:
		case <-s.done:
			return
		default:
			s.logger.Warn("chunk buffer full, dropping datagram", "bytes", n)
		}
	}
}
