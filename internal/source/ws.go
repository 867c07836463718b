package source

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WSConfig configures a WebSocket source.
type WSConfig struct {
	URL          string        // WebSocket URL of the feed relay
	PingTimeout  time.Duration // Max time without ping before considering connection stale
	WriteTimeout time.Duration // Write deadline for control frames
	BufferSize   int           // Chunk channel buffer size
}

// DefaultWSConfig returns sensible defaults.
func DefaultWSConfig() WSConfig {
	return WSConfig{
		PingTimeout:  60 * time.Second,
		WriteTimeout: 5 * time.Second,
		BufferSize:   4096,
	}
}

// WSSource reads binary frames from a WebSocket feed relay. Frames of
// other types are ignored; a binary frame may split a message across
// its boundary just like a datagram.
type WSSource struct {
	cfg    WSConfig
	logger *slog.Logger

	conn *websocket.Conn

	chunks chan Chunk
	errors chan error
	done   chan struct{}

	mu         sync.RWMutex
	connected  bool
	lastPingAt time.Time
	closed     bool
}

// NewWSSource creates a WebSocket source for cfg.URL.
func NewWSSource(cfg WSConfig, logger *slog.Logger) *WSSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &WSSource{
		cfg:    cfg,
		logger: logger,
		chunks: make(chan Chunk, cfg.BufferSize),
		errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// Start dials the relay and begins reading frames.
func (s *WSSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrAlreadyClosed
	}
	s.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, s.cfg.URL, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.conn = conn
	s.connected = true
	s.lastPingAt = time.Now()
	s.mu.Unlock()

	conn.SetPingHandler(func(data string) error {
		s.mu.Lock()
		s.lastPingAt = time.Now()
		s.mu.Unlock()

		return conn.WriteControl(
			websocket.PongMessage,
			[]byte(data),
			time.Now().Add(time.Second),
		)
	})

	conn.SetPongHandler(func(string) error {
		s.mu.Lock()
		s.lastPingAt = time.Now()
		s.mu.Unlock()
		return nil
	})

	go s.readLoop()
	go s.heartbeatLoop()

	s.logger.Debug("websocket source connected", "url", s.cfg.URL)
	return nil
}

// Close gracefully closes the connection.
func (s *WSSource) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.connected = false
	s.mu.Unlock()

	close(s.done)

	if s.conn != nil {
		s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return s.conn.Close()
	}
	return nil
}

// IsConnected returns the current connection state.
func (s *WSSource) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Chunks returns the chunk channel.
func (s *WSSource) Chunks() <-chan Chunk { return s.chunks }

// Errors returns the errors channel.
func (s *WSSource) Errors() <-chan error { return s.errors }

// readLoop reads frames and forwards binary payloads as chunks.
func (s *WSSource) readLoop() {
	defer func() {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
		close(s.chunks)
	}()

	for {
		select {
		case <-s.done:
			return
		default:
		}

		frameType, data, err := s.conn.ReadMessage()
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

		if frameType != websocket.BinaryMessage {
			s.logger.Debug("ignoring non-binary frame", "type", frameType)
			continue
		}

		select {
		case s.chunks <- Chunk{Data: data, ReceivedAt: receivedAt}:
		case <-s.done:
			return
		default:
			s.logger.Warn("chunk buffer full, dropping frame", "bytes", len(data))
		}
	}
}

// heartbeatLoop monitors for stale connections.
func (s *WSSource) heartbeatLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.RLock()
			conn := s.conn
			s.mu.RUnlock()

			if conn != nil {
				deadline := time.Now().Add(s.cfg.WriteTimeout)
				if err := conn.WriteControl(websocket.PingMessage, []byte("keepalive"), deadline); err != nil {
					s.logger.Debug("failed to send ping", "error", err)
				}
			}

			s.mu.RLock()
			lastPing := s.lastPingAt
			s.mu.RUnlock()

			if time.Since(lastPing) > s.cfg.PingTimeout {
				s.logger.Warn("no ping received, connection stale",
					"last_ping", lastPing,
					"timeout", s.cfg.PingTimeout,
				)
				select {
				case s.errors <- ErrNotConnected:
				default:
				}
				return
			}
		}
	}
}
