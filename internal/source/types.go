package source

import (
	"context"
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected  = errors.New("not connected")
	ErrAlreadyClosed = errors.New("already closed")
)

// Chunk wraps raw feed bytes with the local receive timestamp.
type Chunk struct {
	Data       []byte    // Raw bytes, owned by the receiver
	ReceivedAt time.Time // Local timestamp when the bytes arrived
}

// Source is a producer of raw feed chunks. The Chunks channel is
// closed when the source reaches end of input or is closed.
type Source interface {
	// Start begins producing chunks.
	Start(ctx context.Context) error

	// Close stops the source and releases its resources.
	Close() error

	// Chunks returns the channel of raw feed chunks.
	Chunks() <-chan Chunk

	// Errors returns a channel of source errors.
	Errors() <-chan error
}
