// Package replay pushes capture files back onto the wire as paced UDP
// datagrams, approximating the burstiness of the original feed.
package replay

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"
)

// Config controls datagram size and pacing.
type Config struct {
	Target       string        // UDP address to send to
	DatagramSize int           // Bytes per datagram
	Interval     time.Duration // Pause between datagrams, ignored in burst mode
	Burst        bool          // Send as fast as the socket allows
}

// DefaultConfig returns the pacing defaults.
func DefaultConfig() Config {
	return Config{
		DatagramSize: 1400,
		Interval:     100 * time.Microsecond,
	}
}

// Stats reports what a run sent.
type Stats struct {
	Datagrams int64
	Bytes     int64
	Elapsed   time.Duration
}

// Pacer sends a byte stream to a UDP target in fixed-size datagrams.
type Pacer struct {
	cfg    Config
	logger *slog.Logger
}

// NewPacer creates a pacer for cfg.Target.
func NewPacer(cfg Config, logger *slog.Logger) *Pacer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DatagramSize < 1 {
		cfg.DatagramSize = DefaultConfig().DatagramSize
	}
	return &Pacer{cfg: cfg, logger: logger}
}

// SendFile streams the capture file at path to the target.
func (p *Pacer) SendFile(ctx context.Context, path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()
	return p.Send(ctx, f)
}

// Send streams r to the target, one datagram per DatagramSize bytes.
// The final datagram carries whatever remains.
func (p *Pacer) Send(ctx context.Context, r io.Reader) (Stats, error) {
	addr, err := net.ResolveUDPAddr("udp", p.cfg.Target)
	if err != nil {
		return Stats{}, fmt.Errorf("resolve target: %w", err)
	}
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return Stats{}, fmt.Errorf("dial target: %w", err)
	}
	defer conn.Close()

	p.logger.Info("replay started",
		"target", p.cfg.Target,
		"datagram_size", p.cfg.DatagramSize,
		"interval", p.cfg.Interval,
		"burst", p.cfg.Burst,
	)

	var stats Stats
	start := time.Now()
	buf := make([]byte, p.cfg.DatagramSize)

	for {
		select {
		case <-ctx.Done():
			stats.Elapsed = time.Since(start)
			return stats, ctx.Err()
		default:
		}

		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if _, werr := conn.Write(buf[:n]); werr != nil {
				stats.Elapsed = time.Since(start)
				return stats, fmt.Errorf("send datagram: %w", werr)
			}
			stats.Datagrams++
			stats.Bytes += int64(n)

			if !p.cfg.Burst && p.cfg.Interval > 0 {
				time.Sleep(p.cfg.Interval)
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("read capture: %w", err)
		}
	}

	stats.Elapsed = time.Since(start)
	p.logger.Info("replay finished",
		"datagrams", stats.Datagrams,
		"bytes", stats.Bytes,
		"elapsed", stats.Elapsed,
	)
	return stats, nil
}
