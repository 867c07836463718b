// Package framer recovers message boundaries from an unframed byte
// stream and drives the itto decoder.
//
// The feed has no length prefix or checksum, so framing is heuristic:
// the scanner hunts for bytes that match a recognized tag, decodes the
// candidate at its fixed length, and accepts it only if it passes the
// plausibility checks. A false-positive tag match costs exactly one
// byte of rescan, never a full candidate span, which keeps the framer
// self-healing on noisy or mid-message input.
package framer

import (
	"bytes"
	"log/slog"

	"github.com/rickgao/itto-feed/internal/itto"
)

// Stats counts scanner outcomes since the framer was created.
type Stats struct {
	Decoded        int64 // messages accepted and dispatched
	Rejected       int64 // tag matches that failed plausibility
	TruncatedWaits int64 // feeds that ended buffering a partial candidate
	DiscardedBytes int64 // unmatched bytes dropped at end of scan
	LeftoverLen    int   // bytes currently carried to the next feed
}

// Framer scans a chunked byte stream for complete messages and hands
// each accepted one to its handler. A framer serves exactly one
// logical stream; calls to Feed must be serialized by the caller.
type Framer struct {
	handler itto.Handler
	logger  *slog.Logger

	recognized [256]bool
	single     byte // set when exactly one tag is recognized
	isSingle   bool

	// leftover holds the tail of a message truncated at the previous
	// chunk boundary. Always strictly shorter than the longest layout.
	leftover []byte

	stats Stats
}

// New creates a framer that recognizes every tag in the layout table.
func New(handler itto.Handler, logger *slog.Logger) *Framer {
	return newFramer(itto.Tags(), handler, logger)
}

// NewSingleTag creates a framer bound to one message kind, as used by
// single-type file replay. The tag must be in the layout table.
func NewSingleTag(tag byte, handler itto.Handler, logger *slog.Logger) *Framer {
	if !itto.Recognized(tag) {
		panic("framer: unrecognized tag")
	}
	return newFramer([]byte{tag}, handler, logger)
}

func newFramer(tags []byte, handler itto.Handler, logger *slog.Logger) *Framer {
	if logger == nil {
		logger = slog.Default()
	}
	f := &Framer{handler: handler, logger: logger}
	for _, t := range tags {
		f.recognized[t] = true
	}
	if len(tags) == 1 {
		f.single = tags[0]
		f.isSingle = true
	}
	return f
}

// Feed scans leftover bytes plus chunk for complete messages,
// dispatching each accepted one synchronously in stream order. Any
// trailing bytes that form the start of a recognized but incomplete
// message are buffered for the next call. Feed never fails: truncated
// candidates wait, implausible candidates are skipped, unknown bytes
// are dropped.
func (f *Framer) Feed(chunk []byte) {
	var buf []byte
	if len(f.leftover) > 0 {
		buf = append(f.leftover, chunk...)
		f.leftover = nil
	} else {
		buf = chunk
	}
	total := len(buf)

	cursor := 0
	for cursor < total {
		pos := f.nextTag(buf, cursor)
		if pos < 0 {
			// No recognized tag in the remainder. Tags are single
			// bytes, so nothing here can start a message; drop it.
			f.stats.DiscardedBytes += int64(total - cursor)
			f.stats.LeftoverLen = 0
			return
		}
		f.stats.DiscardedBytes += int64(pos - cursor)

		layout := itto.LayoutFor(buf[pos])
		if pos+layout.Length > total {
			// Partial candidate at the chunk boundary: carry it.
			// Copy, since buf may alias the caller's chunk.
			f.leftover = append(make([]byte, 0, total-pos), buf[pos:total]...)
			f.stats.TruncatedWaits++
			f.stats.LeftoverLen = len(f.leftover)
			return
		}

		candidate := buf[pos : pos+layout.Length]
		if !itto.Plausible(layout, candidate) {
			// False positive: consume only the tag byte and rescan.
			f.stats.Rejected++
			cursor = pos + 1
			continue
		}

		itto.Dispatch(itto.Decode(candidate), f.handler)
		f.stats.Decoded++
		cursor = pos + layout.Length
	}
	f.stats.LeftoverLen = 0
}

// Stats returns scanner counters. LeftoverLen is always strictly less
// than the longest recognized message length.
func (f *Framer) Stats() Stats {
	return f.stats
}

// nextTag returns the index of the next recognized tag byte at or
// after from, or -1 if none remains.
func (f *Framer) nextTag(buf []byte, from int) int {
	if f.isSingle {
		i := bytes.IndexByte(buf[from:], f.single)
		if i < 0 {
			return -1
		}
		return from + i
	}
	for i := from; i < len(buf); i++ {
		if f.recognized[buf[i]] {
			return i
		}
	}
	return -1
}
