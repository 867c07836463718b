package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultSourceKind       = "file"
	DefaultChunkSize        = 64 * 1024
	DefaultReadBuffer       = 4 * 1024 * 1024
	DefaultPingTimeout      = 60 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
	DefaultSourceBufferSize = 4096
	DefaultRecordBufferSize = 8192
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "prefer"
	DefaultMaxConns         = 10
	DefaultMinConns         = 2
	DefaultBatchSize        = 500
	DefaultFlushInterval    = 1 * time.Second
)

func (c *ConsumerConfig) applyDefaults() {
	// Source defaults
	if c.Source.Kind == "" {
		c.Source.Kind = DefaultSourceKind
	}
	if c.Source.ChunkSize == 0 {
		c.Source.ChunkSize = DefaultChunkSize
	}
	if c.Source.ReadBuffer == 0 {
		c.Source.ReadBuffer = DefaultReadBuffer
	}
	if c.Source.PingTimeout == 0 {
		c.Source.PingTimeout = DefaultPingTimeout
	}
	if c.Source.WriteTimeout == 0 {
		c.Source.WriteTimeout = DefaultWriteTimeout
	}
	if c.Source.BufferSize == 0 {
		c.Source.BufferSize = DefaultSourceBufferSize
	}

	// Decoder defaults
	if c.Decoder.BufferSize == 0 {
		c.Decoder.BufferSize = DefaultRecordBufferSize
	}

	// Database defaults
	applyDBDefaults(&c.Database.Postgres)

	// Writer defaults
	if c.Writer.BatchSize == 0 {
		c.Writer.BatchSize = DefaultBatchSize
	}
	if c.Writer.FlushInterval == 0 {
		c.Writer.FlushInterval = DefaultFlushInterval
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
