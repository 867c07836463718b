package config

import "time"

// ConsumerConfig is the root configuration for a feed consumer instance.
type ConsumerConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Source   SourceConfig   `yaml:"source"`
	Decoder  DecoderConfig  `yaml:"decoder"`
	Database DatabaseConfig `yaml:"database"`
	Writer   WriterConfig   `yaml:"writer"`
	Output   OutputConfig   `yaml:"output"`
}

// InstanceConfig identifies this consumer.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// SourceConfig selects and configures the feed source.
type SourceConfig struct {
	Kind string `yaml:"kind"` // "file", "udp", or "ws"

	// file source
	Path      string `yaml:"path"`
	ChunkSize int    `yaml:"chunk_size"`

	// udp source
	Listen     string `yaml:"listen"`
	ReadBuffer int    `yaml:"read_buffer"`

	// ws source
	URL          string        `yaml:"url"`
	PingTimeout  time.Duration `yaml:"ping_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	BufferSize int `yaml:"buffer_size"` // chunk channel buffer
}

// DecoderConfig controls the framer.
type DecoderConfig struct {
	Tag        string `yaml:"tag"`         // single message tag to decode, empty = all
	BufferSize int    `yaml:"buffer_size"` // record buffer initial capacity
}

// DatabaseConfig holds the PostgreSQL connection for decoded messages.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// WriterConfig holds batch writer settings.
type WriterConfig struct {
	Enabled       bool          `yaml:"enabled"`
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
}

// OutputConfig holds the flat-file sinks.
type OutputConfig struct {
	CSVPath  string `yaml:"csv_path"`  // empty = no CSV output
	TextPath string `yaml:"text_path"` // empty = no text output
	FeedDate string `yaml:"feed_date"` // YYYY-MM-DD, empty = infer from capture name
}
