package config

import (
	"errors"
	"fmt"

	"github.com/rickgao/itto-feed/internal/itto"
)

// Validate checks that all required fields are set and values are valid.
func (c *ConsumerConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	switch c.Source.Kind {
	case "file":
		if c.Source.Path == "" {
			return errors.New("source.path is required for the file source")
		}
	case "udp":
		if c.Source.Listen == "" {
			return errors.New("source.listen is required for the udp source")
		}
	case "ws":
		if c.Source.URL == "" {
			return errors.New("source.url is required for the ws source")
		}
	default:
		return fmt.Errorf("source.kind must be file, udp, or ws, got %q", c.Source.Kind)
	}

	if c.Source.ChunkSize < 1 {
		return errors.New("source.chunk_size must be >= 1")
	}

	if c.Decoder.Tag != "" {
		if len(c.Decoder.Tag) != 1 {
			return fmt.Errorf("decoder.tag must be a single character, got %q", c.Decoder.Tag)
		}
		if !itto.Recognized(c.Decoder.Tag[0]) {
			return fmt.Errorf("decoder.tag %q is not a recognized message tag", c.Decoder.Tag)
		}
	}

	if c.Writer.Enabled {
		if err := c.Database.Postgres.validate("database.postgres"); err != nil {
			return err
		}
		if c.Writer.BatchSize < 1 {
			return errors.New("writer.batch_size must be >= 1")
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
