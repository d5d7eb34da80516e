/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries all tunable settings for the library. Core code receives a
// *Config explicitly; Default is intended for application entry points only.
type Config struct {
	Mongo   MongoConfig   `yaml:"mongodb" json:"mongodb"`
	Frames  FramesConfig  `yaml:"frames" json:"frames"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// MongoConfig holds connection settings for the MongoDB boundary.
// Timeouts are kept as millisecond integers to match the wire-level
// driver options; use the accessor methods for time.Duration values.
type MongoConfig struct {
	ConnectTimeoutMS         int  `yaml:"connect_timeout_ms" json:"connect_timeout_ms"`
	ServerSelectionTimeoutMS int  `yaml:"server_selection_timeout_ms" json:"server_selection_timeout_ms"`
	SocketTimeoutMS          int  `yaml:"socket_timeout_ms" json:"socket_timeout_ms"`
	MaxPoolSize              int  `yaml:"max_pool_size" json:"max_pool_size"`
	RetryWrites              bool `yaml:"retry_writes" json:"retry_writes"`
}

// ConnectTimeout returns the connect timeout as a duration.
func (m MongoConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutMS) * time.Millisecond
}

// ServerSelectionTimeout returns the server selection timeout as a duration.
func (m MongoConfig) ServerSelectionTimeout() time.Duration {
	return time.Duration(m.ServerSelectionTimeoutMS) * time.Millisecond
}

// SocketTimeout returns the socket timeout as a duration.
func (m MongoConfig) SocketTimeout() time.Duration {
	return time.Duration(m.SocketTimeoutMS) * time.Millisecond
}

// FramesConfig holds table assembly settings.
type FramesConfig struct {
	DefaultBackend string `yaml:"default_backend" json:"default_backend"`
	ChunkSize      int    `yaml:"chunk_size" json:"chunk_size"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format  string `yaml:"format" json:"format"` // text, json
	NoColor bool   `yaml:"no_color" json:"no_color"`
}

// Default returns a fresh configuration with library defaults. Each call
// returns a new instance; there is no shared mutable global.
func Default() *Config {
	return &Config{
		Mongo: MongoConfig{
			ConnectTimeoutMS:         5000,
			ServerSelectionTimeoutMS: 3000,
			SocketTimeoutMS:          10000,
			MaxPoolSize:              10,
			RetryWrites:              true,
		},
		Frames: FramesConfig{
			DefaultBackend: "native",
			ChunkSize:      10000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML or JSON file (selected by extension)
// on top of the defaults. Environment variables referenced in the file body
// are expanded before parsing. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	// Expand environment variables in the file content
	expanded := os.ExpandEnv(string(data))

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Environment override keys applied by ApplyEnv.
const (
	EnvMongoTimeoutMS = "DOCFRAME_MONGODB_TIMEOUT_MS"
	EnvDefaultBackend = "DOCFRAME_DEFAULT_BACKEND"
	EnvLogLevel       = "DOCFRAME_LOG_LEVEL"
	EnvChunkSize      = "DOCFRAME_CHUNK_SIZE"
)

// ApplyEnv overrides individual settings from process environment variables.
// Unset variables leave the current values untouched.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvMongoTimeoutMS); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvMongoTimeoutMS, v, err)
		}
		c.Mongo.ConnectTimeoutMS = ms
	}
	if v := os.Getenv(EnvDefaultBackend); v != "" {
		c.Frames.DefaultBackend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvChunkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvChunkSize, v, err)
		}
		c.Frames.ChunkSize = n
	}
	return nil
}

// Validate checks that all settings are inside sane ranges.
func (c *Config) Validate() error {
	if c.Mongo.ConnectTimeoutMS <= 0 {
		return fmt.Errorf("mongodb connect_timeout_ms must be positive, got %d", c.Mongo.ConnectTimeoutMS)
	}
	if c.Mongo.ServerSelectionTimeoutMS <= 0 {
		return fmt.Errorf("mongodb server_selection_timeout_ms must be positive, got %d", c.Mongo.ServerSelectionTimeoutMS)
	}
	if c.Mongo.SocketTimeoutMS <= 0 {
		return fmt.Errorf("mongodb socket_timeout_ms must be positive, got %d", c.Mongo.SocketTimeoutMS)
	}
	if c.Mongo.MaxPoolSize < 1 {
		return fmt.Errorf("mongodb max_pool_size must be at least 1, got %d", c.Mongo.MaxPoolSize)
	}
	if c.Frames.DefaultBackend == "" {
		return fmt.Errorf("frames default_backend must not be empty")
	}
	if c.Frames.ChunkSize < 1 {
		return fmt.Errorf("frames chunk_size must be at least 1, got %d", c.Frames.ChunkSize)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}
