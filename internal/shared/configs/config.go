package configs

import "time"

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Detection   DetectionConfig   `mapstructure:"detection" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"required,min=1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// DetectionConfig holds the bot heuristics thresholds and the ingestion fan-out.
type DetectionConfig struct {
	MaxRequests        int `mapstructure:"max_requests" validate:"required,min=1"`
	BurstWindowSeconds int `mapstructure:"burst_window_seconds" validate:"required,min=1"`
	Shards             int `mapstructure:"shards" validate:"required,min=1,max=256"`
	ShardBuffer        int `mapstructure:"shard_buffer" validate:"required,min=1"`
}

// BurstWindow returns the burst threshold as a duration.
func (c DetectionConfig) BurstWindow() time.Duration {
	return time.Duration(c.BurstWindowSeconds) * time.Second
}
