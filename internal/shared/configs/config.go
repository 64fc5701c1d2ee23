package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	Heatmap   HeatmapConfig   `mapstructure:"heatmap" validate:"required"`
	Sessions  SessionsConfig  `mapstructure:"sessions" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds Postgres connection configuration.
type DatabaseConfig struct {
	DSN          string `mapstructure:"dsn" validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"required,min=1"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// IngestionConfig holds event ingestion configuration.
type IngestionConfig struct {
	MouseSampleRate int `mapstructure:"mouse_sample_rate" validate:"required,min=1"` // persist every Nth mousemove per session
	MaxBatchBytes   int `mapstructure:"max_batch_bytes" validate:"required,min=1"`
}

// HeatmapConfig holds heatmap read-time aggregation configuration.
type HeatmapConfig struct {
	BucketSize int `mapstructure:"bucket_size" validate:"required,min=1"` // pixels
}

// SessionsConfig holds session query configuration.
type SessionsConfig struct {
	DefaultListLimit int `mapstructure:"default_list_limit" validate:"required,min=1"`
}
