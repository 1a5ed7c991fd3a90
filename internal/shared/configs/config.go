package configs

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	LogFile LogFileConfig `mapstructure:"log_file" validate:"required"`
	Upload  UploadConfig  `mapstructure:"upload" validate:"required"`
	Query   QueryConfig   `mapstructure:"query" validate:"required"`
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

// LogFileConfig holds the location of the append-only JSONL log file.
// Path is required on purpose: there is no default that silently points elsewhere.
type LogFileConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// UploadConfig holds the shared credential gating the upload endpoint.
type UploadConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`
}

// QueryConfig bounds per-query cost.
type QueryConfig struct {
	MaxWindowMinutes int `mapstructure:"max_window_minutes" validate:"required,min=1"`
	MaxLimit         int `mapstructure:"max_limit" validate:"required,min=1"`
}
