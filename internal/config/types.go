package config

import "time"

// LogFormat selects how log lines are written.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level site configuration, corresponding to .nbh.yml.
type Config struct {
	SiteName          string        `yaml:"site_name" koanf:"site_name"`
	BaseURL           string        `yaml:"base_url" koanf:"base_url"`
	Port              int           `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	OutputDir         string        `yaml:"output_dir" koanf:"output_dir"`
	PublicDir         string        `yaml:"public_dir" koanf:"public_dir"`
	DBPath            string        `yaml:"db_path" koanf:"db_path"`
	CatalogFile       string        `yaml:"catalog_file" koanf:"catalog_file"`
	ContentFile       string        `yaml:"content_file" koanf:"content_file"`
	LogLevel          string        `yaml:"log_level" koanf:"log_level"`
	LogFormat         LogFormat     `yaml:"log_format" koanf:"log_format"`
	AlertDismissDelay time.Duration `yaml:"alert_dismiss_delay" koanf:"alert_dismiss_delay"`
	AssetInclude      []string      `yaml:"asset_include" koanf:"asset_include"`
	AssetExclude      []string      `yaml:"asset_exclude" koanf:"asset_exclude"`
	Server            ServerConfig  `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server timeouts.
type ServerConfig struct {
	ReadTimeout     time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}
