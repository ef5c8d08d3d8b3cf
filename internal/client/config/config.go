package config

import "time"

// Config holds runtime settings for the SNS CLI.
//
// Fields:
//   - APIURL: base URL of the REST backend; always ends with "/".
//   - DatabasePath: SQLite file holding the session credential.
//   - RequestTimeout: per-request HTTP timeout; zero disables it.
//   - LogFormat: text, json, zap or zap-dev.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIURL         string
	DatabasePath   string
	RequestTimeout time.Duration
	LogFormat      string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://127.0.0.1:8000/"
	c.DatabasePath = "snsclone.db"
	c.RequestTimeout = 30 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
