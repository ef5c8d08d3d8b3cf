// Package config loads runtime configuration for the SNS CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment (see parseEnv). A dotenv file named by -e or -env, or
//     ./.env when present, is read first; real environment variables win
//     over it.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment variables
//
//	SNS_API_URL           base URL of the backend
//	SNS_DB_PATH           local database file
//	SNS_REQUEST_TIMEOUT   request timeout, e.g. "10s"
//	SNS_LOG_FORMAT        text | json | zap | zap-dev
//	SNS_LOG_LEVEL         debug | info | warn | error
//
// Supported flags
//
//	-a string   base URL of the backend
//	-d string   local database file
//	-t int      request timeout (seconds, 0 disables)
//	-f string   log format
//	-v string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "30s" or integer nanoseconds. Absent keys keep earlier values:
//
//	{
//	  "api_url": "http://127.0.0.1:8000/",
//	  "database_path": "snsclone.db",
//	  "request_timeout": "30s",
//	  "log_format": "text",
//	  "log_level": "info"
//	}
package config
