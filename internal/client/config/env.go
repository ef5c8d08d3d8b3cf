package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/snsclone/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv overlays Config with SNS_* variables.
//
// The dotenv file given with -e/-env must exist; the implicit ./.env is
// optional. Variables already set in the process environment take
// precedence over the file. Panics on unreadable files or invalid values.
func parseEnv(cfg *Config) {
	fileVars := map[string]string{}

	path := flagx.EnvFileFlags()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	vars, err := godotenv.Read(path)
	switch {
	case err == nil:
		fileVars = vars
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		panic(err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup("SNS_API_URL"); ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := lookup("SNS_DB_PATH"); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup("SNS_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("SNS_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := lookup("SNS_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
}
