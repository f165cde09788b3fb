package config

import (
	"os"
	"strings"
)

// FromEnv applies environment variable overrides on top of cfg.
// Unset variables leave the config untouched.
func FromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = Default()
	}

	if v := strings.TrimSpace(os.Getenv("SMARTTODO_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("SMARTTODO_DATA_DIR")); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("SMARTTODO_ACCESS_LOG")); v != "" {
		cfg.Logging.AccessLog = envBool(v)
	}

	return cfg
}

func envBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
