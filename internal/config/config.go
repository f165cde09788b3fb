package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server" json:"server"`
	Storage Storage `yaml:"storage" json:"storage"`
	Logging Logging `yaml:"logging" json:"logging"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Storage struct {
	DataDir string `yaml:"data_dir" json:"data_dir"`
}

type Logging struct {
	AccessLog bool `yaml:"access_log" json:"access_log"`
}

func Default() *Config {
	return &Config{
		Server:  Server{Addr: ":8000"},
		Storage: Storage{DataDir: "data"},
		Logging: Logging{AccessLog: true},
	}
}

// Load reads a yaml config file. A missing file is not an error: the
// defaults apply, optionally adjusted by environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromEnv(cfg), nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return FromEnv(cfg), nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
}
