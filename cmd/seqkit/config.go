package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/pkg/seqkit/queueseq"
)

const ErrInvalidConfig errorkit.Error = "seqkit: invalid configuration"

// ConfigEnvKey names the environment variable that points to the default configuration file.
const ConfigEnvKey = "SEQKIT_CONFIG"

const (
	OutputLines = "lines"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

type Config struct {
	Kind     string `yaml:"kind" toml:"kind"`
	Output   string `yaml:"output" toml:"output"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Kind:     string(seqkit.KindArray),
		Output:   OutputLines,
		LogLevel: string(logging.LevelInfo),
	}
}

// LoadConfig reads a YAML or TOML configuration file on top of the defaults.
// The format is picked by the file extension, and YAML is assumed for anything that is not .toml.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, ErrInvalidConfig.Wrap(err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Kind {
	case string(seqkit.KindArray), string(seqkit.KindList), string(queueseq.Kind):
	default:
		return ErrInvalidConfig.F("unknown kind %q", c.Kind)
	}
	switch c.Output {
	case OutputLines, OutputJSON, OutputYAML:
	default:
		return ErrInvalidConfig.F("unknown output format %q", c.Output)
	}
	switch logging.Level(c.LogLevel) {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError, logging.LevelFatal:
	default:
		return ErrInvalidConfig.F("unknown log level %q", c.LogLevel)
	}
	return nil
}
