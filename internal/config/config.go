package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wasmiot-abc/internal/safety"
)

// Default mount names and payload expected by the orchestrator's test suite.
const (
	DefaultDeployMount = "deployFile"
	DefaultExecMount   = "execFile"
	DefaultOutMount    = "outFile"
	DefaultPayload     = "42"
)

type Mounts struct {
	Deploy string `yaml:"deploy" json:"deploy"` // Read by a, provisioned at deployment time
	Exec   string `yaml:"exec" json:"exec"`     // Read by a, provisioned per execution
	Out    string `yaml:"out" json:"out"`       // Written by c
}

type LoggingCfg struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // console or json
}

type MetricsCfg struct {
	TextfilePath string `yaml:"textfile_path" json:"textfile_path"` // Prometheus textfile output, empty disables
}

type Config struct {
	Mounts  Mounts     `yaml:"mounts" json:"mounts"`
	Payload string     `yaml:"payload" json:"payload"` // Bytes written by c
	Logging LoggingCfg `yaml:"logging" json:"logging"`
	Metrics MetricsCfg `yaml:"metrics" json:"metrics"`
}

var (
	errInvalidLevel  = errors.New("logging.level must be one of debug, info, warn, error")
	errInvalidFormat = errors.New("logging.format must be console or json")
)

// Default returns the configuration the wasm build runs with.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.validateAndDefault()
	return cfg
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := decode(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if c.Mounts.Deploy == "" {
		c.Mounts.Deploy = DefaultDeployMount
	}
	if c.Mounts.Exec == "" {
		c.Mounts.Exec = DefaultExecMount
	}
	if c.Mounts.Out == "" {
		c.Mounts.Out = DefaultOutMount
	}
	if err := safety.ValidateMountNames(c.Mounts.Deploy, c.Mounts.Exec, c.Mounts.Out); err != nil {
		return fmt.Errorf("mounts: %w", err)
	}

	// An explicit empty payload in YAML is indistinguishable from an absent one
	if c.Payload == "" {
		c.Payload = DefaultPayload
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", errInvalidLevel, c.Logging.Level)
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: %q", errInvalidFormat, c.Logging.Format)
	}

	return nil
}
