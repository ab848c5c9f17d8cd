package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/mines"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidThreshold = errors.New("config: threshold must not be negative")
	ErrInvalidWorkers   = errors.New("config: workers must be at least 1")
	ErrUnknownFormat    = errors.New("config: unknown config file format")
)

type Config struct {
	Mode       string         `json:"mode" yaml:"mode"`
	Threshold  int            `json:"threshold" yaml:"threshold"`
	Workers    int            `json:"workers" yaml:"workers"`
	Strategy   mines.Strategy `json:"strategy" yaml:"strategy"`
	LogLevel   string         `json:"log_level" yaml:"log_level"`
	LogFile    string         `json:"log_file" yaml:"log_file"`
	RenderPath string         `json:"render_path" yaml:"render_path"`
	Progress   bool           `json:"progress" yaml:"progress"`
}

func Default() Config {
	return Config{
		Mode:      "production",
		Threshold: mines.DefaultThreshold,
		Workers:   1,
		Strategy:  mines.DepthFirst,
		LogLevel:  logrus.InfoLevel.String(),
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":        c.Mode,
		"threshold":   c.Threshold,
		"workers":     c.Workers,
		"strategy":    c.Strategy.String(),
		"log_level":   c.LogLevel,
		"log_file":    c.LogFile,
		"render_path": c.RenderPath,
		"progress":    c.Progress,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Field() mines.Field {
	return mines.NewField(c.Threshold)
}

func (c Config) FillOptions() mines.FillOptions {
	return mines.FillOptions{
		Strategy: c.Strategy,
		Workers:  c.Workers,
	}
}

// Read fills config from a JSON or YAML file, picked by extension.
// Keys missing from the file keep their current values.
func Read(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config with MINEFIELD_* environment variables.
func (c *Config) ApplyEnv() error {
	if mode, ok := os.LookupEnv("MINEFIELD_MODE"); ok {
		c.Mode = mode
	}

	if thresholdStr, ok := os.LookupEnv("MINEFIELD_THRESHOLD"); ok {
		threshold, err := strconv.Atoi(thresholdStr)
		if err != nil {
			return fmt.Errorf("unable to convert MINEFIELD_THRESHOLD to int: %w", err)
		}
		c.Threshold = threshold
	}

	if workersStr, ok := os.LookupEnv("MINEFIELD_WORKERS"); ok {
		workers, err := strconv.Atoi(workersStr)
		if err != nil {
			return fmt.Errorf("unable to convert MINEFIELD_WORKERS to int: %w", err)
		}
		c.Workers = workers
	}

	if strategy, ok := os.LookupEnv("MINEFIELD_STRATEGY"); ok {
		if err := c.Strategy.UnmarshalText([]byte(strategy)); err != nil {
			return fmt.Errorf("unable to parse MINEFIELD_STRATEGY: %w", err)
		}
	}

	if level, ok := os.LookupEnv("MINEFIELD_LOG_LEVEL"); ok {
		c.LogLevel = level
	}

	if logFile, ok := os.LookupEnv("MINEFIELD_LOG_FILE"); ok {
		c.LogFile = logFile
	}

	return nil
}

func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidThreshold, c.Threshold)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidWorkers, c.Workers)
	}
	if _, err := c.Strategy.MarshalText(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
