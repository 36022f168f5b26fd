package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither the flag nor GRADEBOOK_CONFIG is set.
const DefaultPath = "configs/gradebook.yaml"

// Config holds the demo program configuration.
type Config struct {
	Book struct {
		Name   string    `yaml:"name"`
		Grades []float64 `yaml:"grades"`
	} `yaml:"book"`
	Log struct {
		Level   string `yaml:"level"`
		Console *bool  `yaml:"console"`
		Record  *bool  `yaml:"record"`
	} `yaml:"log"`
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ResolvePath picks the config path: explicit flag value, then GRADEBOOK_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("GRADEBOOK_CONFIG"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GRADEBOOK_NAME"); v != "" {
		cfg.Book.Name = v
	}
	if v, ok := os.LookupEnv("GRADEBOOK_GRADES"); ok {
		grades, err := parseGrades(v)
		if err != nil {
			return nil, fmt.Errorf("parse GRADEBOOK_GRADES: %w", err)
		}
		cfg.Book.Grades = grades
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_RECORD"); v != "" {
		record, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse LOG_RECORD: %w", err)
		}
		cfg.Log.Record = &record
	}

	// Defaults. An explicitly empty grade list is kept.
	if cfg.Book.Name == "" {
		cfg.Book.Name = "Paul School"
	}
	if cfg.Book.Grades == nil {
		cfg.Book.Grades = []float64{45.9, 25.9, 105.9}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Console == nil {
		console := true
		cfg.Log.Console = &console
	}
	if cfg.Log.Record == nil {
		record := true
		cfg.Log.Record = &record
	}

	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q is invalid: %w", c.Log.Level, err)
	}
	return nil
}

func parseGrades(s string) ([]float64, error) {
	grades := make([]float64, 0)
	if strings.TrimSpace(s) == "" {
		return grades, nil
	}
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("grade %q: %w", strings.TrimSpace(part), err)
		}
		grades = append(grades, v)
	}
	return grades, nil
}
