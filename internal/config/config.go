package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadConfig looks unless the caller overrides it.
const DefaultPath = "docsync.yaml"

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	Scanner struct {
		Exclude []string `yaml:"exclude"` // directory names skipped during discovery
	} `yaml:"scanner"`
	Report struct {
		Path string `yaml:"path"`
	} `yaml:"report"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      string `yaml:"level"`
		MaxSize    int    `yaml:"max_size"` // megabytes
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"` // days
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Project.Root = "."
	cfg.Log.Filename = ".docsync.log"
	cfg.Log.Level = "info"
	cfg.Log.MaxSize = 10
	cfg.Log.MaxBackups = 3
	cfg.Log.MaxAge = 28
	cfg.Log.Compress = true
	return cfg
}

// LoadConfig reads the YAML config at path on top of the defaults. A missing
// file is not an error; the defaults are returned instead. Environment
// variables win over both.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config on top of the defaults
	cfg := DefaultConfig()
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if root := os.Getenv("DOCSYNC_PROJECT_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if reportPath := os.Getenv("DOCSYNC_REPORT_PATH"); reportPath != "" {
		cfg.Report.Path = reportPath
	}
	if level := os.Getenv("DOCSYNC_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logFile := os.Getenv("DOCSYNC_LOG_FILE"); logFile != "" {
		cfg.Log.Filename = logFile
	}

	return cfg, nil
}
