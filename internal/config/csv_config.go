package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/openneighborhood/neighborhood/internal/constants"
	"github.com/openneighborhood/neighborhood/internal/pathutil"
)

// Config holds the application settings.
type Config struct {
	// MirrorRoot is the directory the directory mirror serves consoles from.
	MirrorRoot string

	ConnectTimeout   time.Duration
	OperationTimeout time.Duration

	WindowWidth  int
	WindowHeight int

	// ShowHidden lists dot-files in the mirror's directory contents.
	ShowHidden bool

	// DetailedLogging enables debug-level logs and the log file.
	DetailedLogging bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		MirrorRoot:       DefaultMirrorRoot(),
		ConnectTimeout:   constants.DefaultConnectTimeout,
		OperationTimeout: constants.DefaultOperationTimeout,
		WindowWidth:      constants.DefaultWindowWidth,
		WindowHeight:     constants.DefaultWindowHeight,
	}
}

// LoadConfigCSV loads settings from a CSV file of key,value rows.
// A missing file yields the defaults; unknown keys are ignored.
func LoadConfigCSV(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read config CSV: %w", err)
	}

	for i, record := range records {
		if i == 0 && len(record) >= 2 && strings.ToLower(record[0]) == "key" {
			continue
		}
		if len(record) < 2 {
			continue
		}

		key := strings.TrimSpace(strings.ToLower(record[0]))
		value := strings.TrimSpace(record[1])

		switch key {
		case "mirror_root":
			if value != "" {
				cfg.MirrorRoot = value
			}
		case "connect_timeout":
			if d, err := parseDuration(value); err == nil && d > 0 {
				cfg.ConnectTimeout = d
			}
		case "operation_timeout":
			if d, err := parseDuration(value); err == nil && d > 0 {
				cfg.OperationTimeout = d
			}
		case "window_width":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				cfg.WindowWidth = v
			}
		case "window_height":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				cfg.WindowHeight = v
			}
		case "show_hidden":
			cfg.ShowHidden = parseBool(value)
		case "detailed_logging":
			cfg.DetailedLogging = parseBool(value)
		}
	}

	return cfg, nil
}

// SaveConfigCSV writes cfg as key,value rows.
func SaveConfigCSV(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	records := [][]string{
		{"key", "value"},
		{"mirror_root", cfg.MirrorRoot},
		{"connect_timeout", cfg.ConnectTimeout.String()},
		{"operation_timeout", cfg.OperationTimeout.String()},
		{"window_width", strconv.Itoa(cfg.WindowWidth)},
		{"window_height", strconv.Itoa(cfg.WindowHeight)},
		{"show_hidden", strconv.FormatBool(cfg.ShowHidden)},
		{"detailed_logging", strconv.FormatBool(cfg.DetailedLogging)},
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// MergeWithFlags applies command-line overrides. Zero values leave the
// loaded setting in place. NEIGHBORHOOD_MIRROR_ROOT sits between the file
// and the flag.
func (c *Config) MergeWithFlags(mirrorRoot string, timeout time.Duration, debug bool) {
	if env := os.Getenv("NEIGHBORHOOD_MIRROR_ROOT"); env != "" {
		c.MirrorRoot = env
	}
	if mirrorRoot != "" {
		c.MirrorRoot = mirrorRoot
	}
	if timeout > 0 {
		c.OperationTimeout = timeout
	}
	if debug {
		c.DetailedLogging = true
	}
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.MirrorRoot == "" {
		return fmt.Errorf("mirror_root must not be empty")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be positive, got %s", c.ConnectTimeout)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("operation_timeout must be positive, got %s", c.OperationTimeout)
	}
	return nil
}

// parseDuration accepts Go durations ("30s") or bare seconds ("30").
func parseDuration(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}

func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes"
}

// Resolve loads the settings both front ends run with: the file at path (or
// the default config file), then environment and flag overrides.
func Resolve(path, mirrorRoot string, timeout time.Duration, debug bool) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfigCSV(path)
	if err != nil {
		return nil, err
	}
	cfg.MergeWithFlags(mirrorRoot, timeout, debug)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.MirrorRoot, err = pathutil.ResolveAbsolutePath(cfg.MirrorRoot); err != nil {
		return nil, fmt.Errorf("invalid mirror_root: %w", err)
	}
	return cfg, nil
}
