package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Convert contains settings for the image to pattern conversion.
type Convert struct {
	// Invert marks dark pixels alive instead of bright ones.
	Invert bool `toml:"invert"`
	// MaxWidth and MaxHeight downscale larger images before binarizing.
	// Zero disables the limit.
	MaxWidth           int    `toml:"max_width"`
	MaxHeight          int    `toml:"max_height"`
	ToolName           string `toml:"tool_name"`
	LockTimeoutSeconds int    `toml:"lock_timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for image2rle.
type Config struct {
	Convert Convert `toml:"convert"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the per-user configuration file, expanded to an
// absolute path.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load reads the configuration at path, or the first existing file among the
// per-user and project locations when path is empty. It returns the resolved
// path and whether a file was read. With no file, defaults apply.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := locate(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// decodeFile rejects keys the Config does not declare so a misspelled
// setting fails loudly instead of silently keeping its default.
func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	dec := toml.NewDecoder(file).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config: unknown keys\n%s", strict.String())
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// locate picks the file Load reads. An explicit path is used even when it
// does not exist yet; otherwise the first regular file among searchPaths
// wins and the per-user path is reported when none exists.
func locate(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		exists, err := isFile(expanded)
		return expanded, exists, err
	}

	candidates, err := searchPaths()
	if err != nil {
		return "", false, err
	}
	for _, candidate := range candidates {
		if ok, _ := isFile(candidate); ok {
			return candidate, true, nil
		}
	}
	return candidates[0], false, nil
}

func searchPaths() ([]string, error) {
	user, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	project, err := filepath.Abs(projectConfigName)
	if err != nil {
		return nil, err
	}
	return []string{user, project}, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat config: %w", err)
	}
}

// LockTimeout returns the output lock wait as a duration.
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.Convert.LockTimeoutSeconds) * time.Second
}

// ExpandPath resolves a leading ~ to the home directory and returns the
// cleaned absolute path. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return abs, nil
}

// CreateSample writes the commented sample configuration to path, creating
// parent directories and replacing any existing file.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
