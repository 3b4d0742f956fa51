package testsupport

import (
	"testing"

	"image2rle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns repository defaults with a short lock timeout so tests
// never stall on a contended output file.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Convert.LockTimeoutSeconds = 1
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithInvert selects dark-alive polarity.
func WithInvert() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Convert.Invert = true
	}
}

// WithMaxSize sets the downscale bounds.
func WithMaxSize(width, height int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Convert.MaxWidth = width
		cfg.Convert.MaxHeight = height
	}
}
