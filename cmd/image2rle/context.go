package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"image2rle/internal/config"
	"image2rle/internal/logging"
)

type commandFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	invert     bool
	maxWidth   int
	maxHeight  int
}

type commandContext struct {
	flags *commandFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	sessionID string
}

func newCommandContext(flags *commandFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		sessionID: uuid.NewString(),
	}
}

// ensureConfig loads the configuration once and layers explicitly set flags
// on top of it.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("invert") {
		cfg.Convert.Invert = c.flags.invert
	}
	if changed("max-width") {
		cfg.Convert.MaxWidth = c.flags.maxWidth
	}
	if changed("max-height") {
		cfg.Convert.MaxHeight = c.flags.maxHeight
	}
	if changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(c.flags.logLevel))
	}
	if changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(c.flags.logFormat))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithSessionID(ctx, c.sessionID)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
