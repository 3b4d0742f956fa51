package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeConvert()
	c.normalizeLogging()
}

func (c *Config) normalizeConvert() {
	c.Convert.ToolName = strings.TrimSpace(c.Convert.ToolName)
	if c.Convert.ToolName == "" {
		c.Convert.ToolName = defaultToolName
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("IMAGE2RLE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
