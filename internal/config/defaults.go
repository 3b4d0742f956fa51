package config

const (
	defaultConfigPath         = "~/.config/image2rle/config.toml"
	projectConfigName         = "image2rle.toml"
	defaultToolName           = "image2rle"
	defaultLockTimeoutSeconds = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "error"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Convert: Convert{
			ToolName:           defaultToolName,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
