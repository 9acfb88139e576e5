package config

const (
	defaultSettingsDir      = "~/.config/zed"
	defaultLogDir           = "~/.local/share/dotkit/logs"
	defaultLogRetentionDays = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultOutputIndent     = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SettingsDir: defaultSettingsDir,
			LogDir:      defaultLogDir,
		},
		Output: Output{
			Indent: defaultOutputIndent,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
