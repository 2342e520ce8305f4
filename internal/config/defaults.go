package config

const (
	defaultLanguage        = "en"
	defaultMergeMode       = "ask"
	defaultMinLength       = 0
	defaultMaxLength       = 100
	defaultCollapseDelayMS = 200
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Record: Record{
			DefaultLanguage: defaultLanguage,
		},
		Merge: Merge{
			Mode: defaultMergeMode,
		},
		Editor: Editor{
			MinLength:       defaultMinLength,
			MaxLength:       defaultMaxLength,
			CollapseDelayMS: defaultCollapseDelayMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
