package config

// DefaultExcludes are glob patterns left out of static builds by default.
var DefaultExcludes = []string{
	"drafts/**",
	"**/_*.md",
	"resume.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        8080,
		IndexPage:   "index",
		EmbedPasses: 3,
		Terminal: TerminalConfig{
			User:       "reader",
			Host:       "ackhava.dev",
			ResumeFile: "resume.md",
		},
		History: HistoryConfig{
			Enabled: false,
			DBPath:  ".homepage/history.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogText,
		},
		Build: BuildConfig{
			OutputDir: "public",
			Include:   []string{"**/*.md"},
			Exclude:   DefaultExcludes,
		},
	}
}
