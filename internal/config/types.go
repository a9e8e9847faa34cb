package config

// LogFormat selects the stderr log encoding.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config is the top-level homepage configuration, corresponding to .homepage.yml.
type Config struct {
	Port            int            `yaml:"port" koanf:"port"`
	ContentDir      string         `yaml:"content_dir" koanf:"content_dir"`
	ContentURL      string         `yaml:"content_url" koanf:"content_url"`
	IndexPage       string         `yaml:"index_page" koanf:"index_page"`
	EmbedPasses     int            `yaml:"embed_passes" koanf:"embed_passes"`
	AllowAllOrigins bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Terminal        TerminalConfig `yaml:"terminal" koanf:"terminal"`
	History         HistoryConfig  `yaml:"history" koanf:"history"`
	Log             LogConfig      `yaml:"log" koanf:"log"`
	Build           BuildConfig    `yaml:"build" koanf:"build"`
}

// TerminalConfig holds the prompt identity and the file served as ~/resume.md.
type TerminalConfig struct {
	User       string `yaml:"user" koanf:"user"`
	Host       string `yaml:"host" koanf:"host"`
	ResumeFile string `yaml:"resume_file" koanf:"resume_file"`
}

// HistoryConfig controls the optional terminal command log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	DBPath  string `yaml:"db_path" koanf:"db_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string    `yaml:"level" koanf:"level"`
	Format  LogFormat `yaml:"format" koanf:"format"`
	File    string    `yaml:"file" koanf:"file"`
	Journal bool      `yaml:"journal" koanf:"journal"`
}

// BuildConfig holds static export settings.
type BuildConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Include   []string `yaml:"include" koanf:"include"`
	Exclude   []string `yaml:"exclude" koanf:"exclude"`
}
