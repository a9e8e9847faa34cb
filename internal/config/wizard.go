package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectContentDir looks for a directory that already holds an index page.
func detectContentDir() string {
	for _, dir := range []string{"content", "site", "pages", "."} {
		if _, err := os.Stat(dir + "/index.md"); err == nil {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and saves the result to
// path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to homepage! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Select{
		Label: "Where do pages come from?",
		Items: []string{
			"directory - markdown files on disk",
			"url       - a remote static host",
			"embedded  - the built-in sample site",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source selection: %w", err)
	}

	switch sourceIdx {
	case 0:
		dirPrompt := promptui.Prompt{
			Label:   "Content directory",
			Default: detectContentDir(),
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("directory is required")
				}
				return nil
			},
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		cfg.ContentDir = strings.TrimSpace(dir)
	case 1:
		urlPrompt := promptui.Prompt{Label: "Content base URL"}
		u, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content url: %w", err)
		}
		cfg.ContentURL = strings.TrimSpace(u)
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Terminal identity.
	userPrompt := promptui.Prompt{Label: "Terminal prompt user", Default: cfg.Terminal.User}
	if cfg.Terminal.User, err = userPrompt.Run(); err != nil {
		return nil, fmt.Errorf("terminal user: %w", err)
	}
	hostPrompt := promptui.Prompt{Label: "Terminal prompt host", Default: cfg.Terminal.Host}
	if cfg.Terminal.Host, err = hostPrompt.Run(); err != nil {
		return nil, fmt.Errorf("terminal host: %w", err)
	}

	// 4. History.
	historyPrompt := promptui.Select{
		Label: "Record terminal commands to SQLite?",
		Items: []string{"no", "yes"},
	}
	historyIdx, _, err := historyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("history selection: %w", err)
	}
	cfg.History.Enabled = historyIdx == 1

	// 5. Extra build excludes.
	excludePrompt := promptui.Prompt{
		Label:   "Extra build exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Build.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
