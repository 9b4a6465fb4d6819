// Package config loads kk defaults from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dongminkim/kk/internal/log"
)

// Config holds listing defaults. Command-line flags override every field.
type Config struct {
	Human                 bool
	SI                    bool
	GroupDigits           bool
	NoVCS                 bool
	GroupDirectoriesFirst bool
	Reverse               bool
	Sort                  string // --sort word, empty for none
	Color                 string // auto, always or never
	DebugLog              string
	LSColors              string
	Exclude               []string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Color: "auto",
	}
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceString(value any, defaultVal string) string {
	if value == nil {
		return defaultVal
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool, int:
		return fmt.Sprint(v)
	}
	return defaultVal
}

func normalizeList(value any) []string {
	switch v := value.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}

func parseConfig(data map[string]any) *Config {
	cfg := DefaultConfig()
	cfg.Human = coerceBool(data["human"], cfg.Human)
	cfg.SI = coerceBool(data["si"], cfg.SI)
	cfg.GroupDigits = coerceBool(data["group_digits"], cfg.GroupDigits)
	cfg.NoVCS = coerceBool(data["no_vcs"], cfg.NoVCS)
	cfg.GroupDirectoriesFirst = coerceBool(data["group_directories_first"], cfg.GroupDirectoriesFirst)
	cfg.Reverse = coerceBool(data["reverse"], cfg.Reverse)
	cfg.Sort = coerceString(data["sort"], cfg.Sort)
	cfg.Color = strings.ToLower(coerceString(data["color"], cfg.Color))
	cfg.DebugLog = coerceString(data["debug_log"], cfg.DebugLog)
	cfg.LSColors = coerceString(data["lscolors"], cfg.LSColors)
	cfg.Exclude = normalizeList(data["exclude"])
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Load reads the configuration. An explicit configPath must exist; the
// default locations are optional. A file that does not parse yields the
// defaults.
func Load(configPath string) (*Config, error) {
	var paths []string
	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		if _, err := os.Stat(expanded); err != nil {
			return DefaultConfig(), fmt.Errorf("config: %w", err)
		}
		paths = []string{expanded}
	} else {
		base := filepath.Join(getConfigDir(), "kk")
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is the user's own config file
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("config: read %s: %v", path, err)
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			log.Printf("config: parse %s: %v", path, err)
			return DefaultConfig(), nil
		}

		log.Printf("config: loaded %s", path)
		return parseConfig(yamlData), nil
	}

	return DefaultConfig(), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}
