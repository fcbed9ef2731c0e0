// Where: cli/internal/infra/config/global.go
// What: User config load/save.
// Why: Manage <user_config_dir>/funcnew/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = meta.EnvPrefix + "_CONFIG"

const recentTemplateLimit = 5

var userConfigDir = os.UserConfigDir

// UserConfig represents the per-user config.yaml.
type UserConfig struct {
	Version         int                 `yaml:"version"`
	CatalogDir      string              `yaml:"catalog_dir,omitempty"`
	Emoji           *bool               `yaml:"emoji,omitempty"`
	RecentTemplates map[string][]string `yaml:"recent_templates,omitempty"`
}

// DefaultUserConfig returns an initialized UserConfig with version set.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		Version:         1,
		RecentTemplates: map[string][]string{},
	}
}

// EmojiEnabled reports the emoji preference, defaulting to enabled.
func (c UserConfig) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// Recent returns the recently used template names for language.
func (c UserConfig) Recent(language string) []string {
	return c.RecentTemplates[strings.ToLower(language)]
}

// RememberTemplate records name as the most recent template for language.
func (c *UserConfig) RememberTemplate(language, name string) {
	if c.RecentTemplates == nil {
		c.RecentTemplates = map[string][]string{}
	}
	key := strings.ToLower(language)
	c.RecentTemplates[key] = template.UpdateHistory(c.RecentTemplates[key], name, recentTemplateLimit)
}

// ConfigPath returns the config file path, honoring the override variable.
func ConfigPath(getenv func(string) string) (string, error) {
	if getenv != nil {
		if override := strings.TrimSpace(getenv(EnvConfigPath)); override != "" {
			return override, nil
		}
	}
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, meta.HomeDir, "config.yaml"), nil
}

// LoadUserConfig reads and parses the config file.
func LoadUserConfig(path string) (UserConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return UserConfig{}, fmt.Errorf("read user config: %w", err)
	}

	var cfg UserConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return UserConfig{}, fmt.Errorf("decode user config: %w", err)
	}
	return cfg, nil
}

// LoadUserConfigOrDefault returns the default config when path is missing.
func LoadUserConfigOrDefault(path string) (UserConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultUserConfig(), nil
		}
		return UserConfig{}, fmt.Errorf("stat user config: %w", err)
	}
	return LoadUserConfig(path)
}

// SaveUserConfig writes a UserConfig to the specified path.
func SaveUserConfig(path string, cfg UserConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode user config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create user config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write user config: %w", err)
	}
	return nil
}
