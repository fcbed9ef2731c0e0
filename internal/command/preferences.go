// Where: cli/internal/command/preferences.go
// What: User config access for command adapters.
// Why: Template history and output preferences persist across runs.
package command

import (
	"github.com/poruru/funcnew/cli/internal/infra/config"
	"go.uber.org/zap"
)

// preferences wraps the user config and saves template history back to it.
type preferences struct {
	path   string
	config config.UserConfig
	logger *zap.Logger
}

// loadPreferences never fails; an unreadable config falls back to defaults.
func loadPreferences(getenv func(string) string, logger *zap.Logger) *preferences {
	prefs := &preferences{config: config.DefaultUserConfig(), logger: logger}
	path, err := config.ConfigPath(getenv)
	if err != nil {
		logger.Warn("user config unavailable", zap.Error(err))
		return prefs
	}
	prefs.path = path
	cfg, err := config.LoadUserConfigOrDefault(path)
	if err != nil {
		logger.Warn("failed to load user config", zap.String("path", path), zap.Error(err))
		return prefs
	}
	prefs.config = cfg
	return prefs
}

func (p *preferences) Recent(language string) []string {
	return p.config.Recent(language)
}

func (p *preferences) Remember(language, name string) error {
	if p.path == "" {
		return nil
	}
	p.config.RememberTemplate(language, name)
	return config.SaveUserConfig(p.path, p.config)
}
