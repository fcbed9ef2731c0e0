// Where: cli/internal/command/templates.go
// What: templates command adapter.
// Why: Let users discover template names before running new.
package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
)

func runTemplates(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.Templates
	logger, err := deps.NewLogger(cmd.Verbose)
	if err != nil {
		return exitWithError(out, err)
	}
	defer func() { _ = logger.Sync() }()

	prefs := loadPreferences(deps.Getenv, logger)
	provider := deps.NewCatalog(catalogDir(cmd.Catalog, prefs), logger)
	templates, err := provider.Templates(context.Background())
	if err != nil {
		return exitWithError(out, err)
	}

	languages := template.Languages(templates)
	if filter := strings.TrimSpace(cmd.Language); filter != "" {
		language, err := runtime.NormalizeLanguage(filter)
		if err != nil {
			return exitWithError(out, err)
		}
		languages = []string{language}
	}

	ui := consoleUI(out, prefs.config.EmojiEnabled())
	for i, language := range languages {
		names := template.Names(templates, language)
		if len(names) == 0 {
			continue
		}
		if i > 0 {
			ui.Info("")
		}
		ui.Info(fmt.Sprintf("%s Templates:", language))
		for _, name := range names {
			ui.Info("  " + name)
		}
	}
	return 0
}
