// Where: cli/internal/usecase/create/help.go
// What: "<trigger> help" shortcut for decorator-model Python projects.
// Why: Point users at the newer model instead of creating anything.
package create

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/meta"
)

// detectHelpShortcut returns the trigger name when args are exactly
// "<python template name without spaces> help" inside a project that has
// the decorator-model app file.
func (w Workflow) detectHelpShortcut(ctx context.Context, args []string) (string, bool, error) {
	if !w.Project.Exists(meta.PythonV2File) || len(args) != 2 {
		return "", false, nil
	}
	if !strings.EqualFold(args[1], meta.HelpKeyword) {
		return "", false, nil
	}
	templates, err := w.Catalog.Templates(ctx)
	if err != nil {
		return "", false, err
	}
	for _, name := range template.Names(templates, runtime.PythonLanguage) {
		if strings.EqualFold(strings.ReplaceAll(name, " ", ""), args[0]) {
			return args[0], true, nil
		}
	}
	return "", false, nil
}

func helpShortcutMessage(trigger string) string {
	return fmt.Sprintf(
		"Did you know about %s? There is a new Python programming model. For fewer files and a decorator based approach, learn how you can try it out today at %s",
		trigger, meta.PythonModelDocsURL,
	)
}
