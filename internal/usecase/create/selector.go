// Where: cli/internal/usecase/create/selector.go
// What: Template wizard, catalog lookup, and extension precondition.
// Why: Selection must record telemetry and fail with actionable messages.
package create

import (
	"fmt"

	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/telemetry"
	"github.com/poruru/funcnew/cli/internal/meta"
	"go.uber.org/zap"
)

const dotnetCommand = "dotnet"

func (w Workflow) promptTemplateName(templates []template.Template, language string) (string, error) {
	names := template.Names(templates, language)
	if w.History != nil {
		names = template.OrderByRecent(names, w.History.Recent(language))
	}
	return w.Prompter.Select(interaction.WizardTitle("template"), names)
}

func (w Workflow) selectTemplate(templates []template.Template, model template.Model, name, language string) (template.Template, error) {
	tpl, ok := template.First(templates, template.MatchFilter(model, name, language))
	if !ok {
		w.Telemetry.Add("template", telemetry.NotAvailable)
		return template.Template{}, fmt.Errorf("%w: can't find template %q in %q", ErrTemplateNotFound, name, language)
	}
	w.Telemetry.Add("template", name)
	w.Logger.Debug("template selected",
		zap.String("id", tpl.ID),
		zap.String("model", string(model)),
	)
	return tpl, nil
}

// checkExtensions fails when tpl needs extensions that cannot be installed.
func (w Workflow) checkExtensions(tpl template.Template) error {
	if !tpl.HasExtensions() {
		return nil
	}
	if w.Bundles != nil && w.Bundles.IsExtensionBundleConfigured() {
		return nil
	}
	if w.Tools != nil && w.Tools.CommandExists(dotnetCommand) {
		return nil
	}
	return fmt.Errorf(
		"%w: the %s template has extensions. Configure an extension bundle in %s or install the .NET SDK (%s)",
		ErrExtensionsNeedDotnet, tpl.Metadata.Name, meta.HostFile, meta.ExtensionsDocsURL,
	)
}
