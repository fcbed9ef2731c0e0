// Where: cli/internal/usecase/create/ports.go
// What: Collaborator interfaces consumed by the create workflow.
// Why: Keep file system, catalog, and prompting behind seams that tests fake.
package create

import (
	"context"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
)

// ProjectProbe answers questions about the project directory.
type ProjectProbe interface {
	SettingsExists() bool
	Exists(name string) bool
	HasExtension(ext string) bool
	ReadFile(name string) ([]byte, error)
}

// Bootstrapper initializes a project that has no persisted settings.
type Bootstrapper interface {
	Run(ctx context.Context, hint string) (runtime.WorkerRuntime, string, error)
}

// Deployer materializes a template on disk.
type Deployer interface {
	Deploy(ctx context.Context, functionName, fileName string, tpl template.Template) error
}

// ExtensionBundleChecker reports whether host.json configures a bundle.
type ExtensionBundleChecker interface {
	IsExtensionBundleConfigured() bool
}

// ToolChecker reports whether a command is available on PATH.
type ToolChecker interface {
	CommandExists(name string) bool
}

// TemplateHistory remembers recently used template names per language.
type TemplateHistory interface {
	Recent(language string) []string
	Remember(language, name string) error
}
