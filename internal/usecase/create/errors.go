// Where: cli/internal/usecase/create/errors.go
// What: Sentinel errors surfaced by the create workflow.
// Why: Callers match failures with errors.Is while messages keep the details.
package create

import (
	"errors"

	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/meta"
)

var (
	// ErrConfigConflict reports an explicit language hosted by a different
	// runtime than the persisted one.
	ErrConfigConflict = errors.New("selected language doesn't match worker set in " + meta.LocalSettingsFile)
	// ErrTemplateNotFound reports that no catalog entry matched.
	ErrTemplateNotFound = errors.New("template not found")
	// ErrExtensionsNeedDotnet reports a template whose extensions cannot be
	// installed: no extension bundle is configured and dotnet is missing.
	ErrExtensionsNeedDotnet = errors.New("template has extensions")
	// ErrRedirectedInput reports missing mandatory flags in a
	// non-interactive session.
	ErrRedirectedInput = errors.New("running with stdin/stdout redirected: command must specify --template and --name explicitly")

	ErrAuthLevelNotApplicable = template.ErrAuthLevelNotApplicable
	ErrPromptUnavailable      = interaction.ErrPromptUnavailable

	errWorkflowNotConfigured = errors.New("create workflow is not configured")
	errNoLanguage            = errors.New("unable to determine a template language")
)
