// Where: cli/internal/usecase/create/workflow.go
// What: Create-function workflow orchestration.
// Why: Keep resolution, selection, and deploy order visible in one place
// without CLI concerns.
package create

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/catalog"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/infra/telemetry"
	"github.com/poruru/funcnew/cli/internal/infra/ui"
	"github.com/poruru/funcnew/cli/internal/logging"
	"github.com/poruru/funcnew/cli/internal/meta"
	"go.uber.org/zap"
)

// Request captures the inputs of one create invocation.
type Request struct {
	Args              []string
	Language          string
	TemplateName      string
	FunctionName      string
	FileName          string
	AuthLevel         string
	Csx               bool
	WorkerRuntimeHint string
	Interactive       bool
}

// Result describes what the workflow created.
type Result struct {
	HelpShown    bool
	Runtime      runtime.WorkerRuntime
	Language     string
	Model        template.Model
	TemplateID   string
	TemplateName string
	FunctionName string
}

// Workflow executes the create orchestration steps.
type Workflow struct {
	Project       ProjectProbe
	Settings      settings.Store
	Getenv        func(string) string
	Bootstrapper  Bootstrapper
	Catalog       catalog.Provider
	Deployer      Deployer
	Bundles       ExtensionBundleChecker
	Tools         ToolChecker
	Prompter      interaction.Prompter
	UserInterface ui.UserInterface
	Telemetry     *telemetry.Recorder
	History       TemplateHistory
	Logger        *zap.Logger
}

// Run executes the create workflow.
func (w Workflow) Run(ctx context.Context, req Request) (Result, error) {
	if w.Project == nil || w.Settings == nil || w.Catalog == nil || w.Deployer == nil {
		return Result{}, errWorkflowNotConfigured
	}
	w = w.withDefaults()

	if trigger, ok, err := w.detectHelpShortcut(ctx, req.Args); err != nil {
		return Result{}, err
	} else if ok {
		w.UserInterface.Notice(helpShortcutMessage(trigger))
		return Result{HelpShown: true}, nil
	}

	if err := validateInputs(req); err != nil {
		return Result{}, err
	}
	var authLevel template.AuthLevel
	if strings.TrimSpace(req.AuthLevel) != "" {
		level, err := template.ParseAuthLevel(req.AuthLevel)
		if err != nil {
			return Result{}, err
		}
		authLevel = level
	}

	resolved, err := w.resolveRuntime(ctx, req)
	if err != nil {
		return Result{}, err
	}
	language, err := templateLanguage(resolved)
	if err != nil {
		return Result{}, err
	}
	w.Telemetry.Add("language", language)

	templates, err := w.Catalog.Templates(ctx)
	if err != nil {
		return Result{}, err
	}
	templateName := strings.TrimSpace(req.TemplateName)
	if templateName == "" {
		templateName, err = w.promptTemplateName(templates, language)
		if err != nil {
			return Result{}, err
		}
	}

	model := Classify(w.Project, resolved.Runtime, language)
	w.Logger.Debug("programming model classified",
		zap.String("runtime", resolved.Runtime.String()),
		zap.String("language", language),
		zap.String("model", string(model)),
	)
	tpl, err := w.selectTemplate(templates, model, templateName, language)
	if err != nil {
		return Result{}, err
	}
	if err := w.checkExtensions(tpl); err != nil {
		return Result{}, err
	}

	tpl, err = tpl.Clone()
	if err != nil {
		return Result{}, err
	}
	if authLevel != "" {
		if err := template.ConfigureAuthLevel(tpl, authLevel); err != nil {
			return Result{}, err
		}
	}

	functionName, err := w.resolveFunctionName(req.FunctionName, tpl.Metadata.DefaultFunctionName)
	if err != nil {
		return Result{}, err
	}
	if err := w.Deployer.Deploy(ctx, functionName, req.FileName, tpl); err != nil {
		return Result{}, err
	}
	if err := PostDeploy(w.Settings, language, model, functionName); err != nil {
		return Result{}, err
	}

	w.UserInterface.Success(fmt.Sprintf("The function %q was created successfully from the %q template.", functionName, templateName))
	if w.History != nil {
		if err := w.History.Remember(language, tpl.Metadata.Name); err != nil {
			w.Logger.Warn("failed to record template history", zap.Error(err))
		}
	}
	w.printAwareness(resolved.Runtime, language, model)

	return Result{
		Runtime:      resolved.Runtime,
		Language:     language,
		Model:        model,
		TemplateID:   tpl.ID,
		TemplateName: templateName,
		FunctionName: functionName,
	}, nil
}

func (w Workflow) withDefaults() Workflow {
	w.Logger = logging.OrNop(w.Logger)
	if w.Prompter == nil {
		w.Prompter = interaction.Unavailable{}
	}
	if w.UserInterface == nil {
		w.UserInterface = discardUI{}
	}
	if w.Telemetry == nil {
		w.Telemetry = telemetry.NewRecorder()
	}
	return w
}

// validateInputs enforces the flags required when prompts are impossible.
func validateInputs(req Request) error {
	if req.Interactive {
		return nil
	}
	if strings.TrimSpace(req.TemplateName) == "" || strings.TrimSpace(req.FunctionName) == "" {
		return fmt.Errorf("%w. See '%s new --help' for more details", ErrRedirectedInput, meta.AppName)
	}
	return nil
}

func templateLanguage(resolved resolution) (string, error) {
	if language, err := runtime.NormalizeLanguage(resolved.Language); err == nil {
		return language, nil
	}
	if language := runtime.DefaultLanguage(resolved.Runtime); language != "" {
		return language, nil
	}
	return "", fmt.Errorf("%w for runtime %s", errNoLanguage, resolved.Runtime)
}

func (w Workflow) resolveFunctionName(name, defaultName string) (string, error) {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed, nil
	}
	answer, err := w.Prompter.Input(fmt.Sprintf("Function name: [%s]", defaultName), []string{defaultName})
	if err != nil {
		return "", err
	}
	if trimmed := strings.TrimSpace(answer); trimmed != "" {
		return trimmed, nil
	}
	return defaultName, nil
}

func (w Workflow) printAwareness(rt runtime.WorkerRuntime, language string, model template.Model) {
	if strings.EqualFold(language, runtime.PythonLanguage) && model != template.ModelPythonV2 {
		w.UserInterface.Notice(fmt.Sprintf(
			"There is a new Python programming model with fewer files and a decorator based approach. Learn more at %s",
			meta.PythonModelDocsURL,
		))
	}
	if rt == runtime.Node && model != template.ModelNodeV4 {
		w.UserInterface.Notice(fmt.Sprintf(
			"Version 4 of the Node.js programming model is available. Learn how to upgrade at %s",
			meta.NodeModelDocsURL,
		))
	}
}

type discardUI struct{}

func (discardUI) Info(string)    {}
func (discardUI) Warn(string)    {}
func (discardUI) Success(string) {}
func (discardUI) Notice(string)  {}
func (discardUI) Error(string)   {}
