// Where: cli/internal/usecase/create/resolver.go
// What: Worker runtime and language resolution.
// Why: Persisted settings, flags, catalog contents, and project files all
// contribute; an ordered strategy list keeps the precedence explicit.
package create

import (
	"context"
	"fmt"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"go.uber.org/zap"
)

// resolution is the agreed runtime and language for one run.
type resolution struct {
	Runtime  runtime.WorkerRuntime
	Language string
}

type resolveState struct {
	req      Request
	runtime  runtime.WorkerRuntime
	language string
}

// runtimeStrategy resolves the state or reports inconclusive.
type runtimeStrategy struct {
	name  string
	apply func(ctx context.Context, state *resolveState) (bool, error)
}

func (w Workflow) runtimeStrategies() []runtimeStrategy {
	return []runtimeStrategy{
		{name: "bootstrap", apply: w.bootstrapStrategy},
		{name: "conflict-check", apply: w.conflictStrategy},
		{name: "language-wizard", apply: w.languageWizardStrategy},
		{name: "runtime-languages", apply: w.runtimeLanguagesStrategy},
		{name: "managed-inference", apply: w.managedInferenceStrategy},
		{name: "explicit-language", apply: w.explicitLanguageStrategy},
	}
}

func (w Workflow) resolveRuntime(ctx context.Context, req Request) (resolution, error) {
	current, err := w.localSettings().WorkerRuntime()
	if err != nil {
		return resolution{}, err
	}
	state := &resolveState{
		req:      req,
		runtime:  current,
		language: strings.TrimSpace(req.Language),
	}
	for _, strategy := range w.runtimeStrategies() {
		done, err := strategy.apply(ctx, state)
		if err != nil {
			return resolution{}, err
		}
		if done {
			w.Logger.Debug("runtime resolved",
				zap.String("strategy", strategy.name),
				zap.String("runtime", state.runtime.String()),
				zap.String("language", state.language),
			)
			break
		}
	}
	return resolution{Runtime: state.runtime, Language: state.language}, nil
}

func (w Workflow) localSettings() settings.Local {
	return settings.Local{Store: w.Settings, Getenv: w.Getenv}
}

// bootstrapStrategy initializes projects without settings and adopts the
// result. It never resolves on its own so the conflict check still runs.
func (w Workflow) bootstrapStrategy(ctx context.Context, state *resolveState) (bool, error) {
	if w.Project.SettingsExists() {
		return false, nil
	}
	if w.Bootstrapper == nil {
		return false, fmt.Errorf("%w: bootstrapper", errWorkflowNotConfigured)
	}
	hint := state.language
	if hint == "" {
		hint = strings.TrimSpace(state.req.WorkerRuntimeHint)
	}
	rt, language, err := w.Bootstrapper.Run(ctx, hint)
	if err != nil {
		return false, err
	}
	state.runtime = rt
	state.language = language
	return false, nil
}

func (w Workflow) conflictStrategy(_ context.Context, state *resolveState) (bool, error) {
	if state.runtime == runtime.None || state.language == "" {
		return false, nil
	}
	selected, err := runtime.RuntimeForLanguage(state.language)
	if err != nil {
		return false, err
	}
	if selected != state.runtime {
		return false, fmt.Errorf("%w. Selected worker is: %s and selected language is: %s",
			ErrConfigConflict, state.runtime, selected)
	}
	return true, nil
}

// languageWizardStrategy offers every catalog language except Python when
// nothing is known, then persists the implied runtime.
func (w Workflow) languageWizardStrategy(ctx context.Context, state *resolveState) (bool, error) {
	if state.language != "" || state.runtime != runtime.None {
		return false, nil
	}
	templates, err := w.Catalog.Templates(ctx)
	if err != nil {
		return false, err
	}
	var options []string
	for _, language := range template.Languages(templates) {
		if strings.EqualFold(language, runtime.PythonLanguage) {
			continue
		}
		options = append(options, language)
	}
	picked, err := w.Prompter.Select(interaction.WizardTitle("language"), options)
	if err != nil {
		return false, err
	}
	state.language = picked
	return true, w.persistRuntimeFor(state)
}

// runtimeLanguagesStrategy narrows catalog languages to those of a known
// non-managed runtime (or any runtime under --csx).
func (w Workflow) runtimeLanguagesStrategy(ctx context.Context, state *resolveState) (bool, error) {
	if state.language != "" || state.runtime == runtime.None {
		return false, nil
	}
	if state.runtime.IsDotnet() && !state.req.Csx {
		return false, nil
	}
	templates, err := w.Catalog.Templates(ctx)
	if err != nil {
		return false, err
	}
	var display []string
	for _, language := range template.Languages(templates) {
		if runtime.SupportsLanguage(state.runtime, language) {
			display = append(display, language)
		}
	}
	if len(display) == 1 {
		state.language = display[0]
		return true, nil
	}
	if language, ok := Infer(w.Project, state.runtime); ok {
		state.language = language
		return true, nil
	}
	picked, err := w.Prompter.Select(interaction.WizardTitle("language"), display)
	if err != nil {
		return false, err
	}
	state.language = picked
	return true, nil
}

func (w Workflow) managedInferenceStrategy(_ context.Context, state *resolveState) (bool, error) {
	if state.language != "" || !state.runtime.IsDotnet() {
		return false, nil
	}
	language, ok := Infer(w.Project, state.runtime)
	if ok {
		state.language = language
	}
	return ok, nil
}

func (w Workflow) explicitLanguageStrategy(_ context.Context, state *resolveState) (bool, error) {
	if state.language == "" {
		return false, nil
	}
	return true, w.persistRuntimeFor(state)
}

func (w Workflow) persistRuntimeFor(state *resolveState) error {
	rt, err := runtime.RuntimeForLanguage(state.language)
	if err != nil {
		return err
	}
	if err := w.localSettings().SetWorkerRuntime(rt); err != nil {
		return err
	}
	state.runtime = rt
	return nil
}
