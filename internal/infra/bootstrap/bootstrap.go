// Where: cli/internal/infra/bootstrap/bootstrap.go
// What: Minimal project initialization for directories without settings.
// Why: Creating a function needs a persisted worker runtime, so an empty
// directory is turned into a project before resolution continues.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/logging"
	"github.com/poruru/funcnew/cli/internal/meta"
	"go.uber.org/zap"
)

var errUnknownHint = errors.New("unknown worker runtime or language")

const pythonRequirements = "azure-functions\n"

// Initializer writes the files of a new project through Store.
type Initializer struct {
	Store    settings.Store
	Prompter interaction.Prompter
	Logger   *zap.Logger
}

// New returns an Initializer.
func New(store settings.Store, prompter interaction.Prompter, logger *zap.Logger) *Initializer {
	return &Initializer{Store: store, Prompter: prompter, Logger: logging.OrNop(logger)}
}

// Run initializes the project. hint is a language or worker runtime name;
// when empty the user picks a runtime (and a language when the runtime
// hosts several).
func (b *Initializer) Run(ctx context.Context, hint string) (runtime.WorkerRuntime, string, error) {
	if err := ctx.Err(); err != nil {
		return runtime.None, "", err
	}
	rt, language, err := b.resolve(hint)
	if err != nil {
		return runtime.None, "", err
	}
	b.Logger.Debug("bootstrapping project",
		zap.String("runtime", rt.String()),
		zap.String("language", language),
	)
	if err := b.writeProject(rt, language); err != nil {
		return runtime.None, "", err
	}
	return rt, language, nil
}

func (b *Initializer) resolve(hint string) (runtime.WorkerRuntime, string, error) {
	trimmed := strings.TrimSpace(hint)
	if trimmed != "" {
		if language, err := runtime.NormalizeLanguage(trimmed); err == nil {
			rt, err := runtime.RuntimeForLanguage(language)
			return rt, language, err
		}
		rt, err := runtime.ParseWorkerRuntime(trimmed)
		if err != nil || rt == runtime.None {
			return runtime.None, "", fmt.Errorf("%w: %s", errUnknownHint, hint)
		}
		return rt, runtime.DefaultLanguage(rt), nil
	}

	if b.Prompter == nil {
		return runtime.None, "", fmt.Errorf("%w: worker runtime", interaction.ErrPromptUnavailable)
	}
	options := make([]string, 0, len(runtime.All))
	for _, rt := range runtime.All {
		options = append(options, rt.String())
	}
	picked, err := b.Prompter.Select(interaction.WizardTitle("worker runtime"), options)
	if err != nil {
		return runtime.None, "", err
	}
	rt, err := runtime.ParseWorkerRuntime(picked)
	if err != nil {
		return runtime.None, "", err
	}
	languages := runtime.LanguagesForWorker(rt)
	if len(languages) <= 1 {
		return rt, runtime.DefaultLanguage(rt), nil
	}
	language, err := b.Prompter.Select(interaction.WizardTitle("language"), languages)
	if err != nil {
		return runtime.None, "", err
	}
	return rt, language, nil
}

func (b *Initializer) writeProject(rt runtime.WorkerRuntime, language string) error {
	local := settings.Local{Store: b.Store}
	if err := local.SetWorkerRuntime(rt); err != nil {
		return fmt.Errorf("write %s: %w", meta.LocalSettingsFile, err)
	}
	host := settings.Host{Store: b.Store}
	if err := host.WriteDefault(!rt.IsDotnet()); err != nil {
		return fmt.Errorf("write %s: %w", meta.HostFile, err)
	}
	switch {
	case language == runtime.TypeScript:
		return b.writeIfMissing(meta.TSConfigFile, func() (string, error) {
			return settings.MarshalIndented(tsConfig())
		})
	case rt == runtime.Python:
		return b.writeIfMissing("requirements.txt", constant(pythonRequirements))
	}
	return nil
}

func (b *Initializer) writeIfMissing(path string, content func() (string, error)) error {
	if b.Store.FileExists(path) {
		return nil
	}
	text, err := content()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := b.Store.WriteAllText(path, text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b.Logger.Debug("wrote project file", zap.String("path", path))
	return nil
}

func constant(text string) func() (string, error) {
	return func() (string, error) { return text, nil }
}

func tsConfig() map[string]any {
	return map[string]any{
		"compilerOptions": map[string]any{
			"module":    "commonjs",
			"target":    "es6",
			"outDir":    "dist",
			"rootDir":   ".",
			"sourceMap": true,
			"strict":    false,
		},
	}
}
