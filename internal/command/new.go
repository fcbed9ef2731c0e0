// Where: cli/internal/command/new.go
// What: new command adapter.
// Why: Wire project adapters into the create workflow and report the outcome.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/poruru/funcnew/cli/internal/infra/bootstrap"
	"github.com/poruru/funcnew/cli/internal/infra/catalog"
	"github.com/poruru/funcnew/cli/internal/infra/deploy"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/probe"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/infra/telemetry"
	"github.com/poruru/funcnew/cli/internal/usecase/create"
	"go.uber.org/zap"
)

func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	cmd := cli.New
	logger, err := deps.NewLogger(cmd.Verbose)
	if err != nil {
		return exitWithError(out, err)
	}
	defer func() { _ = logger.Sync() }()

	projectDir, err := resolveProjectDir(deps.ProjectDir)
	if err != nil {
		return exitWithError(out, err)
	}
	prefs := loadPreferences(deps.Getenv, logger)
	console := consoleUI(out, prefs.config.EmojiEnabled() && !cmd.NoEmoji)

	prompter := deps.Prompter
	if !deps.Interactive {
		prompter = interaction.Unavailable{}
	}
	store := settings.NewOSStore(projectDir)
	recorder := telemetry.NewRecorder()
	defer recorder.Flush(logger, "new")

	workflow := create.Workflow{
		Project:       probe.ForDir(projectDir),
		Settings:      store,
		Getenv:        deps.Getenv,
		Bootstrapper:  bootstrap.New(store, prompter, logger),
		Catalog:       catalog.NewLazy(deps.NewCatalog(catalogDir(cmd.Catalog, prefs), logger)),
		Deployer:      deploy.New(projectDir, logger),
		Bundles:       settings.Host{Store: store},
		Tools:         deps.Tools,
		Prompter:      prompter,
		UserInterface: console,
		Telemetry:     recorder,
		History:       prefs,
		Logger:        logger,
	}
	_, err = workflow.Run(context.Background(), create.Request{
		Args:              cmd.Args,
		Language:          cmd.Language,
		TemplateName:      cmd.Template,
		FunctionName:      cmd.Name,
		FileName:          cmd.File,
		AuthLevel:         cmd.AuthLevel,
		Csx:               cmd.Csx,
		WorkerRuntimeHint: cmd.WorkerRuntime,
		Interactive:       deps.Interactive,
	})
	if err != nil {
		logger.Debug("create failed", zap.String("invocation", recorder.InvocationID()), zap.Error(err))
		return exitWithError(out, err)
	}
	return 0
}

func resolveProjectDir(dir string) (string, error) {
	if strings.TrimSpace(dir) != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

func catalogDir(flag string, prefs *preferences) string {
	if dir := strings.TrimSpace(flag); dir != "" {
		return dir
	}
	return prefs.config.CatalogDir
}
